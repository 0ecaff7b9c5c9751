package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mispimport/internal/format"
)

const DefaultEventInfo = "CrowdStrike Falcon Intelligence indicators"

// Config holds importer configuration.
type Config struct {
	EventInfo   string   `yaml:"event_info"`
	Tags        []string `yaml:"tags"`
	HideBanners bool     `yaml:"hide_banners"`
	MetricsFile string   `yaml:"metrics_file"`
}

// Load reads the optional YAML file at path, then applies MISP_IMPORT_*
// environment overrides. A .env file in the working directory is honoured.
func Load(path string) (*Config, error) {
	// .env is optional; variables may come from the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	c.EventInfo = getEnv("MISP_IMPORT_EVENT_INFO", c.EventInfo)
	c.MetricsFile = getEnv("MISP_IMPORT_METRICS_FILE", c.MetricsFile)
	if v := getEnv("MISP_IMPORT_HIDE_BANNERS", ""); v != "" {
		c.HideBanners = format.ConfirmBooleanParam(v)
	}
	if v := getEnv("MISP_IMPORT_TAGS", ""); v != "" {
		c.Tags = splitList(v)
	}

	if c.EventInfo == "" {
		c.EventInfo = DefaultEventInfo
	}
	return c, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
