package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MISP_IMPORT_TAGS", "")
	t.Setenv("MISP_IMPORT_HIDE_BANNERS", "")
	t.Setenv("MISP_IMPORT_EVENT_INFO", "")
	t.Setenv("MISP_IMPORT_METRICS_FILE", "")

	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.EventInfo != DefaultEventInfo || c.HideBanners || len(c.Tags) != 0 || c.MetricsFile != "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
event_info: nightly
tags: ["tlp:amber", "src:falcon"]
hide_banners: false
metrics_file: /tmp/a.prom
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MISP_IMPORT_EVENT_INFO", "")
	t.Setenv("MISP_IMPORT_TAGS", "")
	t.Setenv("MISP_IMPORT_METRICS_FILE", "/tmp/b.prom")
	t.Setenv("MISP_IMPORT_HIDE_BANNERS", "True")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.EventInfo != "nightly" {
		t.Errorf("event_info = %q", c.EventInfo)
	}
	if len(c.Tags) != 2 || c.Tags[1] != "src:falcon" {
		t.Errorf("tags = %v", c.Tags)
	}
	if c.MetricsFile != "/tmp/b.prom" {
		t.Errorf("metrics_file = %q, want env override", c.MetricsFile)
	}
	if !c.HideBanners {
		t.Errorf("expected env to hide banners")
	}

	t.Setenv("MISP_IMPORT_TAGS", " a , ,b")
	t.Setenv("MISP_IMPORT_HIDE_BANNERS", "no")
	c, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(c.Tags, "|") != "a|b" {
		t.Errorf("tags = %v", c.Tags)
	}
	if c.HideBanners {
		t.Errorf("expected banners shown for %q", "no")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected read error")
	}

	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("tags: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse yaml") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MISP_IMPORT_EVENT_INFO=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("MISP_IMPORT_EVENT_INFO", "")
	os.Unsetenv("MISP_IMPORT_EVENT_INFO")

	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.EventInfo != "from-dotenv" {
		t.Fatalf("event_info = %q, want value from .env", c.EventInfo)
	}
}

func TestLoadMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD%KEY=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "load .env") {
		t.Fatalf("expected .env error, got %v", err)
	}
}
