package threat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// FileSource reads indicators from a JSON file holding either a bare array or a
// Falcon API envelope with a "resources" array.
type FileSource struct {
	path     string
	rejected int
}

func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

func (f *FileSource) Name() string {
	if f.stdin() {
		return "stdin"
	}
	return "file:" + f.path
}

func (f *FileSource) stdin() bool { return f.path == "" || f.path == "-" }

// Rejected returns how many records the last Fetch could not decode.
func (f *FileSource) Rejected() int { return f.rejected }

func (f *FileSource) Fetch(ctx context.Context) ([]Indicator, error) {
	f.rejected = 0
	var r io.Reader = os.Stdin
	if !f.stdin() {
		fh, err := os.Open(f.path)
		if err != nil {
			return nil, fmt.Errorf("open indicators: %w", err)
		}
		defer fh.Close()
		r = fh
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read indicators: %w", err)
	}
	out, rejected, err := DecodeIndicators(b)
	if err != nil {
		return nil, err
	}
	f.rejected = rejected
	return out, nil
}

// DecodeIndicators parses a JSON array of indicators or a {"resources": [...]}
// envelope. Records that do not decode as an Indicator are dropped and counted;
// only a malformed top-level document is an error.
func DecodeIndicators(b []byte) ([]Indicator, int, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, 0, nil
	}
	var raw []json.RawMessage
	if b[0] == '[' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, 0, fmt.Errorf("parse indicators: %w", err)
		}
	} else {
		var env struct {
			Resources []json.RawMessage `json:"resources"`
		}
		if err := json.Unmarshal(b, &env); err != nil {
			return nil, 0, fmt.Errorf("parse indicators: %w", err)
		}
		raw = env.Resources
	}

	out := make([]Indicator, 0, len(raw))
	rejected := 0
	for _, rec := range raw {
		var ind Indicator
		if err := json.Unmarshal(rec, &ind); err != nil {
			rejected++
			continue
		}
		out = append(out, ind)
	}
	return out, rejected, nil
}
