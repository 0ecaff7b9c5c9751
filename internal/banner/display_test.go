package banner

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h), &buf
}

func records(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestDisplayLogsEachLine(t *testing.T) {
	logger, buf := captureLogger()
	Display("one\ntwo\nthree", logger, "fallback", false)

	got := records(buf)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[1], "msg=two") {
		t.Fatalf("unexpected second record: %s", got[1])
	}
}

func TestDisplayHiddenUsesFallback(t *testing.T) {
	logger, buf := captureLogger()
	Display(Import, logger, "Import", true)

	got := records(buf)
	if len(got) != 1 || !strings.Contains(got[0], "msg=Import") {
		t.Fatalf("expected single fallback record, got %v", got)
	}
}

func TestDisplayNeedsBannerAndLogger(t *testing.T) {
	logger, buf := captureLogger()
	Display("", logger, "fallback", true)
	Display("", logger, "fallback", false)
	Display(Finished, nil, "fallback", false)
	Display(Finished, logger, "", true)

	if got := records(buf); len(got) != 0 {
		t.Fatalf("expected no output, got %v", got)
	}
}

func TestMISPBannerCarriesVersion(t *testing.T) {
	if !strings.Contains(MISP(), "Threat Intelligence vdev") {
		t.Fatalf("expected version in banner")
	}
}
