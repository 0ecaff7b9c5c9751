// Package banner prints the ASCII banners shown between import stages.
package banner

import (
	"log/slog"
	"strings"
)

// Display logs text one line per record. When hide is set only the fallback is
// logged. Nothing is logged unless both text and logger are supplied.
func Display(text string, logger *slog.Logger, fallback string, hide bool) {
	if text == "" || logger == nil {
		return
	}
	if hide {
		if fallback != "" {
			logger.Info(fallback)
		}
		return
	}
	for _, line := range strings.Split(text, "\n") {
		logger.Info(line)
	}
}
