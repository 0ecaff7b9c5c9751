package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Translations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mi_translations_total",
			Help: "Indicators translated, by result kind",
		},
		[]string{"kind"},
	)

	TranslationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mi_translation_failures_total",
			Help: "Indicators that could not be translated",
		},
		[]string{"reason"},
	)
)

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
