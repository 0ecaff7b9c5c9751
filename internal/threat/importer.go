package threat

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"mispimport/internal/metrics"
	"mispimport/internal/misp"
)

// Stats summarises one importer run.
type Stats struct {
	Read       int
	Objects    int
	Attributes int
	Skipped    int
}

// Importer reads indicators from a source and stores their translations.
type Importer struct {
	source IndicatorSource
	store  ResultStore
	tags   []string
	log    *slog.Logger
}

// NewImporter creates a new importer. A nil logger falls back to slog.Default.
func NewImporter(src IndicatorSource, store ResultStore, tags []string, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{source: src, store: store, tags: tags, log: logger}
}

// Run translates every indicator one at a time. Records that cannot be
// translated are logged and skipped.
func (im *Importer) Run(ctx context.Context) (Stats, error) {
	var st Stats
	indicators, err := im.source.Fetch(ctx)
	if err != nil {
		im.log.Error("fetch failed", "source", im.source.Name(), "err", err)
		return st, err
	}
	st.Read = len(indicators)
	if rc, ok := im.source.(RejectCounter); ok {
		if n := rc.Rejected(); n > 0 {
			st.Read += n
			st.Skipped += n
			metrics.TranslationFailures.WithLabelValues("decode").Add(float64(n))
			im.log.Warn("undecodable indicators skipped", "source", im.source.Name(), "count", n)
		}
	}

	for _, ind := range indicators {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		res, err := Translate(ind, im.tags)
		if err != nil {
			st.Skipped++
			metrics.TranslationFailures.WithLabelValues(failureReason(err)).Inc()
			im.log.Debug("indicator skipped", "id", ind.ID, "type", ind.Type, "err", err)
			continue
		}
		if err := im.store.SaveResult(ctx, res); err != nil {
			im.log.Error("store failed", "err", err)
			return st, err
		}
		metrics.Translations.WithLabelValues(string(res.Kind())).Inc()
		if res.Kind() == KindObject {
			st.Objects++
		} else {
			st.Attributes++
		}
	}
	im.log.Info("import finished", "source", im.source.Name(), "read", st.Read,
		"objects", st.Objects, "attributes", st.Attributes, "skipped", st.Skipped)
	return st, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrUnmappedType):
		return "unmapped_type"
	default:
		return "other"
	}
}

// EventStore collects results into a single MISP event.
type EventStore struct {
	mu    sync.Mutex
	event *misp.Event
}

func NewEventStore(info string) *EventStore { return &EventStore{event: misp.NewEvent(info)} }

func (s *EventStore) SaveResult(ctx context.Context, r Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Object != nil {
		s.event.AddObject(r.Object)
	} else if r.Attribute != nil {
		s.event.AddAttribute(r.Attribute)
	}
	return nil
}

// Event returns the collected event.
func (s *EventStore) Event() *misp.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.event
}
