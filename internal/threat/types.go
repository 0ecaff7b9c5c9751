package threat

import (
	"context"

	"mispimport/internal/misp"
)

// Indicator is one Falcon Intelligence indicator record. Zero timestamps mean absent.
type Indicator struct {
	ID            string `json:"id,omitempty"`
	Type          string `json:"type"`
	Indicator     string `json:"indicator"`
	PublishedDate int64  `json:"published_date,omitempty"`
	LastUpdated   int64  `json:"last_updated,omitempty"`
}

// Kind tells which construction path produced a Result.
type Kind string

const (
	KindNone      Kind = ""
	KindObject    Kind = "object"
	KindAttribute Kind = "attribute"
)

// Result holds exactly one of Object or Attribute.
type Result struct {
	Object    *misp.Object
	Attribute *misp.Attribute
}

// Kind reports KindNone for the zero Result returned alongside an error.
func (r Result) Kind() Kind {
	switch {
	case r.Object != nil:
		return KindObject
	case r.Attribute != nil:
		return KindAttribute
	default:
		return KindNone
	}
}

// IndicatorSource reads indicators from somewhere.
type IndicatorSource interface {
	Name() string
	Fetch(ctx context.Context) ([]Indicator, error)
}

// RejectCounter is implemented by sources that drop records they cannot decode.
type RejectCounter interface {
	Rejected() int
}

// ResultStore keeps translated results.
type ResultStore interface {
	SaveResult(ctx context.Context, r Result) error
}
