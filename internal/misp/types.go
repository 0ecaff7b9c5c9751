// Package misp is a small in-process model of MISP events, objects and attributes.
// It only covers what the importer builds and serialises.
package misp

import "time"

// Tag is a label attached to an attribute or event.
type Tag struct {
	Name string `json:"name"`
}

// Attribute is a single MISP observable.
type Attribute struct {
	Category       string     `json:"category,omitempty"`
	Type           string     `json:"type"`
	Value          string     `json:"value"`
	ObjectRelation string     `json:"object_relation,omitempty"`
	FirstSeen      *time.Time `json:"first_seen,omitempty"`
	LastSeen       *time.Time `json:"last_seen,omitempty"`
	Tags           []Tag      `json:"Tag,omitempty"`
}

// Object is a named MISP object template instance holding attributes.
type Object struct {
	Name       string       `json:"name"`
	Attributes []*Attribute `json:"Attribute"`
}

// Event accumulates objects and attributes ahead of submission.
type Event struct {
	Info       string       `json:"info"`
	Objects    []*Object    `json:"Object,omitempty"`
	Attributes []*Attribute `json:"Attribute,omitempty"`
	Tags       []Tag        `json:"Tag,omitempty"`
}
