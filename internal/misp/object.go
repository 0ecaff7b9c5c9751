package misp

import (
	"encoding/json"
	"time"
)

// relationTypes lists the attribute type behind each relation of the object
// templates the importer uses. Unknown relations fall back to "text".
var relationTypes = map[string]map[string]string{
	"credential": {
		"username": "text",
		"password": "text",
	},
	"x509": {
		"serial-number": "text",
		"subject":       "text",
	},
}

// NewObject returns an empty object for the given template name.
func NewObject(name string) *Object {
	return &Object{Name: name}
}

// AddAttribute appends an attribute for relation and returns it so callers can
// set timestamps and tags.
func (o *Object) AddAttribute(relation, value string) *Attribute {
	typ := "text"
	if rel, ok := relationTypes[o.Name]; ok {
		if t, ok := rel[relation]; ok {
			typ = t
		}
	}
	att := &Attribute{Type: typ, Value: value, ObjectRelation: relation}
	o.Attributes = append(o.Attributes, att)
	return att
}

// Attribute returns the first attribute with the given relation.
func (o *Object) Attribute(relation string) (*Attribute, bool) {
	for _, a := range o.Attributes {
		if a.ObjectRelation == relation {
			return a, true
		}
	}
	return nil, false
}

// AddTag attaches a tag by name. Empty names are ignored.
func (a *Attribute) AddTag(name string) {
	if name == "" {
		return
	}
	a.Tags = append(a.Tags, Tag{Name: name})
}

// TagNames returns the attached tag names in insertion order.
func (a *Attribute) TagNames() []string {
	out := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		out = append(out, t.Name)
	}
	return out
}

// SetFirstSeen sets first_seen from epoch seconds.
func (a *Attribute) SetFirstSeen(epoch int64) {
	t := time.Unix(epoch, 0).UTC()
	a.FirstSeen = &t
}

// SetLastSeen sets last_seen from epoch seconds.
func (a *Attribute) SetLastSeen(epoch int64) {
	t := time.Unix(epoch, 0).UTC()
	a.LastSeen = &t
}

// NewEvent returns an empty event with the given info line.
func NewEvent(info string) *Event {
	return &Event{Info: info}
}

func (e *Event) AddObject(o *Object)       { e.Objects = append(e.Objects, o) }
func (e *Event) AddAttribute(a *Attribute) { e.Attributes = append(e.Attributes, a) }

// AddTag attaches an event level tag.
func (e *Event) AddTag(name string) {
	if name == "" {
		return
	}
	e.Tags = append(e.Tags, Tag{Name: name})
}

// MarshalJSON wraps the event in the {"Event": {...}} envelope MISP expects.
func (e *Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return json.Marshal(struct {
		Event *plain `json:"Event"`
	}{Event: (*plain)(e)})
}
