package lnsplit

import "unicode/utf8"

// Record holds the extracted fields of a single document.
type Record struct {
	// Position is the document's zero-based position in corpus order.
	Position int `json:"position"`

	// Fields maps every schema attribute to its extracted value.
	// Attributes that were never found keep the empty string.
	Fields map[string]string `json:"fields"`
}

// NewRecord returns a record at the given position with every schema
// attribute initialized to the empty string.
func NewRecord(schema Schema, position int) *Record {
	fields := make(map[string]string, schema.Len())
	for _, attr := range schema.attrs {
		fields[attr] = ""
	}
	return &Record{Position: position, Fields: fields}
}

// Get returns the value stored under attr, or an empty string.
func (r *Record) Get(attr string) string {
	return r.Fields[attr]
}

// Set stores value under attr, replacing any previous value.
func (r *Record) Set(attr, value string) {
	r.Fields[attr] = value
}

// AppendText appends a body fragment to the TEXT field. Fragments are
// joined with single spaces and the first fragment is stored as is.
func (r *Record) AppendText(fragment string) {
	if r.Fields[AttrText] == "" {
		r.Fields[AttrText] = fragment
		return
	}
	r.Fields[AttrText] += " " + fragment
}

// Values returns the record's values in schema attribute order.
func (r *Record) Values(schema Schema) []string {
	values := make([]string, 0, schema.Len())
	for _, attr := range schema.attrs {
		values = append(values, r.Fields[attr])
	}
	return values
}

// Anomalous reports whether extraction looks suspect: the document number,
// title, and date are all empty, or the body text is shorter than
// minTextLen runes. Anomalous records are still emitted; this is a quality
// signal, not a validity check.
func (r *Record) Anomalous(minTextLen int) bool {
	if r.Get(AttrDocID) == "" && r.Get(AttrTitle) == "" && r.Get(AttrDate) == "" {
		return true
	}
	return utf8.RuneCountInString(r.Get(AttrText)) < minTextLen
}
