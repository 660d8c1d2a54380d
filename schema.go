package lnsplit

// Fixed schema attributes. Every schema starts with the four positional
// fields in this order and ends with the body text field; discovered tags
// sit in between.
const (
	AttrDocID       = "ID_DOC"
	AttrPublication = "PUBLICATION"
	AttrDate        = "DATE"
	AttrTitle       = "TITLE"
	AttrText        = "TEXT"
)

// fixedPrefix is the positional attribute order shared by every schema.
var fixedPrefix = []string{AttrDocID, AttrPublication, AttrDate, AttrTitle}

// Schema is the finalized, ordered attribute list shared by every record of
// a corpus run. It is built once, after tag discovery completes, and is
// read-only afterwards.
type Schema struct {
	attrs []string
	names map[string]struct{}
}

// NewSchema builds a schema from discovered tag names. The fixed positional
// attributes come first, TEXT comes last, and the tags keep their discovery
// order in between. Duplicates and tags shadowing a fixed attribute are
// dropped.
func NewSchema(tags []string) Schema {
	attrs := make([]string, 0, len(fixedPrefix)+len(tags)+1)
	attrs = append(attrs, fixedPrefix...)

	seen := make(map[string]struct{}, cap(attrs))
	for _, attr := range attrs {
		seen[attr] = struct{}{}
	}
	seen[AttrText] = struct{}{}

	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		attrs = append(attrs, tag)
	}
	attrs = append(attrs, AttrText)

	return Schema{attrs: attrs, names: seen}
}

// SchemaFromAttributes rebuilds a schema from a stored attribute list, such
// as one read back from the corpus store. It verifies the fixed prefix, the
// TEXT suffix, and attribute uniqueness.
func SchemaFromAttributes(attrs []string) (Schema, error) {
	if len(attrs) < len(fixedPrefix)+1 {
		return Schema{}, Errorf(EINVALID, "schema requires at least %d attributes, got %d", len(fixedPrefix)+1, len(attrs))
	}
	for i, want := range fixedPrefix {
		if attrs[i] != want {
			return Schema{}, Errorf(EINVALID, "schema attribute %d must be %s, got %q", i, want, attrs[i])
		}
	}
	if last := attrs[len(attrs)-1]; last != AttrText {
		return Schema{}, Errorf(EINVALID, "schema must end with %s, got %q", AttrText, last)
	}

	names := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		if attr == "" {
			return Schema{}, Errorf(EINVALID, "schema attribute name must not be empty")
		}
		if _, ok := names[attr]; ok {
			return Schema{}, Errorf(EINVALID, "duplicate schema attribute %q", attr)
		}
		names[attr] = struct{}{}
	}

	owned := make([]string, len(attrs))
	copy(owned, attrs)

	return Schema{attrs: owned, names: names}, nil
}

// Attributes returns the ordered attribute names. The caller owns the
// returned slice.
func (s Schema) Attributes() []string {
	attrs := make([]string, len(s.attrs))
	copy(attrs, s.attrs)
	return attrs
}

// Tags returns the discovered attributes between the fixed prefix and TEXT,
// in discovery order. The caller owns the returned slice.
func (s Schema) Tags() []string {
	if len(s.attrs) <= len(fixedPrefix)+1 {
		return nil
	}
	tags := make([]string, len(s.attrs)-len(fixedPrefix)-1)
	copy(tags, s.attrs[len(fixedPrefix):len(s.attrs)-1])
	return tags
}

// Contains reports whether name is an attribute of the schema.
func (s Schema) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of attributes.
func (s Schema) Len() int {
	return len(s.attrs)
}
