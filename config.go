package lnsplit

// Extraction defaults.
const (
	// DefaultTagThreshold is the share of documents a candidate tag must
	// exceed to be treated as a structural metadata field.
	DefaultTagThreshold = 0.20

	// DefaultMinTextLength is the body length in runes below which a record
	// is reported as anomalous.
	DefaultMinTextLength = 100
)

// DefaultTagDenylist returns the tag names excluded from discovery by
// default. WELT is a publication name that satisfies the tag pattern when
// it opens a line.
func DefaultTagDenylist() []string {
	return []string{"WELT"}
}

// Config holds the tunable extraction settings.
type Config struct {
	// TagThreshold is the share of documents a candidate tag must strictly
	// exceed to count as a metadata field. A tag present in exactly this
	// share of documents is rejected.
	TagThreshold float64

	// TagDenylist names candidate tags that are never treated as metadata
	// fields regardless of frequency.
	TagDenylist []string

	// MinTextLength is the body length in runes below which a record is
	// reported as anomalous.
	MinTextLength int

	// DropBoilerplate removes rights-reserved lines from document bodies
	// before scanning. When false the lines stay in the body text.
	DropBoilerplate bool
}

// DefaultConfig returns the extraction defaults.
func DefaultConfig() Config {
	return Config{
		TagThreshold:    DefaultTagThreshold,
		TagDenylist:     DefaultTagDenylist(),
		MinTextLength:   DefaultMinTextLength,
		DropBoilerplate: true,
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.TagThreshold < 0 || c.TagThreshold >= 1 {
		return Errorf(EINVALID, "tag threshold must be in [0, 1), got %v", c.TagThreshold)
	}
	if c.MinTextLength < 0 {
		return Errorf(EINVALID, "minimum text length must not be negative, got %d", c.MinTextLength)
	}
	return nil
}
