package lnsplit

import (
	"context"
	"time"
)

// Corpus represents one ingested export file and the schema its records
// share.
type Corpus struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SourcePath    string    `json:"sourcePath"`
	ContentHash   string    `json:"contentHash"`
	Attributes    []string  `json:"attributes"`
	DocumentCount int       `json:"documentCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the corpus contains invalid fields.
func (c *Corpus) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "corpus name required")
	}
	if _, err := SchemaFromAttributes(c.Attributes); err != nil {
		return err
	}
	return nil
}

// Schema rebuilds the corpus schema from its stored attribute list.
func (c *Corpus) Schema() (Schema, error) {
	return SchemaFromAttributes(c.Attributes)
}

// CorpusService represents a service for managing stored corpora.
type CorpusService interface {
	// CreateCorpus creates a new corpus.
	CreateCorpus(ctx context.Context, corpus *Corpus) error

	// FindCorpusByID retrieves a corpus by ID.
	// Returns ENOTFOUND if corpus does not exist.
	FindCorpusByID(ctx context.Context, id string) (*Corpus, error)

	// FindCorpora retrieves corpora matching the filter.
	FindCorpora(ctx context.Context, filter CorpusFilter) ([]*Corpus, error)

	// DeleteCorpus permanently removes a corpus and all associated records.
	// Returns ENOTFOUND if corpus does not exist.
	DeleteCorpus(ctx context.Context, id string) error
}

// CorpusFilter represents a filter for FindCorpora.
type CorpusFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	// CreateRecords stores all records of a corpus run in one batch.
	CreateRecords(ctx context.Context, corpusID string, schema Schema, records []*Record) error

	// FindRecordsByCorpus retrieves a corpus's records in corpus order.
	FindRecordsByCorpus(ctx context.Context, corpusID string) ([]*Record, error)

	// DeleteRecordsByCorpus removes all records for a corpus.
	DeleteRecordsByCorpus(ctx context.Context, corpusID string) error
}

// RecordWriter serializes one corpus run to an output sink.
type RecordWriter interface {
	// WriteAll writes the schema header and every record in the order given.
	WriteAll(ctx context.Context, schema Schema, records []*Record) error
}
