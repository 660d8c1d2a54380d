package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/lnsplit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lnsplit.CorpusService = (*CorpusService)(nil)

// CorpusService implements lnsplit.CorpusService using SQLite.
type CorpusService struct {
	db *DB
}

// NewCorpusService creates a new CorpusService.
func NewCorpusService(db *DB) *CorpusService {
	return &CorpusService{db: db}
}

// CreateCorpus creates a new corpus.
func (s *CorpusService) CreateCorpus(ctx context.Context, corpus *lnsplit.Corpus) error {
	if err := corpus.Validate(); err != nil {
		return err
	}

	corpus.ID = uuid.New().String()
	corpus.CreatedAt = time.Now().UTC()

	attrs, err := marshalAttributes(corpus.Attributes)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO corpora (id, name, source_path, content_hash, attributes, document_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, corpus.ID, corpus.Name, corpus.SourcePath, corpus.ContentHash, attrs,
		corpus.DocumentCount, corpus.CreatedAt.Format(time.RFC3339))

	return err
}

// FindCorpusByID retrieves a corpus by ID.
func (s *CorpusService) FindCorpusByID(ctx context.Context, id string) (*lnsplit.Corpus, error) {
	var corpus lnsplit.Corpus
	var attrs, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_path, content_hash, attributes, document_count, created_at
		FROM corpora
		WHERE id = ?
	`, id).Scan(&corpus.ID, &corpus.Name, &corpus.SourcePath, &corpus.ContentHash,
		&attrs, &corpus.DocumentCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, lnsplit.Errorf(lnsplit.ENOTFOUND, "corpus not found")
	}
	if err != nil {
		return nil, err
	}

	if corpus.Attributes, err = unmarshalAttributes(attrs); err != nil {
		return nil, err
	}
	if corpus.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &corpus, nil
}

// FindCorpora retrieves corpora matching the filter.
func (s *CorpusService) FindCorpora(ctx context.Context, filter lnsplit.CorpusFilter) ([]*lnsplit.Corpus, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_path, content_hash, attributes, document_count, created_at FROM corpora WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var corpora []*lnsplit.Corpus
	for rows.Next() {
		var corpus lnsplit.Corpus
		var attrs, createdAt string

		if err := rows.Scan(&corpus.ID, &corpus.Name, &corpus.SourcePath, &corpus.ContentHash,
			&attrs, &corpus.DocumentCount, &createdAt); err != nil {
			return nil, err
		}

		if corpus.Attributes, err = unmarshalAttributes(attrs); err != nil {
			return nil, err
		}
		if corpus.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		corpora = append(corpora, &corpus)
	}

	return corpora, rows.Err()
}

// DeleteCorpus permanently removes a corpus. Its records go with it through
// the foreign key cascade.
func (s *CorpusService) DeleteCorpus(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM corpora WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return lnsplit.Errorf(lnsplit.ENOTFOUND, "corpus not found")
	}

	return nil
}
