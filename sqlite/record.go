package sqlite

import (
	"context"
	"fmt"

	"github.com/fwojciec/lnsplit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lnsplit.RecordService = (*RecordService)(nil)

// RecordService implements lnsplit.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecords stores all records of a corpus run in one transaction so a
// failed import never leaves a partial corpus behind.
func (s *RecordService) CreateRecords(ctx context.Context, corpusID string, schema lnsplit.Schema, records []*lnsplit.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, corpus_id, position, id_doc, publication, date, title, text, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		tags, err := marshalTags(schema, rec)
		if err != nil {
			return err
		}

		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), corpusID, rec.Position,
			rec.Get(lnsplit.AttrDocID), rec.Get(lnsplit.AttrPublication),
			rec.Get(lnsplit.AttrDate), rec.Get(lnsplit.AttrTitle),
			rec.Get(lnsplit.AttrText), tags,
		); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", rec.Position, err)
		}
	}

	return tx.Commit()
}

// FindRecordsByCorpus retrieves a corpus's records in corpus order.
func (s *RecordService) FindRecordsByCorpus(ctx context.Context, corpusID string) ([]*lnsplit.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, id_doc, publication, date, title, text, tags
		FROM records
		WHERE corpus_id = ?
		ORDER BY position
	`, corpusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*lnsplit.Record
	for rows.Next() {
		var rec lnsplit.Record
		var docID, publication, date, title, text, tags string

		if err := rows.Scan(&rec.Position, &docID, &publication, &date, &title, &text, &tags); err != nil {
			return nil, err
		}

		fields, err := unmarshalTags(tags)
		if err != nil {
			return nil, err
		}
		fields[lnsplit.AttrDocID] = docID
		fields[lnsplit.AttrPublication] = publication
		fields[lnsplit.AttrDate] = date
		fields[lnsplit.AttrTitle] = title
		fields[lnsplit.AttrText] = text
		rec.Fields = fields

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// DeleteRecordsByCorpus removes all records for a corpus.
func (s *RecordService) DeleteRecordsByCorpus(ctx context.Context, corpusID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE corpus_id = ?", corpusID)
	return err
}
