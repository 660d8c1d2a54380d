// Package csv renders corpus runs as CSV tables: schema attributes as the
// header row, one row per record in corpus order.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lnsplit"
)

// Compile-time interface verification.
var _ lnsplit.RecordWriter = (*Writer)(nil)

// Writer writes records as CSV rows to an underlying io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteAll writes the schema as the header row followed by every record in
// the order given. Fields that were never extracted serialize as empty
// strings, keeping every row the same width as the header.
func (w *Writer) WriteAll(_ context.Context, schema lnsplit.Schema, records []*lnsplit.Record) error {
	cw := csv.NewWriter(w.w)

	if err := cw.Write(schema.Attributes()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Values(schema)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", rec.Position, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes a corpus run to the named file, creating or truncating
// it.
func WriteFile(path string, schema lnsplit.Schema, records []*lnsplit.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := NewWriter(f).WriteAll(context.Background(), schema, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputPath derives the CSV output path for an input file by swapping its
// extension for .csv. Inputs without an extension get .csv appended.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".csv"
}
