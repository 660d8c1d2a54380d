package slog_test

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/lnsplit"
	lnslog "github.com/fwojciec/lnsplit/slog"
	"github.com/stretchr/testify/assert"
)

// newReporter builds a Reporter writing text logs into buf.
func newReporter(buf *bytes.Buffer) *lnslog.Reporter {
	handler := stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	return lnslog.NewReporter(stdslog.New(handler))
}

func TestReporter_SchemaDiscovered(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newReporter(&buf)

	r.SchemaDiscovered(lnsplit.NewSchema([]string{"LENGTH"}))

	out := buf.String()
	assert.Contains(t, out, "schema discovered")
	assert.Contains(t, out, "LENGTH")
	assert.Contains(t, out, "level=INFO")
}

func TestReporter_NoDocuments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newReporter(&buf)

	r.NoDocuments()

	out := buf.String()
	assert.Contains(t, out, "no document boundaries found")
	assert.Contains(t, out, "level=WARN")
}

func TestReporter_DateParseFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newReporter(&buf)

	r.DateParseFailure(3, "gestern")

	out := buf.String()
	assert.Contains(t, out, "date could not be parsed")
	assert.Contains(t, out, "position=3")
	assert.Contains(t, out, "raw=gestern")
}

func TestReporter_DocumentAnomaly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newReporter(&buf)
	rec := lnsplit.NewRecord(lnsplit.NewSchema(nil), 7)
	rec.Set(lnsplit.AttrDocID, "8")
	rec.Set(lnsplit.AttrText, "kurz")

	r.DocumentAnomaly(7, rec)

	out := buf.String()
	assert.Contains(t, out, "document extraction anomaly")
	assert.Contains(t, out, "position=7")
	assert.Contains(t, out, "id_doc=8")
	assert.Contains(t, out, "text_runes=4")
}
