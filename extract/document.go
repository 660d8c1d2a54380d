package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/lnsplit"
)

// Rights-reserved lines that echo the copyright footer inside document
// bodies. They carry no information and are dropped before scanning when
// Config.DropBoilerplate is set.
var boilerplateParagraphs = map[string]struct{}{
	"Alle Rechte Vorbehalten": {},
	"All Rights Reserved":     {},
}

// Document-number forms. Export headers state either "Dokument 12" /
// "Document 12" or "3 of 120 Documents" / "3 von 120 Dokumenten".
var (
	docNumberDirect  = regexp.MustCompile(`(?i)do[kc]ument (\d+)`)
	docNumberCounted = regexp.MustCompile(`(?i)(\d+) (?:of|von) (?:\d+) do[kc]ument`)
)

// tagLine matches a "TAG: value" metadata line at the start of a paragraph.
var tagLine = regexp.MustCompile(`^([A-Z-]+): `)

// ExtractRecord extracts one record from a single raw document. Scanning
// degrades field by field: a positional scan that runs out of paragraphs
// leaves its field and every later positional field empty rather than
// failing. The second result lists raw date strings that matched no
// supported form; the record keeps such values unchanged.
func ExtractRecord(doc string, schema lnsplit.Schema, cfg lnsplit.Config, position int) (*lnsplit.Record, []string) {
	rec := lnsplit.NewRecord(schema, position)
	paragraphs := splitParagraphs(doc, cfg.DropBoilerplate)

	number, cursor := findDocNumber(paragraphs)
	rec.Set(lnsplit.AttrDocID, number)

	publication, cursor := findNonBlank(paragraphs, cursor)
	rec.Set(lnsplit.AttrPublication, publication)

	rawDate, cursor := findNonBlank(paragraphs, cursor)
	var dateFailures []string
	if rawDate != "" {
		date, ok := NormalizeDate(rawDate)
		if !ok {
			dateFailures = append(dateFailures, rawDate)
		}
		rec.Set(lnsplit.AttrDate, date)
	}

	title, cursor := findNonBlank(paragraphs, cursor)
	rec.Set(lnsplit.AttrTitle, title)

	for _, paragraph := range paragraphs[cursor:] {
		if m := tagLine.FindStringSubmatch(paragraph); m != nil && schema.Contains(m[1]) {
			rec.Set(m[1], strings.TrimPrefix(paragraph, m[0]))
			continue
		}
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		rec.AppendText(paragraph)
	}

	return rec, dateFailures
}

// splitParagraphs turns a document into its logical paragraphs: blank-line
// separated blocks with hard line breaks collapsed to single spaces.
func splitParagraphs(doc string, dropBoilerplate bool) []string {
	parts := strings.Split(doc, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		paragraph := strings.ReplaceAll(part, "\n", " ")
		if dropBoilerplate {
			if _, ok := boilerplateParagraphs[strings.TrimSpace(paragraph)]; ok {
				continue
			}
		}
		paragraphs = append(paragraphs, paragraph)
	}
	return paragraphs
}

// findDocNumber locates the document-number paragraph and returns the
// captured number plus the cursor just past it. Without a match the cursor
// lands at the end, leaving every later positional scan empty-handed.
func findDocNumber(paragraphs []string) (string, int) {
	for i, paragraph := range paragraphs {
		if m := docNumberDirect.FindStringSubmatch(paragraph); m != nil {
			return m[1], i + 1
		}
		if m := docNumberCounted.FindStringSubmatch(paragraph); m != nil {
			return m[1], i + 1
		}
	}
	return "", len(paragraphs)
}

// findNonBlank returns the next paragraph with non-whitespace content,
// left-trimmed, plus the cursor just past it.
func findNonBlank(paragraphs []string, start int) (string, int) {
	for i := start; i < len(paragraphs); i++ {
		if strings.TrimSpace(paragraphs[i]) == "" {
			continue
		}
		return strings.TrimLeftFunc(paragraphs[i], unicode.IsSpace), i + 1
	}
	return "", len(paragraphs)
}
