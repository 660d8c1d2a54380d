package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/lnsplit"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// marshalAttributes encodes a schema attribute list as JSON for storage.
func marshalAttributes(attrs []string) (string, error) {
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("failed to encode attributes: %w", err)
	}
	return string(b), nil
}

// unmarshalAttributes decodes a stored attribute list.
func unmarshalAttributes(raw string) ([]string, error) {
	var attrs []string
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil, fmt.Errorf("failed to decode attributes: %w", err)
	}
	return attrs, nil
}

// marshalTags encodes a record's discovered-tag values as a JSON object.
// Every schema tag appears, empty or not, so reads restore the full field
// set.
func marshalTags(schema lnsplit.Schema, rec *lnsplit.Record) (string, error) {
	tags := make(map[string]string)
	for _, tag := range schema.Tags() {
		tags[tag] = rec.Get(tag)
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags for record %d: %w", rec.Position, err)
	}
	return string(b), nil
}

// unmarshalTags decodes a stored tag object.
func unmarshalTags(raw string) (map[string]string, error) {
	tags := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}
