package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/lnsplit"
)

// tagCandidate matches a potential metadata tag: a line opening with at
// least three uppercase letters or hyphens followed by a colon and space.
var tagCandidate = regexp.MustCompile(`(?m)^([A-Z-]{3,}): `)

// DiscoverTags scans a whole corpus for metadata tags that occur often
// enough to be structural rather than incidental. A tag qualifies when the
// ratio of its occurrence count to the document count strictly exceeds
// cfg.TagThreshold, so a corpus of zero documents discovers nothing.
// Qualifying tags keep their first-occurrence order; names on the denylist
// are dropped.
func DiscoverTags(corpus string, documentCount int, cfg lnsplit.Config) []string {
	if documentCount == 0 {
		return nil
	}

	denied := make(map[string]struct{}, len(cfg.TagDenylist))
	for _, name := range cfg.TagDenylist {
		denied[name] = struct{}{}
	}

	var tags []string
	seen := make(map[string]struct{})
	for _, match := range tagCandidate.FindAllStringSubmatch(corpus, -1) {
		tag := match[1]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}

		if _, ok := denied[tag]; ok {
			continue
		}

		// The count is corpus-wide, not per document, so a tag repeated
		// within one document inflates its share.
		share := float64(strings.Count(corpus, tag+":")) / float64(documentCount)
		if share > cfg.TagThreshold {
			tags = append(tags, tag)
		}
	}

	return tags
}
