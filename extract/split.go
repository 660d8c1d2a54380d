package extract

import (
	"regexp"
	"strings"
)

// docBoundary is the sentinel substituted for each copyright footer before
// splitting. The NUL bytes keep it from colliding with export text.
const docBoundary = "\x00DOC_BOUNDARY\x00"

// copyrightFooter matches the copyright notice that terminates each
// document. Genuine footers are indented by at least five whitespace
// characters, which separates them from copyright mentions inside body
// text. Blank lines after the notice fold into the match.
var copyrightFooter = regexp.MustCompile(`\n\s{5,}Copyright .*?\n+`)

// SplitDocuments carves a raw export into one string per document, in
// corpus order. Text after the final footer is trailing matter, not a
// document, and is dropped. A corpus without a single footer yields no
// documents.
func SplitDocuments(corpus string) []string {
	marked := copyrightFooter.ReplaceAllString(corpus, docBoundary)
	parts := strings.Split(marked, docBoundary)
	if len(parts) == 1 {
		// No footer matched anywhere, so the single segment is trailing
		// matter rather than a document.
		return nil
	}
	return parts[:len(parts)-1]
}
