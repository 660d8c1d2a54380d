package extract

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/mattn/go-runewidth"
)

// ComputeHash computes a hash of the content using xxhash. Stored corpora
// carry it so re-imports of identical exports are detectable.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// TruncateCell shortens a value for table display, keeping the start and
// appending an ellipsis. Width is measured in terminal cells so values
// with wide characters still line up.
func TruncateCell(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if maxWidth <= 3 {
		// Too narrow for an ellipsis, just hard-cut.
		return runewidth.Truncate(s, maxWidth, "")
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// FormatTable renders a header and rows as columns aligned on terminal
// cell width and joined by two spaces. Cells are rendered as given;
// callers clamp long values with TruncateCell first.
func FormatTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, width := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(cell)
			if i == len(widths)-1 {
				break
			}
			if pad := width - runewidth.StringWidth(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
