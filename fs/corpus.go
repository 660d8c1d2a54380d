// Package fs reads LexisNexis export files from disk and decodes them into
// corpus strings.
package fs

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/lnsplit"
	"golang.org/x/text/encoding/charmap"
)

// Encoding names a supported export file encoding.
type Encoding string

// Supported encodings. Current exports ship as UTF-8, optionally with a
// byte order mark; older archives use Latin-1 or Windows-1252.
const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingLatin1      Encoding = "latin-1"
	EncodingWindows1252 Encoding = "windows-1252"
)

// utf8BOM is stripped from the front of UTF-8 exports when present.
const utf8BOM = "\xef\xbb\xbf"

// ReadCorpus reads one export file and returns its decoded text.
func ReadCorpus(path string, enc Encoding) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(raw, enc)
}

// Decode converts raw export bytes to a string in the given encoding. An
// empty encoding means UTF-8.
func Decode(raw []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingUTF8, "":
		return strings.TrimPrefix(string(raw), utf8BOM), nil
	case EncodingLatin1:
		return decodeCharmap(raw, charmap.ISO8859_1)
	case EncodingWindows1252:
		return decodeCharmap(raw, charmap.Windows1252)
	default:
		return "", lnsplit.Errorf(lnsplit.EINVALID, "unsupported encoding %q", enc)
	}
}

func decodeCharmap(raw []byte, cm *charmap.Charmap) (string, error) {
	decoded, err := cm.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %v: %w", cm, err)
	}
	return string(decoded), nil
}
