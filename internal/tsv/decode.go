package tsv

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotText is returned when an upload is not UTF-8 (or BOM-marked UTF-16) text.
var ErrNotText = errors.New("file is not valid UTF-8 text")

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts an uploaded file to text, dropping any byte order mark.
func Decode(raw []byte) (string, error) {
	utf16 := bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE)
	if !utf16 && !utf8.Valid(raw) {
		return "", ErrNotText
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("decoding file: %w", err)
	}
	if !utf8.Valid(out) {
		return "", ErrNotText
	}
	return string(out), nil
}
