package rom

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// innerSpaces matches runs of two or more whitespace characters. Header text
// fields sometimes bake in irregular internal padding.
var innerSpaces = regexp.MustCompile(`\s{2,}`)

// DecodeEUCJP converts a fixed-length EUC-JP field to UTF-8 and trims
// trailing whitespace. Decoding is best-effort: undecodable bytes are
// dropped, never fatal, since real-world dumps carry malformed title bytes.
func DecodeEUCJP(b []byte) string {
	return decodeJapanese(japanese.EUCJP, b)
}

// DecodeShiftJIS converts a fixed-length Shift-JIS field to UTF-8 and trims
// trailing whitespace. Best-effort, like DecodeEUCJP.
func DecodeShiftJIS(b []byte) string {
	return decodeJapanese(japanese.ShiftJIS, b)
}

func decodeJapanese(enc encoding.Encoding, b []byte) string {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		// keep whatever decoded; the field is still usable
		out = b
	}

	s := strings.Map(dropReplacement, string(out))

	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// dropReplacement removes the U+FFFD runes the decoder substitutes for
// invalid byte sequences.
func dropReplacement(r rune) rune {
	if r == utf8.RuneError {
		return -1
	}

	return r
}

// CollapseSpaces squeezes internal runs of whitespace down to one space.
func CollapseSpaces(s string) string {
	return innerSpaces.ReplaceAllString(s, " ")
}

// TrimPadding trims trailing whitespace and trailing zero-padding bytes from
// a plain-text field. Other control bytes are kept as-is.
func TrimPadding(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	})
}
