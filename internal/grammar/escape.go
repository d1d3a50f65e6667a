package grammar

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/errorutil"
)

// Unescape decodes each percent escape of the form "% HEXDIG HEXDIG" in s
// into the code point with the decoded byte value; all other characters pass
// through unchanged. Byte values above the ASCII range become the matching
// code point as-is: escape sequences spanning multiple bytes of a UTF-8
// encoded character are not reassembled.
//
// A "%" not followed by two hexadecimal digits, including one cut off by the
// end of input, fails with [ErrMalformedEscape].
func Unescape[T ~string | ~[]byte](src T) (string, error) {
	s := string(src)

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '%' {
			sb.WriteRune(r)
			i += size
			continue
		}
		if i+3 > len(s) {
			return "", errtrace.Wrap(newMalformedEscapeErr("truncated escape at offset %d", i))
		}
		hi, lo := s[i+1], s[i+2]
		if !ishex(hi) || !ishex(lo) {
			return "", errtrace.Wrap(newMalformedEscapeErr("invalid hex digits %q at offset %d", s[i+1:i+3], i))
		}
		sb.WriteRune(rune(unhex(hi)<<4 | unhex(lo)))
		i += 3
	}
	return sb.String(), nil
}

func newMalformedEscapeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedEscape, args...) //errtrace:skip
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
