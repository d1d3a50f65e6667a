package urisplit

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/constraints"
	"github.com/ghettovoice/urisplit/internal/grammar"
)

// ErrMalformedEscape indicates a "%" that is not followed by two hexadecimal digits.
const ErrMalformedEscape = grammar.ErrMalformedEscape

// Unescape decodes each percent escape of the form "% HEXDIG HEXDIG" in src
// into the code point with the decoded byte value; all other characters pass
// through unchanged. On any malformed escape it fails with
// [ErrMalformedEscape] rather than returning partial output.
//
// Decoded byte values above the ASCII range become their code point as-is;
// escapes spanning multiple bytes of a UTF-8 encoded character are not
// reassembled into that character.
func Unescape[T constraints.Byteseq](src T) (string, error) {
	return errtrace.Wrap2(grammar.Unescape(src))
}
