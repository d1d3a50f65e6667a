// Package grammar implements the character-level rules of the lenient URI syntax.
package grammar

//go:generate errtrace -w .

import (
	"unicode"
	"unicode/utf8"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput      Error = "empty input"
	ErrMalformedEscape Error = "malformed percent escape"
)

// IsSchemeToken reports whether s is a valid URI scheme token:
// a letter followed by any mix of letters, ASCII digits, "+", "-" and ".".
// Letters follow the Unicode Letter category, not just ASCII.
func IsSchemeToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	str := string(s)
	r, _ := utf8.DecodeRuneInString(str)
	if !unicode.IsLetter(r) {
		return false
	}
	for _, r := range str {
		if !isSchemeRune(r) {
			return false
		}
	}
	return true
}

func isSchemeRune(r rune) bool {
	return unicode.IsLetter(r) || '0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'
}

// IsDigits reports whether s consists only of ASCII digits.
// The empty string vacuously qualifies, so a trailing ":" in an authority
// still delimits an (empty) port.
func IsDigits[T ~string | ~[]byte](s T) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
