package grammar_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urisplit/internal/grammar"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		want    string
		wantErr error
	}{
		{"empty", "", "", nil},
		{"no escapes", "abc-qwe!", "abc-qwe!", nil},
		{"single escape", "%20", " ", nil},
		{"upper and lower hex", "%2F%2f", "//", nil},
		{"surrounded", "a%2Bb", "a+b", nil},
		{"high byte", "%FF", "ÿ", nil},
		{"bytes input", string([]byte("%41")), "A", nil},
		{"bare percent", "%", "", grammar.ErrMalformedEscape},
		{"one digit", "%2", "", grammar.ErrMalformedEscape},
		{"bad digits", "%GZ", "", grammar.ErrMalformedEscape},
		{"late bad escape", "abc%2x", "", grammar.ErrMalformedEscape},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.Unescape(c.str)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("grammar.Unescape(%q) error = %v, want %v", c.str, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, c.want)
			}
		})
	}
}
