package urisplit_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urisplit"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"no escapes", "plain text", "plain text"},
		{
			"mixed",
			"%21%40%23%24%25%2A%28%29With Some Text in the middle%7E%7B%7D%3A%3C%3E%3F_%2B",
			"!@#$%*()With Some Text in the middle~{}:<>?_+",
		},
		{"lowercase hex", "%2b%2f", "+/"},
		{"decoded percent is literal", "%2525", "%25"},
		{"high byte becomes code point", "%C3", "Ã"},
		{"non-ascii passthrough", "héllo%20x", "héllo x"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := urisplit.Unescape(c.src)
			if err != nil {
				t.Fatalf("urisplit.Unescape(%q) error = %v, want nil", c.src, err)
			}
			if got != c.want {
				t.Errorf("urisplit.Unescape(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestUnescape_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"bare percent", "%"},
		{"truncated escape", "%2"},
		{"non-hex digits", "%GZ"},
		{"truncated at end", "ok%2"},
		{"multibyte after percent", "%éa"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := urisplit.Unescape(c.src)
			if !errors.Is(err, urisplit.ErrMalformedEscape) {
				t.Fatalf("urisplit.Unescape(%q) error = %v, want %v", c.src, err, urisplit.ErrMalformedEscape)
			}
			// no partial output on failure
			if got != "" {
				t.Errorf("urisplit.Unescape(%q) = %q, want \"\"", c.src, got)
			}
		})
	}
}
