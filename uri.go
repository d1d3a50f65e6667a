package urisplit

//go:generate go tool errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/constraints"
	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/grammar"
)

// ErrInvalidURI indicates that the input failed to validate as a URI.
const ErrInvalidURI errorutil.Error = "URI failed to validate"

// URI represents a generic URI decomposed into its syntactic components.
// Component values are raw substrings of the parsed input: nothing is
// unescaped or case-normalized. Host is present iff the input contained
// an authority marker ("//") after the scheme.
//
// A URI produced by [Parse] from a string aliases that string's memory;
// use [URI.Clone] for a snapshot that outlives the source. URI is
// comparable, and both == and map-key hashing are structural over all
// seven components.
type URI struct {
	Scheme   Part
	User     Part
	Host     Part
	Port     Part
	Path     Part
	Query    Part
	Fragment Part
}

// Parse parses a generic URI from the given input src (string or []byte).
//
// Parsing is lenient: delimiters are resolved by a fixed precedence
// (fragment, query, scheme, authority) with split-once semantics, and text
// that does not fit a delimiter's rule falls through into the path rather
// than failing. Currently only empty input is rejected; the error return
// is part of the contract and callers must handle it.
func Parse[T constraints.Byteseq](src T) (URI, error) {
	if len(src) == 0 {
		return URI{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, grammar.ErrEmptyInput))
	}

	var u URI
	s := string(src)

	if rest, frag, ok := strings.Cut(s, "#"); ok {
		s, u.Fragment = rest, PartOf(frag)
	}
	if rest, query, ok := strings.Cut(s, "?"); ok {
		s, u.Query = rest, PartOf(query)
	}
	// Only a valid scheme token consumes its colon; otherwise the colon is
	// opaque data (e.g. "1http://x" or "a%b:c").
	if scheme, rest, ok := strings.Cut(s, ":"); ok && grammar.IsSchemeToken(scheme) {
		s, u.Scheme = rest, PartOf(scheme)
	}

	if rest, ok := strings.CutPrefix(s, "//"); ok {
		s = rest
		if auth, path, ok := strings.Cut(s, "/"); ok {
			s, u.Path = auth, PartOf(path)
		}
		// Port splits on the last colon so "host:port" works, but there is
		// no bracket awareness for IPv6 literals; see the package doc.
		if i := strings.LastIndexByte(s, ':'); i >= 0 && grammar.IsDigits(s[i+1:]) {
			s, u.Port = s[:i], PartOf(s[i+1:])
		}
		if user, host, ok := strings.Cut(s, "@"); ok {
			u.User, u.Host = PartOf(user), PartOf(host)
		} else {
			u.Host = PartOf(s)
		}
	} else {
		u.Path = PartOf(s)
	}
	return u, nil
}

// Clone returns a deep copy of the URI whose components no longer alias
// the buffer the URI was parsed from.
func (u URI) Clone() URI {
	return URI{
		Scheme:   u.Scheme.Clone(),
		User:     u.User.Clone(),
		Host:     u.Host.Clone(),
		Port:     u.Port.Clone(),
		Path:     u.Path.Clone(),
		Query:    u.Query.Clone(),
		Fragment: u.Fragment.Clone(),
	}
}

// Equal compares this URI with another for structural equality over all
// seven components, accepting URI and *URI.
func (u URI) Equal(val any) bool {
	switch v := val.(type) {
	case URI:
		return u == v
	case *URI:
		return v != nil && u == *v
	default:
		return false
	}
}

// IsZero reports whether all components are absent.
func (u URI) IsZero() bool { return u == URI{} }

// IsValid checks whether the URI is syntactically plausible: a present
// scheme must be a valid scheme token and at least a host or a path must
// be present.
func (u URI) IsValid() bool {
	if s, ok := u.Scheme.Get(); ok && !grammar.IsSchemeToken(s) {
		return false
	}
	return !u.Host.IsZero() || !u.Path.IsZero()
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
