package urisplit

import (
	"strings"

	"github.com/ghettovoice/urisplit/internal/constraints"
)

// Part is an optional URI component. The zero value is the absent component,
// which is distinct from a present component holding the empty string.
type Part struct {
	val string
	has bool
}

// PartOf returns a present Part holding the given value.
func PartOf[T constraints.Byteseq](s T) Part {
	return Part{val: string(s), has: true}
}

// Get returns the component value and a bool flag indicating whether it is present.
func (p Part) Get() (string, bool) { return p.val, p.has }

// Or returns the component value, or def if the component is absent.
func (p Part) Or(def string) string {
	if !p.has {
		return def
	}
	return p.val
}

// IsZero reports whether the component is absent.
func (p Part) IsZero() bool { return !p.has }

// String returns the component value, or "" if it is absent.
func (p Part) String() string { return p.val }

// Clone returns a copy of the component whose value no longer aliases
// the buffer it was parsed from.
func (p Part) Clone() Part {
	if !p.has {
		return Part{}
	}
	return Part{val: strings.Clone(p.val), has: true}
}

// Equal compares this component with another for equality, accepting Part and *Part.
func (p Part) Equal(val any) bool {
	switch v := val.(type) {
	case Part:
		return p == v
	case *Part:
		return v != nil && p == *v
	default:
		return false
	}
}
