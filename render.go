package urisplit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/ioutil"
	"github.com/ghettovoice/urisplit/internal/util"
)

// RenderTo writes the canonical form of the URI to the provided writer and
// returns the number of bytes written.
//
// Components are emitted in fixed order, each gated on presence: "scheme:",
// then "//[user@]host[:port]" with "/" and the path stripped of its leading
// slashes, or the path verbatim when there is no host, then "?query" and
// "#fragment".
func (u URI) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if scheme, ok := u.Scheme.Get(); ok {
		cw.WriteString(scheme)
		cw.WriteString(":")
	}
	if host, ok := u.Host.Get(); ok {
		cw.WriteString("//")
		if user, ok := u.User.Get(); ok {
			cw.WriteString(user)
			cw.WriteString("@")
		}
		cw.WriteString(host)
		if port, ok := u.Port.Get(); ok {
			cw.WriteString(":")
			cw.WriteString(port)
		}
		if path, ok := u.Path.Get(); ok {
			cw.WriteString("/")
			cw.WriteString(strings.TrimLeft(path, "/"))
		}
	} else if path, ok := u.Path.Get(); ok {
		cw.WriteString(path)
	}
	if query, ok := u.Query.Get(); ok {
		cw.WriteString("?")
		cw.WriteString(query)
	}
	if frag, ok := u.Fragment.Get(); ok {
		cw.WriteString("#")
		cw.WriteString(frag)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical string form of the URI.
func (u URI) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the canonical string form of the URI.
func (u URI) String() string { return u.Render() }

// Format implements fmt.Formatter for custom formatting of the URI.
func (u URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URI(u))
		return
	}
}
