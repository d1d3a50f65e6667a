// Package urisplit splits generic URIs into their syntactic components and
// renders them back into a canonical string.
//
// # Overview
//
// A [URI] holds the seven optional components of the generic URI syntax:
// scheme, userinfo, host, port, path, query and fragment. Each component is a
// [Part], which distinguishes an absent component from a present-but-empty
// one; the two states render differently (an absent path emits no "/"
// separator, an empty one does).
//
// [Parse] is deliberately lenient. It applies a fixed delimiter precedence
// (fragment, then query, then scheme, then authority) with single split-once
// semantics instead of validating against the full RFC 3986 grammar:
//
//	u, err := urisplit.Parse("https://john.doe@www.example.com:1234/forum/questions/?query#Frag")
//	if err != nil {
//	    // only structurally hopeless inputs (currently: empty) fail
//	}
//	host, ok := u.Host.Get() // "www.example.com", true
//
// Colons are resolved by context: "urn:oasis:names" takes only the first
// colon as the scheme delimiter, "a:b" without an authority keeps the rest as
// opaque path data, and within an authority only an all-digit suffix after
// the last colon is treated as a port.
//
// # Zero-copy parsing and snapshots
//
// When parsing a string, the parts of the resulting URI alias the input's
// backing memory; no component is copied. Retaining such a URI pins the whole
// input string. [URI.Clone] copies every present part into independently
// owned storage, detaching the snapshot from the source buffer. Both forms
// are plain immutable values and behave identically otherwise.
//
// # Rendering
//
// [URI.Render] and friends re-emit the components in canonical order, gated
// on presence. For URIs parsed from authority-form input the output
// reproduces the input, except that any run of leading slashes in the path
// collapses to the single canonical "/" separator.
//
// # Percent decoding
//
// [Unescape] decodes "%XX" escapes into code points and fails on malformed
// escapes instead of producing partial output. Decoded byte values above the
// ASCII range become the matching code point directly; multi-byte UTF-8
// sequences are not reassembled. There is no matching encoder in this
// package.
//
// # Known limitations
//
// The port rule has no bracket awareness, so IPv6 literals like
// "[2001:db8::7]" survive only because their last colon is not followed by
// digits alone; a bracketed host ending in an all-digit group would be
// mis-split. This mirrors the lenient splitting contract and is intentional.
package urisplit
