/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package weburl provides a lenient URL value type for http and https links
// as people actually type them.
//
// The package offers:
//   - Parsing of absolute ("https://user@example.com:8080/a?b#c"), scheme-relative
//     ("//example.com/a"), bare host ("example.com/a") and relative ("/a", "a/b",
//     "?q", "#f") inputs, with whitespace trimming and scheme/host lowercasing.
//   - Canonical formatting through String: a single "/" for an empty path, no
//     empty "?" or "#" delimiters.
//   - Browser-like reference resolution (Resolve) and its inverse (Reduce).
//   - Copy-on-write mutators (WithHost, WithPath, ...) that revalidate through
//     the parser, so a URL's fields always agree with its validity.
//   - JSON, text, YAML and command-line flag integration.
//
// It deliberately does not implement RFC 3986 percent-encoding, IP literals,
// internationalized domain names or schemes other than http and https.
package weburl

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a URL. The zero value is reported by invalid URLs.
type Kind int

const (
	// KindInvalid is the kind of a URL that failed to parse.
	KindInvalid Kind = iota
	// KindAbsolute URLs carry or imply an authority (host).
	KindAbsolute
	// KindRelative URLs have no host.
	KindRelative
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsolute:
		return "absolute"
	case KindRelative:
		return "relative"
	default:
		return "invalid"
	}
}

// URL is an immutable, parsed URL. Every method that changes a component
// returns a new URL and leaves the receiver untouched. A nil *URL behaves like
// an invalid one.
type URL struct {
	c     components
	valid bool
	err   error
}

// Parse parses raw, trimming surrounding white space. The returned error is a
// *ParseError wrapping one of the package's sentinel errors.
func Parse(raw string) (*URL, error) {
	c, err := parse(raw)
	if err != nil {
		return nil, newParseError(raw, err)
	}
	return &URL{c: c, valid: true}, nil
}

// ParseNormalized first normalizes raw to Unicode Normalization Form C (NFC)
// and then parses it, so canonically equivalent inputs yield equal URLs.
func ParseNormalized(raw string) (*URL, error) {
	return Parse(norm.NFC.String(raw))
}

// New parses raw and always returns a non-nil URL. If parsing fails the URL
// is invalid: IsValid reports false, String returns "" and Err returns the
// parse error.
func New(raw string) *URL {
	u, err := Parse(raw)
	if err != nil {
		return &URL{err: err}
	}
	return u
}

// MustParse is like Parse but panics if raw cannot be parsed.
func MustParse(raw string) *URL {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// Input is the set of types accepted wherever a URL is expected.
type Input interface {
	string | URL | *URL
}

// From coerces any Input into a *URL. Strings are parsed with New, values
// are copied. The result is never nil.
func From[T Input](in T) *URL {
	switch v := any(in).(type) {
	case string:
		return New(v)
	case URL:
		return v.Clone()
	case *URL:
		if v == nil {
			return &URL{}
		}
		return v.Clone()
	}
	return &URL{}
}

// Clone returns a copy of u that shares no memory with it.
func (u *URL) Clone() *URL {
	if u == nil {
		return &URL{}
	}
	c := *u
	c.c.query = u.c.query.Clone()
	return &c
}

// String returns the canonical form of the URL, or "" if it is invalid.
func (u *URL) String() string {
	if !u.IsValid() {
		return ""
	}
	return u.c.format()
}

// Equal reports whether u and other have the same canonical form and validity.
func (u *URL) Equal(other *URL) bool {
	return u.IsValid() == other.IsValid() && u.String() == other.String()
}

// Err returns the error that made the URL invalid, or nil. A nil or zero
// URL reports ErrEmpty.
func (u *URL) Err() error {
	if u.IsValid() {
		return nil
	}
	if u == nil || u.err == nil {
		return newParseError("", &kindError{kind: ErrEmpty})
	}
	return u.err
}

// IsValid reports whether the URL was parsed successfully.
func (u *URL) IsValid() bool {
	return u != nil && u.valid
}

// Kind returns the kind of the URL.
func (u *URL) Kind() Kind {
	if !u.IsValid() {
		return KindInvalid
	}
	return u.c.kind
}

// IsAbsolute reports whether the URL has a host.
func (u *URL) IsAbsolute() bool {
	return u.Kind() == KindAbsolute
}

// IsRelative reports whether the URL is valid and has no host.
func (u *URL) IsRelative() bool {
	return u.Kind() == KindRelative
}

// IsSchemeRelative reports whether the URL has a host but no scheme ("//host/path").
func (u *URL) IsSchemeRelative() bool {
	return u.IsAbsolute() && u.c.scheme == ""
}

// IsHostRelative reports whether the URL is relative with a path starting with "/".
func (u *URL) IsHostRelative() bool {
	return u.IsRelative() && strings.HasPrefix(u.c.path, "/")
}

// Scheme returns the lowercase scheme and whether it is present.
func (u *URL) Scheme() (string, bool) {
	if !u.IsValid() || u.c.scheme == "" {
		return "", false
	}
	return u.c.scheme, true
}

// UserInfo returns the "user" or "user:pass" part and whether it is present.
func (u *URL) UserInfo() (string, bool) {
	if !u.IsValid() || u.c.userInfo == "" {
		return "", false
	}
	return u.c.userInfo, true
}

// Host returns the lowercase host and whether it is present.
func (u *URL) Host() (string, bool) {
	if !u.IsAbsolute() {
		return "", false
	}
	return u.c.host, true
}

// Domain returns the last two labels of the host ("foo.example.com" gives
// "example.com") and whether a host is present.
func (u *URL) Domain() (string, bool) {
	host, ok := u.Host()
	if !ok {
		return "", false
	}
	labels := strings.Split(host, ".")
	return strings.Join(labels[len(labels)-minHostLabels:], "."), true
}

// Port returns the port number and whether it was specified.
func (u *URL) Port() (uint32, bool) {
	if !u.IsValid() || !u.c.hasPort {
		return 0, false
	}
	return u.c.port, true
}

// Path returns the path. It is at least "/" for absolute URLs and may be
// empty for relative ones.
func (u *URL) Path() string {
	if !u.IsValid() {
		return ""
	}
	return u.c.path
}

// Query returns a copy of the decoded query pairs and whether a query is present.
func (u *URL) Query() (Query, bool) {
	if !u.IsValid() || !u.c.hasQuery {
		return nil, false
	}
	return u.c.query.Clone(), true
}

// QueryString returns the encoded query without the leading '?'.
func (u *URL) QueryString() string {
	if !u.IsValid() {
		return ""
	}
	return u.c.query.Encode()
}

// Fragment returns the fragment without the leading '#' and whether it is present.
func (u *URL) Fragment() (string, bool) {
	if !u.IsValid() || u.c.fragment == "" {
		return "", false
	}
	return u.c.fragment, true
}

// Authority returns "userinfo@host:port" and whether the URL has one.
func (u *URL) Authority() (string, bool) {
	if !u.IsAbsolute() {
		return "", false
	}
	return u.c.authority(), true
}

// fields returns a private copy of the components; the zero value for an
// invalid URL.
func (u *URL) fields() components {
	if !u.IsValid() {
		return components{}
	}
	c := u.c
	c.query = u.c.query.Clone()
	return c
}

// rebuild applies edit to a copy of the components, formats the result and
// parses it again. The returned URL is invalid if the edited form does not
// parse.
func (u *URL) rebuild(edit func(c *components)) *URL {
	c := u.fields()
	edit(&c)
	return New(c.format())
}

// WithScheme returns a copy of u with the scheme replaced. An empty scheme
// makes an absolute URL scheme-relative. Relative URLs have nowhere to carry
// a scheme and come back unchanged.
func (u *URL) WithScheme(scheme string) *URL {
	return u.rebuild(func(c *components) { c.scheme = scheme })
}

// WithUserInfo returns a copy of u with the user info replaced; "" removes it.
func (u *URL) WithUserInfo(userInfo string) *URL {
	return u.rebuild(func(c *components) { c.userInfo = userInfo })
}

// WithHost returns a copy of u with the host replaced. Setting a host on a
// relative URL makes it scheme-relative; "" makes an absolute URL relative.
func (u *URL) WithHost(host string) *URL {
	return u.rebuild(func(c *components) {
		c.host = host
		if host == "" {
			c.userInfo, c.hasPort = "", false
		}
	})
}

// WithPort returns a copy of u with the port set.
func (u *URL) WithPort(port uint32) *URL {
	return u.rebuild(func(c *components) { c.port, c.hasPort = port, true })
}

// WithoutPort returns a copy of u with the port removed.
func (u *URL) WithoutPort() *URL {
	return u.rebuild(func(c *components) { c.port, c.hasPort = 0, false })
}

// WithPath returns a copy of u with the path replaced. Absolute URLs get a
// leading "/" if path lacks one.
func (u *URL) WithPath(path string) *URL {
	return u.rebuild(func(c *components) { c.path = path })
}

// WithQuery returns a copy of u with the query replaced; an empty query removes it.
func (u *URL) WithQuery(q Query) *URL {
	return u.rebuild(func(c *components) { c.query, c.hasQuery = q.Clone(), len(q) > 0 })
}

// WithQueryString returns a copy of u with the query replaced by the decoded
// form of s. A leading '?' is ignored.
func (u *URL) WithQueryString(s string) *URL {
	return u.WithQuery(ParseQuery(strings.TrimPrefix(s, "?")))
}

// WithFragment returns a copy of u with the fragment replaced; "" removes it.
func (u *URL) WithFragment(fragment string) *URL {
	return u.rebuild(func(c *components) { c.fragment = fragment })
}
