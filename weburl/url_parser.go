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

package weburl

import (
	"strings"
	"unicode/utf8"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"

	// schemeSeparator follows an explicit scheme token.
	schemeSeparator = "://"
	// authorityPrefix starts a scheme-relative URL.
	authorityPrefix = "//"
)

// form is the result of the discriminator: which grammar alternative a
// trimmed input is matched against.
type form int

const (
	// formAmbiguous inputs are tried as absolute first, then as relative.
	formAmbiguous form = iota
	formAbsolute
	formRelative
	formUnrecognized
)

// components holds the decomposed fields of a URL. Optional string fields are
// absent when empty: the grammar never captures an empty scheme, user info or
// fragment.
type components struct {
	kind     Kind
	scheme   string
	userInfo string
	host     string
	port     uint32
	hasPort  bool
	path     string
	query    Query
	hasQuery bool
	fragment string
}

// urlParser holds the state for a single decomposition attempt.
type urlParser struct {
	input *parserInput
	out   components
}

// parse trims raw and decomposes it. It is the single entry point used by
// every constructor and mutator in the package.
func parse(raw string) (components, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return components{}, &kindError{kind: ErrEmpty}
	}

	switch classify(s) {
	case formAbsolute:
		return parseAbsolute(s)
	case formRelative:
		return parseRelative(s), nil
	case formUnrecognized:
		r, _ := utf8.DecodeRuneInString(s)
		return components{}, &kindError{kind: ErrUnrecognized, char: r}
	default:
		if c, err := parseAbsolute(s); err == nil {
			return c, nil
		}
		return parseRelative(s), nil
	}
}

// classify determines which grammar alternative applies to a trimmed,
// non-empty input.
func classify(s string) form {
	if _, ok := schemeToken(s); ok {
		return formAbsolute
	}
	if strings.HasPrefix(s, authorityPrefix) {
		return formAbsolute
	}
	switch s[0] {
	case '/', '?', '#', '.':
		// A leading '.' can only start a dot-segment path: no host label is empty.
		return formRelative
	}
	if strings.IndexByte(unrecognizedLeaders, s[0]) != -1 {
		return formUnrecognized
	}
	return formAmbiguous
}

// schemeToken returns the scheme of an input starting with "token://", where
// token is a letter followed by letters, digits, '+', '-' or '.'.
func schemeToken(s string) (string, bool) {
	end := strings.Index(s, schemeSeparator)
	if end <= 0 || !isASCIILetter(rune(s[0])) {
		return "", false
	}
	for _, r := range s[1:end] {
		if !isSchemeChar(r) {
			return "", false
		}
	}
	return s[:end], true
}

// parseAbsolute matches the absolute alternative: scheme, authority, path,
// query and fragment. It fails as a whole if any authority part is invalid.
func parseAbsolute(s string) (components, error) {
	p := &urlParser{input: newParserInput(s)}
	p.out.kind = KindAbsolute

	if err := p.parseScheme(); err != nil {
		return components{}, err
	}
	if err := p.parseAuthority(); err != nil {
		return components{}, err
	}
	p.parsePath()
	if p.out.path == "" {
		p.out.path = "/"
	}
	p.parseQuery()
	p.parseFragment()
	return p.out, nil
}

// parseRelative matches the relative alternative. It always succeeds.
func parseRelative(s string) components {
	p := &urlParser{input: newParserInput(s)}
	p.out.kind = KindRelative
	p.parsePath()
	p.parseQuery()
	p.parseFragment()
	return p.out
}

// parseScheme consumes an explicit "http://" or "https://" prefix, or the
// "//" of a scheme-relative URL. Bare hosts get the default scheme.
func (p *urlParser) parseScheme() error {
	if token, ok := schemeToken(p.input.asStr()); ok {
		scheme := strings.ToLower(token)
		if scheme != schemeHTTP && scheme != schemeHTTPS {
			return &kindError{kind: ErrUnsupportedScheme, details: token}
		}
		p.out.scheme = scheme
		p.input.skip(len(token) + len(schemeSeparator))
		return nil
	}

	if p.input.hasPrefix(authorityPrefix) {
		p.input.skip(len(authorityPrefix))
		return nil
	}

	p.out.scheme = schemeHTTP
	return nil
}

// parsePath consumes everything up to the query or fragment delimiter.
// White space is kept verbatim.
func (p *urlParser) parsePath() {
	p.out.path = p.input.takeUntil(pathDelimiters)
}

// parseQuery consumes the query component. A '?' followed by nothing yields
// no query.
func (p *urlParser) parseQuery() {
	if !p.input.startsWith('?') {
		return
	}
	p.input.next() // Consume '?'
	raw := p.input.takeUntil("#")
	if raw == "" {
		return
	}
	p.out.query = ParseQuery(raw)
	p.out.hasQuery = true
}

// parseFragment consumes the fragment component. A '#' followed by nothing
// yields no fragment.
func (p *urlParser) parseFragment() {
	if !p.input.startsWith('#') {
		return
	}
	p.input.next() // Consume '#'
	p.out.fragment = p.input.asStr()
	p.input.skip(len(p.out.fragment))
}
