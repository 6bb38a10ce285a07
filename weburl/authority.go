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
	"strconv"
	"strings"
)

const (
	// minTLDLength is the minimum length of the final host label.
	minTLDLength = 2
	// minHostLabels is the minimum number of dot-separated host labels.
	minHostLabels = 2
)

// authorityParts holds the raw, unvalidated pieces of an authority.
type authorityParts struct {
	userInfo    string
	hasUserInfo bool
	host        string
	port        string
	hasPort     bool
}

// splitAuthority is the single, stateless utility function that parses an authority
// string into its userinfo, host, and port components.
func splitAuthority(authority string) authorityParts {
	var parts authorityParts

	hostport := authority
	if endUserinfo := strings.LastIndex(authority, "@"); endUserinfo != -1 {
		parts.userInfo = authority[:endUserinfo]
		parts.hasUserInfo = true
		hostport = authority[endUserinfo+1:]
	}

	parts.host, parts.port, parts.hasPort = strings.Cut(hostport, ":")
	return parts
}

// parseUserinfo validates "user" or "user:pass". Both parts must be non-empty.
func (p *urlParser) parseUserinfo(userinfo string) error {
	user, pass, hasPass := strings.Cut(userinfo, ":")
	if user == "" {
		return &kindError{kind: ErrInvalidUserInfo, details: "missing user"}
	}
	if hasPass && pass == "" {
		return &kindError{kind: ErrInvalidUserInfo, details: "missing password"}
	}
	for _, part := range []string{user, pass} {
		for _, r := range part {
			if !isUserInfoChar(r) {
				return &kindError{kind: ErrInvalidUserInfo, char: r}
			}
		}
	}
	p.out.userInfo = userinfo
	return nil
}

// validateHost checks that host is one or more "label." groups followed by a
// final label of at least two letters, digits or hyphens.
func validateHost(host string) error {
	if host == "" {
		return &kindError{kind: ErrInvalidHost, details: "missing host"}
	}
	labels := strings.Split(host, ".")
	if len(labels) < minHostLabels {
		return &kindError{kind: ErrInvalidHost, details: host}
	}

	for _, label := range labels[:len(labels)-1] {
		if label == "" {
			return &kindError{kind: ErrInvalidHost, details: host}
		}
		for _, r := range label {
			if !isHostLabelChar(r) {
				return &kindError{kind: ErrInvalidHost, char: r}
			}
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < minTLDLength {
		return &kindError{kind: ErrInvalidHost, details: host}
	}
	for _, r := range tld {
		if !isTLDChar(r) {
			return &kindError{kind: ErrInvalidHost, char: r}
		}
	}
	return nil
}

// parseHost handles the host part of the authority.
func (p *urlParser) parseHost(host string) error {
	if err := validateHost(host); err != nil {
		return err
	}
	p.out.host = strings.ToLower(host)
	return nil
}

// parsePort handles the port part of the authority. A present port must be
// a non-empty run of digits that fits in 32 bits.
func (p *urlParser) parsePort(port string) error {
	for _, r := range port {
		if !isASCIIDigit(r) {
			return &kindError{kind: ErrInvalidPort, char: r}
		}
	}
	if port == "" {
		return &kindError{kind: ErrInvalidPort, details: "missing port number"}
	}
	n, err := strconv.ParseUint(port, 10, 32)
	if err != nil {
		return &kindError{kind: ErrInvalidPort, details: port}
	}
	p.out.port = uint32(n)
	p.out.hasPort = true
	return nil
}

// parseAuthority consumes the authority from the input and validates each of
// its parts. Any failure invalidates the whole absolute match.
func (p *urlParser) parseAuthority() error {
	parts := splitAuthority(p.input.takeUntil(componentDelimiters))

	if parts.hasUserInfo {
		if err := p.parseUserinfo(parts.userInfo); err != nil {
			return err
		}
	}
	if err := p.parseHost(parts.host); err != nil {
		return err
	}
	if parts.hasPort {
		return p.parsePort(parts.port)
	}
	return nil
}
