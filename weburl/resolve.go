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

import "fmt"

// resolveComponents merges ref onto base. The branch order is significant:
// an absolute reference is handled before any path, query or fragment
// merging, so a reference with its own host never inherits base components
// other than, for a scheme-relative reference on the same authority, the
// scheme.
func resolveComponents(base, ref *components) components {
	if ref.kind == KindAbsolute {
		t := *ref
		t.query = ref.query.Clone()
		if t.scheme == "" && t.authority() == base.authority() {
			t.scheme = base.scheme
		}
		return t
	}

	t := *base
	t.query = base.query.Clone()

	switch {
	case ref.path != "":
		t.path = mergePaths(base.path, ref.path)
		t.query, t.hasQuery = ref.query.Clone(), ref.hasQuery
		t.fragment = ref.fragment
	case ref.hasQuery:
		t.query, t.hasQuery = ref.query.Clone(), true
		t.fragment = ref.fragment
	case ref.fragment != "":
		t.fragment = ref.fragment
	}
	return t
}

// checkOperands verifies that both URLs of a resolution are valid.
func checkOperands(base, ref *URL) error {
	if !base.IsValid() {
		return fmt.Errorf("%w: base: %w", ErrInvalidURL, base.Err())
	}
	if !ref.IsValid() {
		return fmt.Errorf("%w: reference: %w", ErrInvalidURL, ref.Err())
	}
	return nil
}

// fromComponents validates merged components through the parser.
func fromComponents(c components) (*URL, error) {
	u := New(c.format())
	if !u.IsValid() {
		return nil, u.Err()
	}
	return u, nil
}

// Resolve resolves ref against base. Both accept a string, a URL or a *URL.
// The base must be valid and absolute.
func Resolve[B, R Input](base B, ref R) (*URL, error) {
	return From(base).ResolveURL(From(ref))
}

// Resolve resolves a reference string against u, which acts as the base.
// This operation is equivalent to following a link found on the page at u.
func (u *URL) Resolve(ref string) (*URL, error) {
	return u.ResolveURL(New(ref))
}

// ResolveURL resolves ref against u and returns a new absolute URL.
//
// A reference with a host wins outright; when it is scheme-relative and its
// authority matches u's exactly, it takes u's scheme. Otherwise a non-empty
// reference path is merged onto u's path and ".." segments are collapsed, and
// the reference's query and fragment replace u's. A reference with only a
// query replaces the query and fragment; one with only a fragment replaces
// the fragment.
func (u *URL) ResolveURL(ref *URL) (*URL, error) {
	if err := checkOperands(u, ref); err != nil {
		return nil, err
	}
	if !u.IsAbsolute() {
		return nil, ErrBaseNotAbsolute
	}
	t := resolveComponents(&u.c, &ref.c)
	return fromComponents(t)
}
