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

// Reduce computes the shortest reference to ref as seen from base. Both
// accept a string, a URL or a *URL.
func Reduce[B, R Input](base B, ref R) (*URL, error) {
	return From(base).ReduceURL(From(ref))
}

// Reduce computes the shortest reference to ref as seen from u.
func (u *URL) Reduce(ref string) (*URL, error) {
	return u.ReduceURL(New(ref))
}

// ReduceURL is the inverse of ResolveURL. The reference is first merged onto
// u with the same rules as ResolveURL, except that u may be relative, in which
// case only its path, query and fragment take part. If the merged URL has the
// same scheme and authority as u, the result is its host-relative form
// ("/path?query#fragment"); otherwise the merged URL is returned whole.
func (u *URL) ReduceURL(ref *URL) (*URL, error) {
	if err := checkOperands(u, ref); err != nil {
		return nil, err
	}

	t := resolveComponents(&u.c, &ref.c)
	if u.IsAbsolute() && t.host != "" &&
		t.scheme == u.c.scheme && t.authority() == u.c.authority() {
		return fromComponents(components{
			kind:     KindRelative,
			path:     t.path,
			query:    t.query,
			hasQuery: t.hasQuery,
			fragment: t.fragment,
		})
	}
	return fromComponents(t)
}
