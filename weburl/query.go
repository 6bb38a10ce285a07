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

import "strings"

// Param is a single query pair. ParseQuery sets HasValue to false for a bare
// key ("k") and for a key followed by an empty value ("k="), so both decode to
// the same pair and encode back as "k".
type Param struct {
	Key      string
	Value    string
	HasValue bool
}

// String encodes the pair as "key" or "key=value".
func (p Param) String() string {
	if !p.HasValue {
		return p.Key
	}
	return p.Key + "=" + p.Value
}

// Query is an ordered sequence of query pairs. Order and duplicate keys are
// preserved exactly as parsed; nothing is sorted or merged.
type Query []Param

// ParseQuery decodes a query string (without the leading '?') into pairs.
// Empty segments produced by leading, trailing or repeated '&' are dropped,
// and each segment is split on its first '='.
func ParseQuery(s string) Query {
	q := Query{}
	for _, segment := range strings.Split(s, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		q = append(q, Param{Key: key, Value: value, HasValue: value != ""})
	}
	return q
}

// Encode joins the pairs with '&' in order. A nil or empty Query encodes to "".
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		if p.HasValue {
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
	}
	return b.String()
}

// Len returns the number of pairs.
func (q Query) Len() int {
	return len(q)
}

// Get returns the value of the first pair with the given key and whether
// that pair carries a value.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, p.HasValue
		}
	}
	return "", false
}

// Values returns the values of every pair with the given key, in order.
// Pairs without a value contribute an empty string.
func (q Query) Values(key string) []string {
	var values []string
	for _, p := range q {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values
}

// Has reports whether any pair has the given key.
func (q Query) Has(key string) bool {
	for _, p := range q {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Clone returns a copy of q that shares no memory with it.
func (q Query) Clone() Query {
	if q == nil {
		return nil
	}
	c := make(Query, len(q))
	copy(c, q)
	return c
}

// With returns a new Query with a pair appended. An empty value yields a
// bare key.
func (q Query) With(key, value string) Query {
	c := make(Query, len(q), len(q)+1)
	copy(c, q)
	return append(c, Param{Key: key, Value: value, HasValue: value != ""})
}

// Without returns a new Query with every pair for key removed.
func (q Query) Without(key string) Query {
	c := make(Query, 0, len(q))
	for _, p := range q {
		if p.Key != key {
			c = append(c, p)
		}
	}
	return c
}
