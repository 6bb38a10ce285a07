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

// authority assembles "userinfo@host:port". It is empty without a host.
func (c *components) authority() string {
	if c.host == "" {
		return ""
	}
	var b strings.Builder
	if c.userInfo != "" {
		b.WriteString(c.userInfo)
		b.WriteRune('@')
	}
	b.WriteString(c.host)
	if c.hasPort {
		b.WriteRune(':')
		b.WriteString(strconv.FormatUint(uint64(c.port), 10))
	}
	return b.String()
}

// format builds the canonical string from the components. A host makes the
// result absolute regardless of the recorded kind, so edited components
// format the way they will parse.
func (c *components) format() string {
	var b strings.Builder
	if c.host != "" {
		if c.scheme != "" {
			b.WriteString(c.scheme)
			b.WriteString(schemeSeparator)
		} else {
			b.WriteString(authorityPrefix)
		}
		b.WriteString(c.authority())
		if !strings.HasPrefix(c.path, "/") {
			b.WriteRune('/')
		}
	}
	b.WriteString(c.path)
	if c.hasQuery && len(c.query) > 0 {
		b.WriteRune('?')
		b.WriteString(c.query.Encode())
	}
	if c.fragment != "" {
		b.WriteRune('#')
		b.WriteString(c.fragment)
	}
	return b.String()
}
