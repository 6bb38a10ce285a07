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
	"io"
	"strings"
)

// parserInput provides a reader-like interface over the input string,
// allowing for peeking, advancing, and position tracking.
type parserInput struct {
	originalString string
	reader         *strings.Reader
}

// newParserInput creates a new parserInput wrapping the given string.
func newParserInput(s string) *parserInput {
	return &parserInput{
		originalString: s,
		reader:         strings.NewReader(s),
	}
}

// next reads and returns the next rune from the input, advancing the position.
func (p *parserInput) next() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	return r, err == nil
}

// peek returns the next rune from the input without advancing the position.
func (p *parserInput) peek() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = p.reader.UnreadRune()
	return r, true
}

// startsWith checks if the remaining input starts with the given rune.
func (p *parserInput) startsWith(r rune) bool {
	pr, ok := p.peek()
	return ok && pr == r
}

// hasPrefix checks if the remaining input starts with prefix.
func (p *parserInput) hasPrefix(prefix string) bool {
	return strings.HasPrefix(p.asStr(), prefix)
}

// skip advances the position by n bytes, stopping at the end of the input.
func (p *parserInput) skip(n int) {
	pos := min(p.position()+n, len(p.originalString))
	_, _ = p.reader.Seek(int64(pos), io.SeekStart)
}

// takeUntil consumes and returns the input up to, but not including, the
// first rune contained in stops. The whole remainder is consumed if no stop
// rune is found.
func (p *parserInput) takeUntil(stops string) string {
	rest := p.asStr()
	end := strings.IndexAny(rest, stops)
	if end == -1 {
		end = len(rest)
	}
	p.skip(end)
	return rest[:end]
}

// position returns the current read position in bytes from the start of the original string.
func (p *parserInput) position() int {
	return len(p.originalString) - p.reader.Len()
}

// asStr returns the unread portion of the input string.
func (p *parserInput) asStr() string {
	return p.originalString[p.position():]
}
