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


//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package weburl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCharPredicates tests the character classes used by the grammar.
func TestCharPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		predicate func(rune) bool
		allowed   string
		rejected  string
	}{
		{"isASCIILetter", isASCIILetter, "azAZ", "09-é "},
		{"isASCIIDigit", isASCIIDigit, "0189", "a/ "},
		{"isSchemeChar", isSchemeChar, "aZ09+-.", ":/ _"},
		{"isTLDChar", isTLDChar, "aZ09-", "&._/ "},
		{"isHostLabelChar", isHostLabelChar, "aZ09-_&é", ";:@=/?#\\ \t"},
		{"isUserInfoChar", isUserInfoChar, "aZ09.-_!", ":@ \t"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, r := range tt.allowed {
				assert.True(t, tt.predicate(r), "%q should be allowed", r)
			}
			for _, r := range tt.rejected {
				assert.False(t, tt.predicate(r), "%q should be rejected", r)
			}
		})
	}
}
