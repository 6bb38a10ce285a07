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
	"unicode"
)

const (
	// componentDelimiters end the authority and start the path, query or fragment.
	componentDelimiters = "/?#"
	// pathDelimiters end the path.
	pathDelimiters = "?#"
	// unrecognizedLeaders cannot start any URL form.
	unrecognizedLeaders = ";:@="
	// hostLabelForbidden are the characters never allowed in a host label.
	hostLabelForbidden = ";:@=/?#\\"
)

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSchemeChar checks if a rune may appear after the first letter of a scheme.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// isTLDChar checks if a rune may appear in the final label of a host.
func isTLDChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '-'
}

// isHostLabelChar checks if a rune may appear in a non-final host label.
func isHostLabelChar(r rune) bool {
	return !unicode.IsSpace(r) && !strings.ContainsRune(hostLabelForbidden, r)
}

// isUserInfoChar checks if a rune may appear in the user or password part.
func isUserInfoChar(r rune) bool {
	return !unicode.IsSpace(r) && r != ':' && r != '@'
}
