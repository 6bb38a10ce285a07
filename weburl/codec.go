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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements the json.Marshaler interface, encoding the URL as
// its canonical string. An invalid URL encodes as "".
func (u *URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string into a URL, returning the parse error if the string is not valid.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return u.Set(s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *URL) UnmarshalText(text []byte) error {
	return u.Set(string(text))
}

// MarshalYAML implements the yaml.Marshaler interface, encoding the URL as a
// plain string scalar.
func (u *URL) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. Only scalar nodes
// are accepted.
func (u *URL) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: URL must be a scalar, got %s", node.Line, yamlKindName(node.Kind))
	}
	return u.Set(node.Value)
}

// Set parses s into u. Together with String and Type it makes *URL usable as
// a command-line flag value. It is the only method that writes to its
// receiver and exists for decoders; u is left untouched on error.
func (u *URL) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// Type returns the flag type name shown in command-line help.
func (u *URL) Type() string {
	return "url"
}

// yamlKindName names a YAML node kind for error messages.
func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
