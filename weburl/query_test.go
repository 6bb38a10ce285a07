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

func TestParseQuery(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{"Empty", "", Query{}},
		{"Only separators", "&&&", Query{}},
		{"Bare key", "foo", Query{{Key: "foo"}}},
		{"Empty value", "foo=", Query{{Key: "foo"}}},
		{"Pair", "foo=bar", Query{{Key: "foo", Value: "bar", HasValue: true}}},
		{"Split on first equals", "a=b=c", Query{{Key: "a", Value: "b=c", HasValue: true}}},
		{"Empty key", "=v", Query{{Key: "", Value: "v", HasValue: true}}},
		{
			"Order and duplicates kept", "&&b=2&&a=1&b=3&&",
			Query{
				{Key: "b", Value: "2", HasValue: true},
				{Key: "a", Value: "1", HasValue: true},
				{Key: "b", Value: "3", HasValue: true},
			},
		},
		{"No decoding", "q=a%20b+c", Query{{Key: "q", Value: "a%20b+c", HasValue: true}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseQuery(tt.input))
		})
	}
}

func TestQuery_Encode(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Query(nil).Encode())
	assert.Empty(t, Query{}.Encode())
	assert.Equal(t, "b=2&a&c=", Query{
		{Key: "b", Value: "2", HasValue: true},
		{Key: "a"},
		{Key: "c", HasValue: true},
	}.Encode())

	for _, s := range []string{"foo=bar&baz=zee", "a&b&a=1", "x=y=z"} {
		assert.Equal(t, s, ParseQuery(s).Encode())
	}
	assert.Equal(t, "foo=bar&baz", ParseQuery("&&foo=bar&&baz=&&").Encode())
}

func TestQuery_Lookup(t *testing.T) {
	t.Parallel()
	q := ParseQuery("a=1&b&a=2&c=")

	assert.Equal(t, 4, q.Len())

	v, ok := q.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = q.Get("b")
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.True(t, q.Has("b"))
	assert.True(t, q.Has("c"))
	assert.False(t, q.Has("d"))

	assert.Equal(t, []string{"1", "2"}, q.Values("a"))
	assert.Equal(t, []string{""}, q.Values("b"))
	assert.Nil(t, q.Values("d"))
}

func TestQuery_CopyOnWrite(t *testing.T) {
	t.Parallel()
	q := ParseQuery("a=1&b=2")

	with := q.With("c", "3").With("d", "")
	assert.Equal(t, "a=1&b=2&c=3&d", with.Encode())
	assert.Equal(t, "a=1&b=2", q.Encode())

	without := with.Without("a")
	assert.Equal(t, "b=2&c=3&d", without.Encode())
	assert.Equal(t, "a=1&b=2&c=3&d", with.Encode())

	c := q.Clone()
	c[0].Value = "9"
	assert.Equal(t, "a=1&b=2", q.Encode())
	assert.Nil(t, Query(nil).Clone())
}

func TestParam_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "k", Param{Key: "k"}.String())
	assert.Equal(t, "k=v", Param{Key: "k", Value: "v", HasValue: true}.String())
}
