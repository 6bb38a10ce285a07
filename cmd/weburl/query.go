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


package main

import (
	"strings"

	"github.com/jplu/urlkit/weburl"
	"github.com/spf13/cobra"
)

// queryPair is the structured form of a weburl.Param.
type queryPair struct {
	Key      string `json:"key" yaml:"key"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	HasValue bool   `json:"hasValue" yaml:"hasValue"`
}

func newQueryPairs(q weburl.Query) []queryPair {
	pairs := make([]queryPair, 0, q.Len())
	for _, p := range q {
		pairs = append(pairs, queryPair{Key: p.Key, Value: p.Value, HasValue: p.HasValue})
	}
	return pairs
}

func newQueryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <query-string>",
		Short: "Print the decoded pairs of a query string in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := weburl.ParseQuery(strings.TrimPrefix(args[0], "?"))
			opts.operationLogger("query").Debug("decoded query", "pairs", q.Len())

			return render(cmd.OutOrStdout(), opts.output, newQueryPairs(q), func(p queryPair) (string, bool) {
				return weburl.Param{Key: p.Key, Value: p.Value, HasValue: p.HasValue}.String(), true
			})
		},
	}
}
