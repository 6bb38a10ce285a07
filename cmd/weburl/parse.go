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
	"github.com/jplu/urlkit/weburl"
	"github.com/spf13/cobra"
)

// urlRecord is the structured form of a parsed URL.
type urlRecord struct {
	Input             string      `json:"input" yaml:"input"`
	URL               *weburl.URL `json:"url,omitempty" yaml:"url,omitempty"`
	Kind              string      `json:"kind" yaml:"kind"`
	Scheme            string      `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	UserInfo          string      `json:"userInfo,omitempty" yaml:"userInfo,omitempty"`
	Host              string      `json:"host,omitempty" yaml:"host,omitempty"`
	Port              *uint32     `json:"port,omitempty" yaml:"port,omitempty"`
	Path              string      `json:"path,omitempty" yaml:"path,omitempty"`
	Query             []queryPair `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment          string      `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Domain            string      `json:"domain,omitempty" yaml:"domain,omitempty"`
	RegistrableDomain string      `json:"registrableDomain,omitempty" yaml:"registrableDomain,omitempty"`
	Error             string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func newURLRecord(input string, u *weburl.URL) urlRecord {
	r := urlRecord{Input: input, Kind: u.Kind().String()}
	if !u.IsValid() {
		r.Error = u.Err().Error()
		return r
	}

	r.URL = u
	r.Scheme, _ = u.Scheme()
	r.UserInfo, _ = u.UserInfo()
	r.Host, _ = u.Host()
	if port, ok := u.Port(); ok {
		r.Port = &port
	}
	r.Path = u.Path()
	if q, ok := u.Query(); ok {
		r.Query = newQueryPairs(q)
	}
	r.Fragment, _ = u.Fragment()
	r.Domain, _ = u.Domain()
	r.RegistrableDomain, _ = u.RegistrableDomain()
	return r
}

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <url>...",
		Short: "Print the canonical form or the components of URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.operationLogger("parse")

			records := make([]urlRecord, 0, len(args))
			failed := 0
			for _, raw := range args {
				u := weburl.New(raw)
				if u.IsValid() {
					log.Debug("parsed URL", "input", raw, "kind", u.Kind().String())
				} else {
					failed++
					log.Warn("invalid URL", "input", raw, "error", u.Err())
				}
				records = append(records, newURLRecord(raw, u))
			}

			err := render(cmd.OutOrStdout(), opts.output, records, func(r urlRecord) (string, bool) {
				return r.URL.String(), r.URL != nil
			})
			if err != nil {
				return err
			}
			return countFailures(failed, len(args))
		},
	}
}
