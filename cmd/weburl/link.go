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

// linkRecord is the structured form of a resolved or reduced reference.
type linkRecord struct {
	Base  string      `json:"base" yaml:"base"`
	Ref   string      `json:"ref" yaml:"ref"`
	URL   *weburl.URL `json:"url,omitempty" yaml:"url,omitempty"`
	Error string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// linkOp combines a base URL with a reference string.
type linkOp func(base *weburl.URL, ref string) (*weburl.URL, error)

func newResolveCmd(opts *options) *cobra.Command {
	return newLinkCmd(opts, "resolve", "Resolve references against a base URL", (*weburl.URL).Resolve)
}

func newReduceCmd(opts *options) *cobra.Command {
	return newLinkCmd(opts, "reduce", "Compute the shortest references from a base URL", (*weburl.URL).Reduce)
}

// newLinkCmd builds a command applying op to every argument with the
// required --base flag.
func newLinkCmd(opts *options, name, short string, op linkOp) *cobra.Command {
	var base weburl.URL
	cmd := &cobra.Command{
		Use:   name + " --base <url> <ref>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.operationLogger(name).With("base", base.String())

			records := make([]linkRecord, 0, len(args))
			failed := 0
			for _, ref := range args {
				r := linkRecord{Base: base.String(), Ref: ref}
				u, err := op(&base, ref)
				if err != nil {
					failed++
					r.Error = err.Error()
					log.Warn("cannot "+name+" reference", "ref", ref, "error", err)
				} else {
					r.URL = u
					log.Debug(name+"d reference", "ref", ref, "url", u.String())
				}
				records = append(records, r)
			}

			err := render(cmd.OutOrStdout(), opts.output, records, func(r linkRecord) (string, bool) {
				return r.URL.String(), r.URL != nil
			})
			if err != nil {
				return err
			}
			return countFailures(failed, len(args))
		},
	}
	cmd.Flags().Var(&base, "base", "Base URL")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}
