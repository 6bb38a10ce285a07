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
	"errors"
	"log/slog"

	"github.com/jplu/urlkit/internal/logging"
	"github.com/spf13/cobra"
)

const component = "cli"

// errInvalidInput is returned when at least one argument could not be processed.
var errInvalidInput = errors.New("invalid input")

// options holds the global flags shared by every subcommand.
type options struct {
	output    outputFormat
	debug     bool
	logFormat logging.Format
	logger    *slog.Logger
}

func newOptions() *options {
	return &options{output: outputText, logFormat: logging.FormatText}
}

// newRootCmd creates the weburl command tree bound to opts.
func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "weburl",
		Short:         "Parse, resolve and reduce http and https URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug := opts.debug || logging.DebugFromEnv()
			opts.logger = logging.New(cmd.ErrOrStderr(), debug, opts.logFormat)
		},
	}

	flags := cmd.PersistentFlags()
	flags.VarP(&opts.output, "output", "o", "Output format: text, json or yaml")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging (also "+logging.EnvDebug+"=true)")
	flags.Var(&opts.logFormat, "log-format", "Log format: text or json")

	cmd.AddCommand(
		newParseCmd(opts),
		newResolveCmd(opts),
		newReduceCmd(opts),
		newQueryCmd(opts),
	)
	return cmd
}

// execute runs root and returns the process exit status. Failures are logged
// rather than printed by cobra.
func execute(root *cobra.Command, opts *options) int {
	if err := root.Execute(); err != nil {
		logger := opts.logger
		if logger == nil {
			logger = logging.New(root.ErrOrStderr(), false, opts.logFormat)
		}
		logger.Error("command failed", "component", component, "error", err)
		return 1
	}
	return 0
}

// operationLogger returns the logger for a subcommand.
func (o *options) operationLogger(operation string) *slog.Logger {
	return logging.WithOperation(o.logger, component, operation)
}
