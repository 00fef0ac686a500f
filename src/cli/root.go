// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"io"

	"github.com/pkttrail/api-schema/src/config"
	"github.com/pkttrail/api-schema/src/logger"
	"github.com/spf13/cobra"
)

// ErrInvalidMessages is returned by the validate command when at least one
// message fails validation.
var ErrInvalidMessages = errors.New("one or more messages failed validation")

// exeName is the binary name shown in usage strings.
const exeName = "pkttrail-schema"

// app carries state shared by the subcommands of one invocation.
type app struct {
	version    string
	log        logger.Logger
	configFile string
	cfg        *config.Config
}

// Execute builds the root command and runs it with os.Args under ctx.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand creates the command tree.
//
// Configuration is loaded before any subcommand runs, from --config or
// PKTTRAIL_SCHEMA_CONFIG. When it asks for JSON logs, log is replaced by a
// [logger.JSONLogger] on the command's error stream.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	a := &app{version: version, log: log}

	root := &cobra.Command{
		Use:           exeName,
		Short:         "pkttrail agent control-protocol schema validator",
		Long:          "Validate, describe and generate pkttrail agent JSON-RPC 2.0 control messages.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "configuration file (.json, .yaml, .yml)")

	root.AddCommand(
		a.validateCommand(),
		a.schemaCommand(),
		a.kindsCommand(),
		a.sampleCommand(),
	)

	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		a.log = logger.NewCLILogger()
		a.log.SetOutput(stderr)
	}

	switch {
	case cfg.Log.Format == config.LogJSON:
		a.log = logger.NewJSONLogger(stderr, cfg.Log.Silent)
	case cfg.Log.Silent:
		a.log.SetOutput(io.Discard)
	}
	return nil
}
