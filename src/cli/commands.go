// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkttrail/api-schema/src/internal/helper/jsonrpc"
	"github.com/pkttrail/api-schema/src/schema"
	"github.com/pkttrail/api-schema/src/schema/jsonschema"
	"github.com/spf13/cobra"
)

func kindNames() []string {
	kinds := schema.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func completeKinds(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return kindNames(), cobra.ShellCompDirectiveNoFileComp
}

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "schema KIND",
		Short:             "Print the JSON Schema document of a message kind",
		Example:           exeName + " schema keepalive-request",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := schema.LookupKind(args[0])
			if err != nil {
				return err
			}
			doc, err := jsonschema.Document(kind)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
}

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List message kinds with their method and direction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), renderKinds())
			return err
		},
	}
}

// sampleOptions are the flags of the sample command.
type sampleOptions struct {
	agentUUID string
	swVersion string
	id        string
}

func (a *app) sampleCommand() *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "sample KIND",
		Short: "Print a valid example message of a kind",
		Long: `Print a valid example message of a kind. The agent UUID is random
unless --agent-uuid is given.`,
		Example:           exeName + " sample init-request --agent-uuid 2f1d6c1e-1b7a-4c53-9f8e-0d4f5a7b9c21",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := schema.LookupKind(args[0])
			if err != nil {
				return err
			}
			msg, err := sample(kind, opts)
			if err != nil {
				return err
			}
			data, err := jsonrpc.Encode(msg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.agentUUID, "agent-uuid", "", "agent UUID (default: random)")
	cmd.Flags().StringVar(&opts.swVersion, "sw-version", "1.0.0", "agent software version for init requests")
	cmd.Flags().StringVar(&opts.id, "id", "1", "request id")

	return cmd
}

// sample builds an example message of kind with the constructors, so the
// output always passes its own validator.
func sample(kind schema.Kind, opts sampleOptions) (schema.Message, error) {
	agent := uuid.New()
	if opts.agentUUID != "" {
		if len(opts.agentUUID) != 36 {
			return nil, fmt.Errorf("invalid agent UUID %q: want the 36-character hyphenated form", opts.agentUUID)
		}
		u, err := uuid.Parse(opts.agentUUID)
		if err != nil {
			return nil, fmt.Errorf("invalid agent UUID %q: %w", opts.agentUUID, err)
		}
		agent = u
	}

	switch kind {
	case schema.KindInitRequest:
		return schema.NewInitRequest(opts.id, opts.swVersion, agent), nil
	case schema.KindInitResponse:
		return schema.NewInitResponse(opts.id), nil
	case schema.KindKeepAliveRequest:
		ssh := "ssh"
		return schema.NewKeepAliveRequest(opts.id, agent,
			schema.Service{Interface: "eth0", Port: 22, Proto: "tcp", Name: &ssh},
			schema.Service{Interface: "eth0", Port: 53, Proto: "udp"},
		), nil
	case schema.KindKeepAliveResponse:
		return schema.NewKeepAliveResponse(opts.id), nil
	case schema.KindStatusNotification:
		return schema.NewStatusNotification("", map[string]any{"agentUUID": agent.String()}), nil
	case schema.KindErrorResponse:
		return schema.NewErrorResponse(schema.MethodAgentInit, opts.id, schema.ErrorObject{
			Code:    schema.CodeInvalidParams,
			Message: "Invalid params",
			Data:    map[string]string{"params.agentUUID": "required"},
		}), nil
	default:
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownKind, kind)
	}
}
