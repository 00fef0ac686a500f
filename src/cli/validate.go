// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/pkttrail/api-schema/src/config"
	"github.com/pkttrail/api-schema/src/schema"
	"github.com/pkttrail/api-schema/src/schema/jsonschema"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// stdinName labels messages read from standard input.
const stdinName = "stdin"

// result is the outcome of validating one message.
type result struct {
	// Source is the file name, with ":<line>" appended in lines mode.
	Source string `json:"source"`
	// Kind is the kind the message was validated as, "unknown" when it
	// could not be classified.
	Kind  schema.Kind `json:"kind"`
	Valid bool        `json:"valid"`
	// Error is set when the input is not a JSON object.
	Error      string             `json:"error,omitempty"`
	Violations []schema.Violation `json:"violations,omitempty"`
	// SchemaViolations come from the JSON Schema check.
	SchemaViolations []schema.Violation `json:"schemaViolations,omitempty"`
}

// validateOptions are the flags of the validate command. Flags left unset
// fall back to the configuration.
type validateOptions struct {
	kind       string
	lines      bool
	jsonSchema bool
	output     string
}

func (a *app) validateCommand() *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate [FILE...]",
		Short: "Validate agent control messages",
		Long: `Validate one JSON-RPC message per file, or one per line with --lines.
With no FILE, or when FILE is -, messages are read from standard input.
The validator is selected from the declared method unless --kind is given.`,
		Example: exeName + ` validate init.json
cat agent.log | ` + exeName + ` validate --lines -o table
` + exeName + ` validate --kind keepalive-request --json-schema hb.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("lines") {
				opts.lines = a.cfg.Validation.Lines
			}
			if !flags.Changed("json-schema") {
				opts.jsonSchema = a.cfg.Validation.JSONSchema
			}
			if !flags.Changed("output") {
				opts.output = a.cfg.Output.Format
			}
			return a.runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "validate every message as KIND instead of detecting it")
	cmd.Flags().BoolVarP(&opts.lines, "lines", "l", false, "read newline-delimited messages")
	cmd.Flags().BoolVar(&opts.jsonSchema, "json-schema", false, "also check messages against the JSON Schema documents")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.OutputText, "report format: text, json or table")
	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, args []string, opts validateOptions) error {
	if !slices.Contains(config.OutputFormats, opts.output) {
		return fmt.Errorf("unknown output format %q (want one of %v)", opts.output, config.OutputFormats)
	}

	kind := schema.KindUnknown
	if opts.kind != "" {
		k, err := schema.LookupKind(opts.kind)
		if err != nil {
			return err
		}
		kind = k
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	var results []result
	for _, name := range args {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		data, source, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}

		for _, in := range split(source, data, opts.lines) {
			results = append(results, check(in.source, in.data, kind, opts.jsonSchema))
		}
	}

	if err := render(cmd.OutOrStdout(), opts.output, results); err != nil {
		return err
	}

	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
			a.log.Errorf("%s: %s is invalid", r.Source, r.Kind)
		}
	}
	a.log.Printf("validated %d message(s), %d invalid", len(results), invalid)

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidMessages, invalid, len(results))
	}
	return nil
}

// readInput reads one named input. A byte order mark selects UTF-8 or
// UTF-16 decoding, anything else is taken as UTF-8.
func readInput(stdin io.Reader, name string) ([]byte, string, error) {
	var r io.Reader
	source := name
	if name == "-" {
		r, source = stdin, stdinName
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, source, nil
}

type input struct {
	source string
	data   []byte
}

// split yields the whole input as one message, or each non-blank line
// labeled with its 1-based line number.
func split(source string, data []byte, lines bool) []input {
	if !lines {
		return []input{{source: source, data: data}}
	}

	var out []input
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		out = append(out, input{source: source + ":" + strconv.Itoa(i+1), data: line})
	}
	return out
}

// check validates one raw message, as kind when kind is known.
func check(source string, data []byte, kind schema.Kind, withJSONSchema bool) result {
	r := result{Source: source, Kind: kind}

	var (
		msg schema.Message
		err error
	)
	if kind == schema.KindUnknown {
		msg, err = schema.Parse(data)
	} else {
		msg, err = schema.ParseAs(kind, data)
	}

	var verr *schema.ValidationError
	switch {
	case err == nil:
		r.Kind = msg.Kind()
	case errors.As(err, &verr):
		r.Kind = verr.Kind
		r.Violations = verr.Violations
	default:
		r.Error = err.Error()
		return r
	}

	if withJSONSchema && r.Kind != schema.KindUnknown {
		switch err := jsonschema.Check(r.Kind, data); {
		case errors.As(err, &verr):
			r.SchemaViolations = verr.Violations
		case err != nil:
			r.Error = err.Error()
		}
	}

	r.Valid = r.Error == "" && len(r.Violations) == 0 && len(r.SchemaViolations) == 0
	return r
}
