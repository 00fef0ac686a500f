// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkttrail/api-schema/src/cli"
	"github.com/pkttrail/api-schema/src/config"
	"github.com/pkttrail/api-schema/src/logger"
	"github.com/pkttrail/api-schema/src/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

const (
	version = "1.3.3.7-testing"

	testUUID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

	initRequestJSON = `{"jsonrpc":"2.0","method":"pkttrail.agent.os.init","id":"1","params":{"schemaVersion":"1.0","agentSWVersion":"0.0.1","agentUUID":"3fa85f64-5717-4562-b3fc-2c963f66afa6"}}`

	badInitRequestJSON = `{"jsonrpc":"2.0","method":"pkttrail.agent.os.init","id":"1","params":{"schemaVersion":"1.0","agentSWVersion":"0.0.1"}}`

	badPortJSON = `{"jsonrpc":"2.0","method":"pkttrail.agent.os.keepalive","id":"2","params":{"agentUUID":"3fa85f64-5717-4562-b3fc-2c963f66afa6","services":[{"interface":"eth0","port":0,"proto":"tcp"}]}}`
)

// run executes the command tree with args and returns stdout, the log
// stream and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvLogFormat, "")

	var stdout, stderr bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&stderr)

	cmd := cli.NewRootCommand(version, log)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func decodeResults(t *testing.T, out string) []map[string]any {
	t.Helper()
	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results), "output: %s", out)
	return results
}

func TestValidate_File(t *testing.T) {
	path := writeFile(t, "init.json", []byte(initRequestJSON))

	out, logs, err := run(t, "", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, path+": init-request: ok\n", out)
	assert.Contains(t, logs, "validated 1 message(s), 0 invalid")
}

func TestValidate_Invalid(t *testing.T) {
	path := writeFile(t, "init.json", []byte(badInitRequestJSON))

	out, logs, err := run(t, "", "validate", path)
	require.ErrorIs(t, err, cli.ErrInvalidMessages)
	assert.Contains(t, out, "init-request: invalid")
	assert.Contains(t, out, "params.agentUUID [payload]:")
	assert.Contains(t, logs, "error: "+path+": init-request is invalid")
}

func TestValidate_StdinLines(t *testing.T) {
	stdin := initRequestJSON + "\n\n" + badPortJSON + "\nnot json\n"

	out, _, err := run(t, stdin, "validate", "--lines", "-o", "json")
	require.ErrorIs(t, err, cli.ErrInvalidMessages)
	assert.Contains(t, err.Error(), "2 of 3")

	results := decodeResults(t, out)
	require.Len(t, results, 3)

	assert.Equal(t, "stdin:1", results[0]["source"])
	assert.Equal(t, "init-request", results[0]["kind"])
	assert.Equal(t, true, results[0]["valid"])

	assert.Equal(t, "stdin:3", results[1]["source"])
	assert.Equal(t, "keepalive-request", results[1]["kind"])
	assert.Equal(t, false, results[1]["valid"])
	violations, ok := results[1]["violations"].([]any)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, "params.services[0].port", violations[0].(map[string]any)["field"])
	assert.Equal(t, "payload", violations[0].(map[string]any)["class"])

	assert.Equal(t, "stdin:4", results[2]["source"])
	assert.Equal(t, "unknown", results[2]["kind"])
	assert.Contains(t, results[2]["error"], schema.ErrMalformed.Error())
}

func TestValidate_Dash(t *testing.T) {
	out, _, err := run(t, initRequestJSON, "validate", "-")
	require.NoError(t, err)
	assert.Equal(t, "stdin: init-request: ok\n", out)
}

func TestValidate_ForcedKind(t *testing.T) {
	out, _, err := run(t, initRequestJSON, "validate", "--kind", "keepalive-request", "-o", "json")
	require.ErrorIs(t, err, cli.ErrInvalidMessages)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, "keepalive-request", results[0]["kind"])

	classes := map[string]string{}
	for _, v := range results[0]["violations"].([]any) {
		m := v.(map[string]any)
		classes[m["field"].(string)] = m["class"].(string)
	}
	assert.Equal(t, "method-mismatch", classes["method"])
}

func TestValidate_JSONSchema(t *testing.T) {
	out, _, err := run(t, badPortJSON, "validate", "--json-schema", "-o", "json")
	require.ErrorIs(t, err, cli.ErrInvalidMessages)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	schemaViolations, ok := results[0]["schemaViolations"].([]any)
	require.True(t, ok, "expected schema violations in %v", results[0])
	assert.Equal(t, "params.services[0].port", schemaViolations[0].(map[string]any)["field"])

	out, _, err = run(t, initRequestJSON, "validate", "--json-schema")
	require.NoError(t, err)
	assert.Equal(t, "stdin: init-request: ok\n", out)
}

func TestValidate_Table(t *testing.T) {
	out, _, err := run(t, initRequestJSON+"\n"+badPortJSON+"\n", "validate", "--lines", "-o", "table")
	require.ErrorIs(t, err, cli.ErrInvalidMessages)

	assert.Contains(t, out, "|")
	assert.Contains(t, out, "stdin:1")
	assert.Contains(t, out, "params.services[0].port")
	assert.Contains(t, out, "invalid")
}

func TestValidate_Encodings(t *testing.T) {
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(initRequestJSON))
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "UTF8BOM", data: append([]byte{0xEF, 0xBB, 0xBF}, initRequestJSON...)},
		{name: "UTF16LE", data: utf16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "msg.json", tt.data)
			out, _, err := run(t, "", "validate", path)
			require.NoError(t, err)
			assert.Contains(t, out, "init-request: ok")
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "UnknownKind",
			args:    []string{"validate", "--kind", "ping"},
			wantErr: schema.ErrUnknownKind,
		},
		{
			name:    "UnknownOutput",
			args:    []string{"validate", "-o", "xml"},
			wantMsg: "unknown output format",
		},
		{
			name:    "MissingFile",
			args:    []string{"validate", filepath.Join(os.TempDir(), "pkttrail-missing-12345.json")},
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, initRequestJSON, tt.args...)
			require.Error(t, err)
			assert.False(t, errors.Is(err, cli.ErrInvalidMessages))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidate_Config(t *testing.T) {
	cfg := writeFile(t, "config.yaml", []byte("output:\n  format: json\nvalidation:\n  lines: true\nlog:\n  format: json\n"))

	out, logs, err := run(t, initRequestJSON+"\n"+initRequestJSON+"\n", "validate", "--config", cfg)
	require.NoError(t, err)
	assert.Len(t, decodeResults(t, out), 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(logs)), &entry), "logs: %s", logs)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "validated 2 message(s), 0 invalid", entry["message"])

	// Flags win over the file.
	out, _, err = run(t, initRequestJSON, "validate", "--config", cfg, "--lines=false", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "stdin: init-request: ok\n", out)
}

func TestValidate_SilentLogs(t *testing.T) {
	cfg := writeFile(t, "config.json", []byte(`{"log": {"silent": true}}`))

	_, logs, err := run(t, badInitRequestJSON, "validate", "--config", cfg)
	require.ErrorIs(t, err, cli.ErrInvalidMessages)
	assert.Empty(t, logs)
}

func TestSchema(t *testing.T) {
	for _, kind := range schema.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			out, _, err := run(t, "", "schema", kind.String())
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &doc))
			assert.Contains(t, doc, "$schema")
		})
	}

	_, _, err := run(t, "", "schema", "ping")
	assert.ErrorIs(t, err, schema.ErrUnknownKind)

	_, _, err = run(t, "", "schema")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, _, err := run(t, "", "kinds")
	require.NoError(t, err)

	for _, kind := range schema.Kinds() {
		assert.Contains(t, out, kind.String())
	}
	assert.Contains(t, out, schema.MethodAgentInit)
	assert.Contains(t, out, schema.MethodAgentKeepAlive)
	assert.Contains(t, out, "Request")
	assert.Contains(t, out, "Notification")
}

func TestSample(t *testing.T) {
	for _, kind := range schema.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			out, _, err := run(t, "", "sample", kind.String(), "--agent-uuid", testUUID, "--id", "42")
			require.NoError(t, err)

			msg, err := schema.Parse([]byte(out))
			require.NoError(t, err, "sample must validate: %s", out)
			assert.Equal(t, kind, msg.Kind())
			if kind != schema.KindStatusNotification {
				assert.Contains(t, out, `"id":"42"`)
			}
		})
	}
}

func TestSample_RandomUUID(t *testing.T) {
	first, _, err := run(t, "", "sample", "init-request")
	require.NoError(t, err)
	second, _, err := run(t, "", "sample", "init-request")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	_, err = schema.Parse([]byte(first))
	assert.NoError(t, err)
}

func TestSample_InvalidUUID(t *testing.T) {
	for _, id := range []string{"not-a-uuid", "3fa85f6457174562b3fc2c963f66afa6", "{3fa85f64-5717-4562-b3fc-2c963f66afa6}"} {
		_, _, err := run(t, "", "sample", "init-request", "--agent-uuid", id)
		assert.Error(t, err, id)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestExecute_Cancelled(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	args := os.Args
	t.Cleanup(func() { os.Args = args })
	os.Args = []string{"pkttrail-schema", "validate", writeFile(t, "init.json", []byte(initRequestJSON))}
	var logs bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logs)

	err := cli.Execute(ctx, version, log)
	assert.ErrorIs(t, err, context.Canceled)
}
