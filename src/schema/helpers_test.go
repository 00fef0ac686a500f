// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema_test

import (
	"errors"
	"testing"

	"github.com/pkttrail/api-schema/src/internal/helper/jsonrpc"
	"github.com/pkttrail/api-schema/src/schema"
	"github.com/stretchr/testify/require"
)

const (
	testUUID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

	initRequestJSON = `{"jsonrpc":"2.0","method":"pkttrail.agent.os.init","id":"1","params":{"schemaVersion":"1.0","agentSWVersion":"0.0.1","agentUUID":"3fa85f64-5717-4562-b3fc-2c963f66afa6"}}`

	keepAliveRequestJSON = `{"jsonrpc":"2.0","method":"pkttrail.agent.os.keepalive","id":"1","params":{"agentUUID":"3fa85f64-5717-4562-b3fc-2c963f66afa6","services":[{"interface":"eth0","port":22,"proto":"tcp"}]}}`
)

// decode turns a JSON literal into the generic message form.
func decode(t *testing.T, data string) map[string]any {
	t.Helper()
	msg, err := jsonrpc.Decode([]byte(data))
	require.NoError(t, err, "test fixture must be valid JSON")
	return msg
}

// validationError extracts the aggregated error or fails the test.
func validationError(t *testing.T, err error) *schema.ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr), "expected *schema.ValidationError, got %T: %v", err, err)
	return verr
}

// requireViolation asserts that field was rejected with the given class.
func requireViolation(t *testing.T, err error, field string, class schema.Class) {
	t.Helper()
	verr := validationError(t, err)
	v, ok := verr.Lookup(field)
	require.True(t, ok, "expected a violation on %q, got %v", field, verr.Violations)
	require.Equal(t, class, v.Class, "violation class for %q", field)
}

// mustEncode marshals a message the way a sender would.
func mustEncode(t *testing.T, v any) []byte {
	t.Helper()
	data, err := jsonrpc.Encode(v)
	require.NoError(t, err)
	return data
}

// fieldsOf lists violation fields in report order.
func fieldsOf(verr *schema.ValidationError) []string {
	out := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		out = append(out, v.Field)
	}
	return out
}
