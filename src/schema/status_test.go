// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/pkttrail/api-schema/src/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStatusNotification(t *testing.T) {
	msg := decode(t, `{"jsonrpc":"2.0","method":"pkttrail.agent.os.status","params":{"load":{"1m":0.5},"future":["x"]}}`)

	n, err := schema.ValidateStatusNotification(msg)
	require.NoError(t, err)
	assert.Equal(t, schema.KindStatusNotification, n.Kind())
	assert.Equal(t, schema.MethodAgentStatus, n.MethodName())

	params, ok := n.Params.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"x"}, params["future"], "unknown params pass through")

	// The typed value must not alias the input.
	msg["params"].(map[string]any)["future"] = "changed"
	assert.Equal(t, []any{"x"}, params["future"])
}

func TestValidateStatusNotification_AnyMethod(t *testing.T) {
	n, err := schema.ValidateStatusNotification(decode(t, `{"jsonrpc":"2.0","method":"vendor.custom.event"}`))
	require.NoError(t, err)
	assert.Equal(t, "vendor.custom.event", n.Method)
	assert.Nil(t, n.Params)
}

func TestValidateStatusNotification_Envelope(t *testing.T) {
	_, err := schema.ValidateStatusNotification(decode(t, `{"jsonrpc":"2.0"}`))
	requireViolation(t, err, "method", schema.ClassEnvelope)
}

func TestNewStatusNotification(t *testing.T) {
	n := schema.NewStatusNotification("", map[string]any{"state": "degraded"})
	assert.Equal(t, schema.MethodAgentStatus, n.Method)

	data := mustEncode(t, n)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"pkttrail.agent.os.status","params":{"state":"degraded"}}`, string(data))

	got, err := schema.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, schema.KindStatusNotification, got.Kind())

	bare := schema.NewStatusNotification("vendor.ping", nil)
	data = mustEncode(t, bare)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"vendor.ping"}`, string(data))
}

func TestValidateErrorResponse(t *testing.T) {
	resp, err := schema.ValidateErrorResponse(decode(t, `{"jsonrpc":"2.0","method":"pkttrail.agent.os.init","id":"1","error":{"code":-32602,"message":"Invalid params","data":{"params.schemaVersion":"must be \"1.0\""}}}`))
	require.NoError(t, err)

	assert.Equal(t, schema.KindErrorResponse, resp.Kind())
	assert.Equal(t, schema.CodeInvalidParams, resp.Error.Code)
	assert.Equal(t, "Invalid params", resp.Error.Message)
	assert.Equal(t, map[string]any{"params.schemaVersion": `must be "1.0"`}, resp.Error.Data)
	assert.EqualError(t, resp.Error, "jsonrpc error -32602: Invalid params")
}

func TestValidateErrorResponse_Violations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
		class schema.Class
	}{
		{
			name:  "unknown method",
			input: `{"jsonrpc":"2.0","method":"pkttrail.agent.os.status","id":"1","error":{"code":1,"message":"x"}}`,
			field: "method",
			class: schema.ClassMethodMismatch,
		},
		{
			name:  "result and error",
			input: `{"jsonrpc":"2.0","method":"pkttrail.agent.os.init","id":"1","result":{"status":"ok"},"error":{"code":1,"message":"x"}}`,
			field: "result",
			class: schema.ClassPayload,
		},
		{
			name:  "error missing",
			input: `{"jsonrpc":"2.0","method":"pkttrail.agent.os.init","id":"1"}`,
			field: "error",
			class: schema.ClassPayload,
		},
		{
			name:  "fractional code",
			input: `{"jsonrpc":"2.0","method":"pkttrail.agent.os.init","id":"1","error":{"code":1.5,"message":"x"}}`,
			field: "error.code",
			class: schema.ClassPayload,
		},
		{
			name:  "message missing",
			input: `{"jsonrpc":"2.0","method":"pkttrail.agent.os.keepalive","id":"1","error":{"code":1}}`,
			field: "error.message",
			class: schema.ClassPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := schema.ValidateErrorResponse(decode(t, tt.input))
			assert.Nil(t, resp)
			requireViolation(t, err, tt.field, tt.class)
		})
	}
}

func TestNewErrorResponse_Validates(t *testing.T) {
	resp := schema.NewErrorResponse(schema.MethodAgentKeepAlive, "hb-2", schema.ErrorObject{
		Code:    -32000,
		Message: "agent not initialized",
	})

	data := mustEncode(t, resp)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"pkttrail.agent.os.keepalive","id":"hb-2","error":{"code":-32000,"message":"agent not initialized"}}`, string(data))

	got, err := schema.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestErrorObject_JSON(t *testing.T) {
	var obj schema.ErrorObject
	require.NoError(t, json.Unmarshal([]byte(`{"code":-32600,"message":"Invalid Request"}`), &obj))
	assert.Equal(t, schema.ErrorObject{Code: schema.CodeInvalidRequest, Message: "Invalid Request"}, obj)
}
