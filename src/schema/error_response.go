// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"fmt"

	"github.com/pkttrail/api-schema/src/internal/helper/jsonrpc"
)

// ErrorObject is the standard JSON-RPC 2.0 error member.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements error so a received error object can be returned as-is.
func (e ErrorObject) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// ErrorResponse reports a failed init or keep-alive exchange. Successful
// responses only ever carry status "ok", so failures use the JSON-RPC error
// member at the envelope level.
type ErrorResponse struct {
	ResponseEnvelope
	Error ErrorObject `json:"error"`
}

// Kind implements [Message].
func (m *ErrorResponse) Kind() Kind { return KindErrorResponse }

// MethodName implements [Message].
func (m *ErrorResponse) MethodName() string { return m.Method }

// agentMethods are the methods that have responses.
var agentMethods = [...]string{MethodAgentInit, MethodAgentKeepAlive}

func isAgentMethod(method string) bool {
	for _, m := range agentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ValidateErrorResponse validates a decoded error response.
//
// Rules:
//   - envelope: jsonrpc "2.0", method string, id string
//   - method is [MethodAgentInit] or [MethodAgentKeepAlive]
//   - error is an object with an integer code and a string message
//   - result is absent
func ValidateErrorResponse(msg map[string]any) (*ErrorResponse, error) {
	c := newCollector(KindErrorResponse)
	env := c.responseEnvelope(msg)
	if method, ok := msg["method"].(string); ok && !isAgentMethod(method) {
		c.add("method", ClassMethodMismatch, "must be %q or %q, got %q", MethodAgentInit, MethodAgentKeepAlive, method)
	}
	c.forbid(msg, "result", "must be omitted when error is present")

	var obj ErrorObject
	if e, ok := c.object(msg, "error"); ok {
		if code, ok := c.integer(e, "error", "code"); ok {
			obj.Code = int(code)
		}
		obj.Message, _ = c.str(e, "error", "message", ClassPayload)
		if data, ok := e["data"]; ok {
			obj.Data = jsonrpc.Clone(data)
		}
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return &ErrorResponse{ResponseEnvelope: env, Error: obj}, nil
}

// NewErrorResponse builds an error response for an agent method.
func NewErrorResponse(method, id string, obj ErrorObject) *ErrorResponse {
	return &ErrorResponse{
		ResponseEnvelope: ResponseEnvelope{JSONRPC: JSONRPCVersion, Method: method, ID: id},
		Error:            obj,
	}
}
