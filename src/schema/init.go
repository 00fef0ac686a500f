// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import "github.com/google/uuid"

// InitRequestParams are the params of an init request.
type InitRequestParams struct {
	// SchemaVersion is always [SchemaVersion]. Later versions are rejected.
	SchemaVersion string `json:"schemaVersion"`
	// AgentSWVersion is the free-form agent software version.
	AgentSWVersion string `json:"agentSWVersion"`
	// AgentUUID identifies the agent instance.
	AgentUUID uuid.UUID `json:"agentUUID"`
}

// InitRequest is sent by an agent to open a session with the collector.
type InitRequest struct {
	RequestEnvelope
	Params InitRequestParams `json:"params"`
}

// Kind implements [Message].
func (m *InitRequest) Kind() Kind { return KindInitRequest }

// MethodName implements [Message].
func (m *InitRequest) MethodName() string { return m.Method }

// InitResponseResult is the result of an init response.
type InitResponseResult struct {
	// Status is always [StatusOK].
	Status string `json:"status"`
}

// InitResponse acknowledges an init request.
type InitResponse struct {
	ResponseEnvelope
	Result InitResponseResult `json:"result"`
}

// Kind implements [Message].
func (m *InitResponse) Kind() Kind { return KindInitResponse }

// MethodName implements [Message].
func (m *InitResponse) MethodName() string { return m.Method }

// ValidateInitRequest validates a decoded init request.
//
// Rules:
//   - envelope: jsonrpc "2.0", method string, id string
//   - method is [MethodAgentInit]
//   - params.schemaVersion is exactly [SchemaVersion]
//   - params.agentSWVersion is a non-empty string
//   - params.agentUUID is a canonical UUID
//
// All violations are collected before returning.
func ValidateInitRequest(msg map[string]any) (*InitRequest, error) {
	c := newCollector(KindInitRequest)
	env := c.requestEnvelope(msg)
	c.expectMethod(msg, MethodAgentInit)

	var params InitRequestParams
	if p, ok := c.object(msg, "params"); ok {
		c.literal(p, "params", "schemaVersion", SchemaVersion, ClassPayload)
		params.AgentSWVersion, _ = c.nonEmpty(p, "params", "agentSWVersion")
		params.AgentUUID, _ = c.agentUUID(p, "params", "agentUUID")
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	params.SchemaVersion = SchemaVersion
	return &InitRequest{RequestEnvelope: env, Params: params}, nil
}

// ValidateInitResponse validates a decoded init response. The result status
// must be [StatusOK]; failures are carried by [ErrorResponse] instead.
func ValidateInitResponse(msg map[string]any) (*InitResponse, error) {
	c := newCollector(KindInitResponse)
	env := c.responseEnvelope(msg)
	c.expectMethod(msg, MethodAgentInit)
	c.statusResult(msg)

	if err := c.err(); err != nil {
		return nil, err
	}
	return &InitResponse{ResponseEnvelope: env, Result: InitResponseResult{Status: StatusOK}}, nil
}

// statusResult validates the {"status":"ok"} result shared by all
// successful responses.
func (c *collector) statusResult(msg map[string]any) {
	c.forbid(msg, "error", "must be omitted in a successful response")
	if r, ok := c.object(msg, "result"); ok {
		c.literal(r, "result", "status", StatusOK, ClassPayload)
	}
}

// NewInitRequest builds an init request for the current schema version.
func NewInitRequest(id, agentSWVersion string, agentUUID uuid.UUID) *InitRequest {
	return &InitRequest{
		RequestEnvelope: RequestEnvelope{JSONRPC: JSONRPCVersion, Method: MethodAgentInit, ID: id},
		Params: InitRequestParams{
			SchemaVersion:  SchemaVersion,
			AgentSWVersion: agentSWVersion,
			AgentUUID:      agentUUID,
		},
	}
}

// NewInitResponse builds the successful answer to the init request with the given id.
func NewInitResponse(id string) *InitResponse {
	return &InitResponse{
		ResponseEnvelope: ResponseEnvelope{JSONRPC: JSONRPCVersion, Method: MethodAgentInit, ID: id},
		Result:           InitResponseResult{Status: StatusOK},
	}
}
