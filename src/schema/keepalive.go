// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkttrail/api-schema/src/internal/helper/jsonrpc"
)

// Service is a network endpoint monitored by the agent.
type Service struct {
	// Interface is the network interface name, e.g. "eth0".
	Interface string `json:"interface"`
	// Port is in [MinPort, MaxPort].
	Port int `json:"port"`
	// Proto is the transport protocol, e.g. "tcp".
	Proto string `json:"proto"`
	// Name is an optional label. Nil when absent.
	Name *string `json:"name,omitempty"`
}

// KeepAliveRequestParams are the params of a keep-alive request.
type KeepAliveRequestParams struct {
	AgentUUID uuid.UUID `json:"agentUUID"`
	// Services keeps the order sent by the agent. Duplicates are kept.
	Services []Service `json:"services"`
}

// KeepAliveRequest is the periodic agent heartbeat.
type KeepAliveRequest struct {
	RequestEnvelope
	Params KeepAliveRequestParams `json:"params"`
}

// Kind implements [Message].
func (m *KeepAliveRequest) Kind() Kind { return KindKeepAliveRequest }

// MethodName implements [Message].
func (m *KeepAliveRequest) MethodName() string { return m.Method }

// KeepAliveResponseResult is the result of a keep-alive response.
type KeepAliveResponseResult struct {
	Status string `json:"status"`
}

// KeepAliveResponse acknowledges a keep-alive request.
type KeepAliveResponse struct {
	ResponseEnvelope
	Result KeepAliveResponseResult `json:"result"`
}

// Kind implements [Message].
func (m *KeepAliveResponse) Kind() Kind { return KindKeepAliveResponse }

// MethodName implements [Message].
func (m *KeepAliveResponse) MethodName() string { return m.Method }

// ValidateKeepAliveRequest validates a decoded keep-alive request.
//
// params.services must be an array, possibly empty. Every entry is checked
// on its own and any malformed entry fails the whole message; entries are
// never skipped.
func ValidateKeepAliveRequest(msg map[string]any) (*KeepAliveRequest, error) {
	c := newCollector(KindKeepAliveRequest)
	env := c.requestEnvelope(msg)
	c.expectMethod(msg, MethodAgentKeepAlive)

	var params KeepAliveRequestParams
	if p, ok := c.object(msg, "params"); ok {
		params.AgentUUID, _ = c.agentUUID(p, "params", "agentUUID")
		params.Services = c.services(p)
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return &KeepAliveRequest{RequestEnvelope: env, Params: params}, nil
}

// ValidateKeepAliveResponse validates a decoded keep-alive response.
func ValidateKeepAliveResponse(msg map[string]any) (*KeepAliveResponse, error) {
	c := newCollector(KindKeepAliveResponse)
	env := c.responseEnvelope(msg)
	c.expectMethod(msg, MethodAgentKeepAlive)
	c.statusResult(msg)

	if err := c.err(); err != nil {
		return nil, err
	}
	return &KeepAliveResponse{ResponseEnvelope: env, Result: KeepAliveResponseResult{Status: StatusOK}}, nil
}

func (c *collector) services(params map[string]any) []Service {
	const path = "params.services"

	v, ok := params["services"]
	if !ok {
		c.add(path, ClassPayload, "is required")
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		c.add(path, ClassPayload, "must be an array, got %s", jsonrpc.TypeName(v))
		return nil
	}

	out := make([]Service, 0, len(list))
	for i, item := range list {
		out = append(out, c.service(item, fmt.Sprintf("%s[%d]", path, i)))
	}
	return out
}

func (c *collector) service(item any, path string) Service {
	obj, ok := item.(map[string]any)
	if !ok {
		c.add(path, ClassPayload, "must be an object, got %s", jsonrpc.TypeName(item))
		return Service{}
	}

	var svc Service
	svc.Interface, _ = c.str(obj, path, "interface", ClassPayload)
	if port, ok := c.integer(obj, path, "port"); ok {
		if port < MinPort || port > MaxPort {
			c.add(join(path, "port"), ClassPayload, "must be between %d and %d, got %d", MinPort, MaxPort, port)
		} else {
			svc.Port = int(port)
		}
	}
	svc.Proto, _ = c.str(obj, path, "proto", ClassPayload)
	svc.Name, _ = c.optStr(obj, path, "name", ClassPayload)
	return svc
}

// NewKeepAliveRequest builds a keep-alive request. A nil services list is
// sent as an empty array.
func NewKeepAliveRequest(id string, agentUUID uuid.UUID, services ...Service) *KeepAliveRequest {
	if services == nil {
		services = []Service{}
	}
	return &KeepAliveRequest{
		RequestEnvelope: RequestEnvelope{JSONRPC: JSONRPCVersion, Method: MethodAgentKeepAlive, ID: id},
		Params:          KeepAliveRequestParams{AgentUUID: agentUUID, Services: services},
	}
}

// NewKeepAliveResponse builds the successful answer to the keep-alive request with the given id.
func NewKeepAliveResponse(id string) *KeepAliveResponse {
	return &KeepAliveResponse{
		ResponseEnvelope: ResponseEnvelope{JSONRPC: JSONRPCVersion, Method: MethodAgentKeepAlive, ID: id},
		Result:           KeepAliveResponseResult{Status: StatusOK},
	}
}
