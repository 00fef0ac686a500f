// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import "github.com/pkttrail/api-schema/src/internal/helper/jsonrpc"

// StatusNotification is an agent status report. No payload fields are
// defined yet; params pass through unvalidated.
type StatusNotification struct {
	NotificationEnvelope
	// Params is a deep copy of the incoming params, nil when absent.
	Params any `json:"params,omitempty"`
}

// Kind implements [Message].
func (m *StatusNotification) Kind() Kind { return KindStatusNotification }

// MethodName implements [Message].
func (m *StatusNotification) MethodName() string { return m.Method }

// ValidateStatusNotification validates the envelope of a notification. Any
// method string is accepted and unknown params are kept as-is.
func ValidateStatusNotification(msg map[string]any) (*StatusNotification, error) {
	c := newCollector(KindStatusNotification)
	env := c.notificationEnvelope(msg)

	if err := c.err(); err != nil {
		return nil, err
	}
	n := &StatusNotification{NotificationEnvelope: env}
	if p, ok := msg["params"]; ok {
		n.Params = jsonrpc.Clone(p)
	}
	return n, nil
}

// NewStatusNotification builds a status notification. An empty method
// defaults to [MethodAgentStatus].
func NewStatusNotification(method string, params map[string]any) *StatusNotification {
	if method == "" {
		method = MethodAgentStatus
	}
	n := &StatusNotification{NotificationEnvelope: NotificationEnvelope{JSONRPC: JSONRPCVersion, Method: method}}
	if params != nil {
		n.Params = params
	}
	return n
}
