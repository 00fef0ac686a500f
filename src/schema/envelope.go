// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

// Message is implemented by every validated message type.
type Message interface {
	// Kind returns the concrete message kind.
	Kind() Kind
	// MethodName returns the envelope method.
	MethodName() string
}

// RequestEnvelope holds the members common to every request.
type RequestEnvelope struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	// ID is an opaque correlation token. Uniqueness is not checked here.
	ID string `json:"id"`
}

// ResponseEnvelope holds the members common to every response. Responses in
// this protocol repeat the request method.
type ResponseEnvelope struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	ID      string `json:"id"`
}

// NotificationEnvelope holds the members common to every notification.
type NotificationEnvelope struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
}

// ValidateRequestEnvelope checks jsonrpc, method and id of a request.
func ValidateRequestEnvelope(msg map[string]any) (RequestEnvelope, error) {
	c := newCollector(KindUnknown)
	env := c.requestEnvelope(msg)
	if err := c.err(); err != nil {
		return RequestEnvelope{}, err
	}
	return env, nil
}

// ValidateResponseEnvelope checks jsonrpc, method and id of a response.
func ValidateResponseEnvelope(msg map[string]any) (ResponseEnvelope, error) {
	c := newCollector(KindUnknown)
	env := c.responseEnvelope(msg)
	if err := c.err(); err != nil {
		return ResponseEnvelope{}, err
	}
	return env, nil
}

// ValidateNotificationEnvelope checks jsonrpc and method of a notification.
func ValidateNotificationEnvelope(msg map[string]any) (NotificationEnvelope, error) {
	c := newCollector(KindUnknown)
	env := c.notificationEnvelope(msg)
	if err := c.err(); err != nil {
		return NotificationEnvelope{}, err
	}
	return env, nil
}

func (c *collector) requestEnvelope(msg map[string]any) RequestEnvelope {
	method, id := c.envelope(msg, true)
	return RequestEnvelope{JSONRPC: JSONRPCVersion, Method: method, ID: id}
}

func (c *collector) responseEnvelope(msg map[string]any) ResponseEnvelope {
	method, id := c.envelope(msg, true)
	return ResponseEnvelope{JSONRPC: JSONRPCVersion, Method: method, ID: id}
}

func (c *collector) notificationEnvelope(msg map[string]any) NotificationEnvelope {
	method, _ := c.envelope(msg, false)
	return NotificationEnvelope{JSONRPC: JSONRPCVersion, Method: method}
}

// envelope validates jsonrpc and method, and id when withID is set. The
// returned values are only meaningful when no violation was recorded.
func (c *collector) envelope(msg map[string]any, withID bool) (method, id string) {
	c.literal(msg, "", "jsonrpc", JSONRPCVersion, ClassEnvelope)
	method, _ = c.str(msg, "", "method", ClassEnvelope)
	if withID {
		id, _ = c.str(msg, "", "id", ClassEnvelope)
	}
	return method, id
}

// expectMethod records a mismatch when a string method differs from want.
// Missing or non-string methods are already reported by envelope.
func (c *collector) expectMethod(msg map[string]any, want string) {
	if method, ok := msg["method"].(string); ok && method != want {
		c.add("method", ClassMethodMismatch, "must be %q, got %q", want, method)
	}
}
