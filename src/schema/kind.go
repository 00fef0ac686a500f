// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a message kind name is not recognized.
var ErrUnknownKind = errors.New("schema: unknown message kind")

// Kind identifies one concrete message shape.
type Kind int

// Message kinds. KindUnknown is used for errors raised before a message
// could be classified.
const (
	KindUnknown Kind = iota
	KindInitRequest
	KindInitResponse
	KindKeepAliveRequest
	KindKeepAliveResponse
	KindStatusNotification
	KindErrorResponse
)

var kindNames = [...]string{
	KindUnknown:            "unknown",
	KindInitRequest:        "init-request",
	KindInitResponse:       "init-response",
	KindKeepAliveRequest:   "keepalive-request",
	KindKeepAliveResponse:  "keepalive-response",
	KindStatusNotification: "status-notification",
	KindErrorResponse:      "error-response",
}

// Kinds returns every concrete message kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindInitRequest,
		KindInitResponse,
		KindKeepAliveRequest,
		KindKeepAliveResponse,
		KindStatusNotification,
		KindErrorResponse,
	}
}

// String returns the kebab-case name of the kind, e.g. "init-request".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := LookupKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// LookupKind resolves a kind by its name as returned by [Kind.String].
func LookupKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Method returns the method literal fixed by the kind. Status notifications
// and error responses are not bound to one method and return "".
func (k Kind) Method() string {
	switch k {
	case KindInitRequest, KindInitResponse:
		return MethodAgentInit
	case KindKeepAliveRequest, KindKeepAliveResponse:
		return MethodAgentKeepAlive
	default:
		return ""
	}
}

// Direction is the JSON-RPC envelope variant of a message.
type Direction string

const (
	DirectionRequest      Direction = "request"
	DirectionResponse     Direction = "response"
	DirectionNotification Direction = "notification"
)

// Direction returns the envelope variant used by the kind.
func (k Kind) Direction() Direction {
	switch k {
	case KindInitRequest, KindKeepAliveRequest:
		return DirectionRequest
	case KindInitResponse, KindKeepAliveResponse, KindErrorResponse:
		return DirectionResponse
	case KindStatusNotification:
		return DirectionNotification
	default:
		return ""
	}
}
