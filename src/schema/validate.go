// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"fmt"

	"github.com/pkttrail/api-schema/src/internal/helper/jsonrpc"
)

// Parse decodes one raw JSON-RPC message and validates it with [Validate].
// Input that is not a single JSON object fails with [ErrMalformed].
func Parse(data []byte) (Message, error) {
	msg, err := jsonrpc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Validate(msg)
}

// ParseAs decodes one raw JSON-RPC message and validates it as kind.
func ParseAs(kind Kind, data []byte) (Message, error) {
	msg, err := jsonrpc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ValidateKind(kind, msg)
}

// Validate classifies a decoded message by its declared method and applies
// the matching validator.
func Validate(msg map[string]any) (Message, error) {
	kind, err := Classify(msg)
	if err != nil {
		return nil, err
	}
	return ValidateKind(kind, msg)
}

// Classify selects the message kind from the declared method and the
// members present:
//   - init and keep-alive methods are responses when result or error is
//     present (error responses when only error is), requests otherwise
//   - any other method without an id is a status notification
//   - any other method with an id is rejected as a method mismatch
//
// A missing or non-string method cannot be classified and is reported
// together with any jsonrpc violation.
func Classify(msg map[string]any) (Kind, error) {
	method, ok := jsonrpc.Method(msg)
	if !ok {
		c := newCollector(KindUnknown)
		c.envelope(msg, false)
		return KindUnknown, c.err()
	}

	_, hasResult := msg["result"]
	_, hasError := msg["error"]

	switch method {
	case MethodAgentInit, MethodAgentKeepAlive:
		switch {
		case hasError && !hasResult:
			return KindErrorResponse, nil
		case hasResult || hasError:
			if method == MethodAgentInit {
				return KindInitResponse, nil
			}
			return KindKeepAliveResponse, nil
		case method == MethodAgentInit:
			return KindInitRequest, nil
		default:
			return KindKeepAliveRequest, nil
		}
	}

	if _, hasID := msg["id"]; !hasID {
		return KindStatusNotification, nil
	}

	c := newCollector(KindUnknown)
	c.envelope(msg, true)
	c.add("method", ClassMethodMismatch, "unsupported method %q", method)
	return KindUnknown, c.err()
}

// ValidateKind applies the validator of one kind regardless of the
// declared method. A method that does not match the kind is reported as a
// [ClassMethodMismatch] violation.
func ValidateKind(kind Kind, msg map[string]any) (Message, error) {
	switch kind {
	case KindInitRequest:
		return unwrap(ValidateInitRequest(msg))
	case KindInitResponse:
		return unwrap(ValidateInitResponse(msg))
	case KindKeepAliveRequest:
		return unwrap(ValidateKeepAliveRequest(msg))
	case KindKeepAliveResponse:
		return unwrap(ValidateKeepAliveResponse(msg))
	case KindStatusNotification:
		return unwrap(ValidateStatusNotification(msg))
	case KindErrorResponse:
		return unwrap(ValidateErrorResponse(msg))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// unwrap converts a typed result to Message without leaking a typed nil
// pointer into the interface on failure.
func unwrap[T Message](m T, err error) (Message, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
