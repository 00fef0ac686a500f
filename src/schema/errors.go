// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by [ValidationError.Is]. A validation error
// matches every sentinel whose class occurs among its violations.
var (
	ErrEnvelope       = errors.New("schema: invalid envelope")
	ErrPayload        = errors.New("schema: invalid payload")
	ErrMethodMismatch = errors.New("schema: method mismatch")
	// ErrMalformed is returned by [Parse] when the input is not a single JSON object.
	ErrMalformed = errors.New("schema: malformed message")
)

// Class groups violations by the layer that detected them.
type Class int

const (
	// ClassEnvelope covers the jsonrpc, method and id members.
	ClassEnvelope Class = iota + 1
	// ClassPayload covers params, result and error members.
	ClassPayload
	// ClassMethodMismatch reports a method that does not match the validator applied.
	ClassMethodMismatch
)

// String returns the class name used in reports.
func (c Class) String() string {
	switch c {
	case ClassEnvelope:
		return "envelope"
	case ClassPayload:
		return "payload"
	case ClassMethodMismatch:
		return "method-mismatch"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c Class) sentinel() error {
	switch c {
	case ClassEnvelope:
		return ErrEnvelope
	case ClassPayload:
		return ErrPayload
	case ClassMethodMismatch:
		return ErrMethodMismatch
	default:
		return nil
	}
}

// Violation is one failed constraint.
type Violation struct {
	// Field is the dotted path of the offending member, e.g. "params.services[0].port".
	Field string `json:"field"`
	// Class tells which layer rejected the member.
	Class Class `json:"class"`
	// Reason describes the failed constraint.
	Reason string `json:"reason"`
}

// String formats the violation as "field: reason".
func (v Violation) String() string { return v.Field + ": " + v.Reason }

// ValidationError aggregates every violation found in one message.
// Each field path appears at most once.
type ValidationError struct {
	// Kind is the message kind being validated, or KindUnknown when the
	// message could not be classified.
	Kind       Kind        `json:"kind"`
	Violations []Violation `json:"violations"`
}

// NewValidationError builds a validation error from violations in order,
// keeping only the first violation for each field path. It returns nil when
// no violations are given.
func NewValidationError(kind Kind, violations []Violation) *ValidationError {
	if len(violations) == 0 {
		return nil
	}
	e := &ValidationError{Kind: kind}
	seen := make(map[string]struct{}, len(violations))
	for _, v := range violations {
		if _, dup := seen[v.Field]; dup {
			continue
		}
		seen[v.Field] = struct{}{}
		e.Violations = append(e.Violations, v)
	}
	return e
}

// Error lists the violations on one line.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": invalid message: ")
	for i, v := range e.Violations {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// Is reports whether target is the sentinel of one of the violation classes.
func (e *ValidationError) Is(target error) bool {
	for _, v := range e.Violations {
		if v.Class.sentinel() == target {
			return true
		}
	}
	return false
}

// Fields maps each offending field path to its reason.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		out[v.Field] = v.Reason
	}
	return out
}

// Has reports whether the field path has a violation.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Lookup(field)
	return ok
}

// Lookup returns the violation recorded for the field path.
func (e *ValidationError) Lookup(field string) (Violation, bool) {
	for _, v := range e.Violations {
		if v.Field == field {
			return v, true
		}
	}
	return Violation{}, false
}

// ToErrorObject renders the error as a JSON-RPC error object a collector
// can send back. Payload-only failures map to invalid params, anything
// touching the envelope or method maps to invalid request. Data carries the
// field map.
func (e *ValidationError) ToErrorObject() ErrorObject {
	code, message := CodeInvalidParams, "Invalid params"
	for _, v := range e.Violations {
		if v.Class != ClassPayload {
			code, message = CodeInvalidRequest, "Invalid Request"
			break
		}
	}
	return ErrorObject{Code: code, Message: message, Data: e.Fields()}
}

// collector accumulates violations for one validation call.
type collector struct {
	kind       Kind
	violations []Violation
}

func newCollector(kind Kind) *collector { return &collector{kind: kind} }

func (c *collector) add(field string, class Class, format string, args ...any) {
	c.violations = append(c.violations, Violation{
		Field:  field,
		Class:  class,
		Reason: fmt.Sprintf(format, args...),
	})
}

// err returns nil when nothing was collected. The explicit nil keeps a typed
// nil pointer out of the error interface.
func (c *collector) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return NewValidationError(c.kind, c.violations)
}
