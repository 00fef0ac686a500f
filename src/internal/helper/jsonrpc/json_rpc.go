// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/pkttrail/api-schema/src/internal/helper/gc"
)

var (
	// ErrNotObject is returned when a payload decodes to something other than a JSON object.
	ErrNotObject = errors.New("jsonrpc: message is not a JSON object")
	// ErrTrailingData is returned when a payload carries extra values after the message.
	ErrTrailingData = errors.New("jsonrpc: unexpected data after message")
)

// Decode parses a single JSON-RPC message into its generic object form.
//
// Numbers are decoded as [json.Number] rather than float64, which keeps
// integer members such as service ports exact. Batches (JSON arrays) and bare
// scalars are rejected with [ErrNotObject].
//
// Parameters:
//   - data: Raw JSON text of one message
//
// Returns:
//   - map[string]any: Decoded message object
//   - error: Syntax error, [ErrNotObject] or [ErrTrailingData]
func Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %s)", ErrNotObject, TypeName(v))
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}

	return obj, nil
}

// Encode marshals a message to compact JSON without HTML escaping.
//
// The encoding is staged in a buffer from [gc.Default]; the returned slice is
// a private copy and stays valid after the buffer is recycled.
//
// Parameters:
//   - v: Value to encode
//
// Returns:
//   - []byte: Encoded JSON without a trailing newline
//   - error: Any marshaling error
func Encode(v any) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	out := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return append([]byte(nil), out...), nil
}

// Member returns the value stored under key and whether the key is present.
// A present key holding JSON null yields (nil, true).
func Member(msg map[string]any, key string) (any, bool) {
	v, ok := msg[key]
	return v, ok
}

// Method returns the declared method of a decoded message when it is a string.
func Method(msg map[string]any) (string, bool) {
	m, ok := msg["method"].(string)
	return m, ok
}

// Integer converts a decoded JSON number to int64.
//
// It accepts [json.Number] values produced by [Decode], float64 values produced
// by a plain [json.Unmarshal], and native Go integer types used by callers that
// build messages in code. Whole-number floats such as 22.0 are accepted;
// fractional values, non-finite values, values outside the int64 range and
// non-numbers are rejected.
//
// Parameters:
//   - v: Value to convert
//
// Returns:
//   - int64: Converted value
//   - bool: Whether v is an integral number
func Integer(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case float64:
		return integral(n)
	case float32:
		return integral(float64(n))
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Clone returns a deep copy of a decoded JSON value so typed messages never
// alias the caller's maps and slices.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}

// TypeName returns the JSON type name of a decoded value for use in
// violation messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
