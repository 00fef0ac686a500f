// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC 2.0] message handling.
// It decodes raw text into the generic object form consumed by the schema
// validators (numbers are kept as [encoding/json.Number] so integer fields can
// be checked exactly), extracts envelope members, deep-copies pass-through
// values, and re-encodes typed messages through pooled buffers.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
