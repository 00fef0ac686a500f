// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for pkttrail-schema.
// It uses the cobra library to validate agent control-protocol messages,
// print the embedded JSON Schema documents, list message kinds and emit
// sample messages.
package cli
