// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// pkttrail-schema validates and describes pkttrail agent control-protocol
// messages: the JSON-RPC 2.0 init handshake, keep-alive heartbeat and status
// notifications exchanged between a monitoring agent and its collector.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/pkttrail/api-schema/cmd/pkttrail-schema@latest
//
// # Usage
//
//	pkttrail-schema validate [FILE...] [FLAGS]
//	pkttrail-schema schema KIND
//	pkttrail-schema kinds
//	pkttrail-schema sample KIND [FLAGS]
//
// # Flags
//
//	    --config        Configuration file (.json with comments, .yaml, .yml)
//	-k, --kind          Validate every message as KIND instead of detecting it
//	-l, --lines         Read newline-delimited messages
//	    --json-schema   Also check messages against the JSON Schema documents
//	-o, --output        Report format: text, json or table
//
// # Examples
//
// Validate a captured agent log, one message per line:
//
//	pkttrail-schema validate --lines -o table agent.log
//
// Generate a keep-alive and validate it back:
//
//	pkttrail-schema sample keepalive-request | pkttrail-schema validate --json-schema
//
// The exit status is non-zero when any message is invalid.
package main
