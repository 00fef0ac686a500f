// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

// Protocol literals. These values appear on the wire and must match exactly.
const (
	// JSONRPCVersion is the only accepted value of the "jsonrpc" member.
	JSONRPCVersion = "2.0"
	// SchemaVersion is the only accepted init request schema version.
	SchemaVersion = "1.0"
	// StatusOK is the only defined response status.
	StatusOK = "ok"
)

// Agent methods.
const (
	MethodAgentInit      = "pkttrail.agent.os.init"
	MethodAgentKeepAlive = "pkttrail.agent.os.keepalive"
	// MethodAgentStatus is the method used by [NewStatusNotification] when
	// none is given. Status notifications are not bound to it.
	MethodAgentStatus = "pkttrail.agent.os.status"
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Port bounds for a reported service, inclusive.
const (
	MinPort = 1
	MaxPort = 65535
)
