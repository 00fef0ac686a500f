// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package schema defines the pkttrail agent control protocol messages and
// validates them.
//
// Every message is a [JSON-RPC 2.0] envelope (request, response or
// notification) composed with a method-specific payload:
//
//	method                        request params                          response result
//	pkttrail.agent.os.init        schemaVersion, agentSWVersion, agentUUID  status
//	pkttrail.agent.os.keepalive   agentUUID, services[]                     status
//	(any)                         status notification, params pass through
//
// Validators take a decoded JSON object (see [Parse] for raw text) and return
// either a typed, immutable message or a [*ValidationError] listing every
// violated constraint by field path. Validators hold no state and are safe for
// concurrent use.
//
// Example:
//
//	msg, err := schema.Parse(data)
//	if err != nil {
//		var verr *schema.ValidationError
//		if errors.As(err, &verr) {
//			for field, reason := range verr.Fields() {
//				log.Printf("%s: %s", field, reason)
//			}
//		}
//		return err
//	}
//
//	switch m := msg.(type) {
//	case *schema.InitRequest:
//		log.Printf("agent %s running %s", m.Params.AgentUUID, m.Params.AgentSWVersion)
//	case *schema.KeepAliveRequest:
//		log.Printf("agent %s reports %d services", m.Params.AgentUUID, len(m.Params.Services))
//	}
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package schema
