// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonschema publishes the agent message contract as [JSON Schema]
// (draft-07) documents and checks raw messages against them with
// [gojsonschema].
//
// The documents mirror the rules enforced by the schema package validators.
// They are meant for peers that do not link this module and for
// cross-checking; [schema.Parse] remains the authoritative validator.
//
// Example:
//
//	if err := jsonschema.Check(schema.KindKeepAliveRequest, data); err != nil {
//		var verr *schema.ValidationError
//		if errors.As(err, &verr) {
//			// same field paths as the schema package, e.g. "params.services[0].port"
//		}
//	}
//
// [JSON Schema]: https://json-schema.org
// [gojsonschema]: https://github.com/xeipuuv/gojsonschema
package jsonschema
