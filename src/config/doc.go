// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads settings for the pkttrail-schema command.
//
// Configuration is read from a YAML (.yaml, .yml) or JSON file. JSON files
// are HuJSON, so comments and trailing commas are accepted:
//
//	{
//		// report format for validate
//		"output": {"format": "table"},
//		"log": {"format": "json", "silent": false},
//		"validation": {"jsonSchema": true, "lines": true},
//	}
//
// Priority, lowest first: built-in defaults, the file (explicit path or
// PKTTRAIL_SCHEMA_CONFIG), then PKTTRAIL_SCHEMA_OUTPUT and
// PKTTRAIL_SCHEMA_LOG_FORMAT.
package config
