// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pkttrail/api-schema/src/internal/helper/jsonrpc"
)

// join builds a child field path.
func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// str reads a required string member.
func (c *collector) str(obj map[string]any, parent, key string, class Class) (string, bool) {
	path := join(parent, key)
	v, ok := obj[key]
	if !ok {
		c.add(path, class, "is required")
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		c.add(path, class, "must be a string, got %s", jsonrpc.TypeName(v))
		return "", false
	}
	return s, true
}

// optStr reads an optional string member. A nil result means absent.
func (c *collector) optStr(obj map[string]any, parent, key string, class Class) (*string, bool) {
	v, ok := obj[key]
	if !ok {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		c.add(join(parent, key), class, "must be a string, got %s", jsonrpc.TypeName(v))
		return nil, false
	}
	return &s, true
}

// nonEmpty reads a required string member that must not be empty.
func (c *collector) nonEmpty(obj map[string]any, parent, key string) (string, bool) {
	s, ok := c.str(obj, parent, key, ClassPayload)
	if ok && s == "" {
		c.add(join(parent, key), ClassPayload, "must not be empty")
		return "", false
	}
	return s, ok
}

// literal reads a required string member that must equal want.
func (c *collector) literal(obj map[string]any, parent, key, want string, class Class) bool {
	s, ok := c.str(obj, parent, key, class)
	if ok && s != want {
		c.add(join(parent, key), class, "must be %q, got %q", want, s)
		return false
	}
	return ok
}

// object reads a required member that must be a JSON object.
func (c *collector) object(obj map[string]any, key string) (map[string]any, bool) {
	v, ok := obj[key]
	if !ok {
		c.add(key, ClassPayload, "is required")
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		c.add(key, ClassPayload, "must be an object, got %s", jsonrpc.TypeName(v))
		return nil, false
	}
	return m, true
}

// integer reads a required integral number member.
func (c *collector) integer(obj map[string]any, parent, key string) (int64, bool) {
	path := join(parent, key)
	v, ok := obj[key]
	if !ok {
		c.add(path, ClassPayload, "is required")
		return 0, false
	}
	n, ok := jsonrpc.Integer(v)
	if !ok {
		c.add(path, ClassPayload, "must be an integer, got %s", jsonrpc.TypeName(v))
		return 0, false
	}
	return n, true
}

// agentUUID reads a required UUID member in canonical 8-4-4-4-12 form.
func (c *collector) agentUUID(obj map[string]any, parent, key string) (uuid.UUID, bool) {
	s, ok := c.str(obj, parent, key, ClassPayload)
	if !ok {
		return uuid.Nil, false
	}
	id, err := parseUUID(s)
	if err != nil {
		c.add(join(parent, key), ClassPayload, "must be a UUID in 8-4-4-4-12 form, got %q", s)
		return uuid.Nil, false
	}
	return id, true
}

var errUUIDLength = errors.New("uuid must be 36 characters")

// parseUUID accepts only the hyphenated 36 character form. uuid.Parse also
// takes braced, URN and bare hex forms, which do not round-trip textually.
func parseUUID(s string) (uuid.UUID, error) {
	if len(s) != 36 {
		return uuid.Nil, errUUIDLength
	}
	return uuid.Parse(s)
}

// forbid records a violation when a member that must be absent is present.
func (c *collector) forbid(obj map[string]any, key, reason string) {
	if _, ok := obj[key]; ok {
		c.add(key, ClassPayload, "%s", reason)
	}
}
