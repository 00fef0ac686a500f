// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonschema

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/pkttrail/api-schema/src/schema"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed documents/*.json
var documents embed.FS

// rootField is the field name gojsonschema uses for the document root.
const rootField = "(root)"

// compiled holds one lazily compiled document. Schemas are read-only once
// compiled and shared by concurrent callers.
type compiled struct {
	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

var cache = func() map[schema.Kind]*compiled {
	m := make(map[schema.Kind]*compiled, len(schema.Kinds()))
	for _, k := range schema.Kinds() {
		m[k] = &compiled{}
	}
	return m
}()

// arrayIndex matches numeric path segments such as ".0".
var arrayIndex = regexp.MustCompile(`\.(\d+)(\.|$)`)

// Document returns the raw JSON Schema document for kind.
//
// Parameters:
//   - kind: Message kind
//
// Returns:
//   - []byte: Document contents
//   - error: [schema.ErrUnknownKind] for KindUnknown or out of range kinds
func Document(kind schema.Kind) ([]byte, error) {
	if _, ok := cache[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownKind, kind)
	}
	return documents.ReadFile("documents/" + kind.String() + ".json")
}

// Check validates raw JSON against the document of kind.
//
// Parameters:
//   - kind: Message kind whose document applies
//   - data: Raw JSON text of one message
//
// Returns:
//   - error: nil when valid, [*schema.ValidationError] listing the
//     violations, [schema.ErrMalformed] when data is not JSON, or an error
//     when the document cannot be compiled
func Check(kind schema.Kind, data []byte) error {
	s, err := load(kind)
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", schema.ErrMalformed, err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]schema.Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, violation(re))
	}
	if verr := schema.NewValidationError(kind, violations); verr != nil {
		return verr
	}
	return nil
}

func load(kind schema.Kind) (*gojsonschema.Schema, error) {
	c, ok := cache[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownKind, kind)
	}
	c.once.Do(func() {
		doc, err := Document(kind)
		if err != nil {
			c.err = err
			return
		}
		c.schema, c.err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(doc))
		if c.err != nil {
			c.err = fmt.Errorf("compile %s schema: %w", kind, c.err)
		}
	})
	return c.schema, c.err
}

// violation converts a gojsonschema result error to the schema package
// field path and class conventions.
func violation(re gojsonschema.ResultError) schema.Violation {
	field := re.Field()
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			switch {
			case field == rootField:
				field = prop
			case field != prop && !strings.HasSuffix(field, "."+prop):
				field = field + "." + prop
			}
		}
	}
	field = arrayIndex.ReplaceAllString(field, "[$1]$2")
	// A second pass catches adjacent indexes such as ".0.1".
	field = arrayIndex.ReplaceAllString(field, "[$1]$2")

	return schema.Violation{
		Field:  field,
		Class:  classOf(field, re.Type()),
		Reason: re.Description(),
	}
}

func classOf(field, errType string) schema.Class {
	switch field {
	case "jsonrpc", "id":
		return schema.ClassEnvelope
	case "method":
		if errType == "const" || errType == "enum" {
			return schema.ClassMethodMismatch
		}
		return schema.ClassEnvelope
	}
	return schema.ClassPayload
}
