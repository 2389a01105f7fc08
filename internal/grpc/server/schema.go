package server

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// payloadSchema validates a decoded Struct payload before it is converted to a model
type payloadSchema struct {
	schema *gojsonschema.Schema
}

func loadSchema(name string) (*payloadSchema, error) {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, err
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &payloadSchema{schema: schema}, nil
}

func mustLoadSchema(name string) *payloadSchema {
	s, err := loadSchema(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate returns a single error listing every schema violation
func (s *payloadSchema) Validate(m map[string]interface{}) error {
	res, err := s.schema.Validate(gojsonschema.NewGoLoader(m))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
