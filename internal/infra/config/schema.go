// Where: internal/infra/config/schema.go
// What: JSON schema validation for config.yaml.
// Why: Reject typos in tool definitions before any process is launched.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaURL = "mem://create-ethora-app/config.schema.json"

//go:embed schema/config.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Validate checks a YAML document against the embedded config schema.
// An empty document is valid.
func Validate(content []byte) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if document == nil {
		return nil
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("%w: %s", ErrSchemaFailed, strings.TrimSpace(err.Error()))
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
