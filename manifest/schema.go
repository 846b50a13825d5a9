package manifest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	jsv "github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema returns the JSON schema for manifest documents, generated from the
// Manifest type.
func Schema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	reflector.ExpandedStruct = true

	s := reflector.Reflect(&Manifest{})
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated schema: %w", err)
	}
	return b, nil
}

var (
	compileOnce    sync.Once
	compiledSchema *jsv.Schema
	compileErr     error
)

func compiled() (*jsv.Schema, error) {
	compileOnce.Do(func() {
		raw, err := Schema()
		if err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = jsv.CompileString("manifest.schema.json", string(raw))
	})
	return compiledSchema, compileErr
}

// ValidateDocument checks a JSON manifest document against the generated
// schema without decoding it into a Manifest.
func ValidateDocument(data []byte) error {
	schema, err := compiled()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("manifest is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("manifest does not match schema: %w", err)
	}
	return nil
}
