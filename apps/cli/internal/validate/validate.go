// Package validate checks JSONC documents against the embedded schemas.
package validate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/jsonc"
	"github.com/mehmetkoksal-w/stencil/apps/cli/schemas"
)

// JSONC validates a JSONC file against an embedded schema.
func JSONC(path string, schemaName string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := Bytes(data, schemaName); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Bytes validates JSONC content against an embedded schema.
func Bytes(data []byte, schemaName string) error {
	schema, err := schemas.Compile(schemaName)
	if err != nil {
		return err
	}
	var instance any
	if err := json.Unmarshal(jsonc.Clean(data), &instance); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("invalid: %w", err)
	}
	return nil
}
