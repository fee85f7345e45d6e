package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fragmentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"properties": {
			"itemTplToClone": {"type": "string"},
			"fleaPriceRoubles": {"type": "number", "minimum": 0}
		},
		"required": ["itemTplToClone"]
	}
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	schemaPath := filepath.Join(t.TempDir(), "fragment.schema.json")
	if err := os.WriteFile(schemaPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}
	return schemaPath
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	schemaPath := writeSchema(t, fragmentSchema)
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid fragment",
			data: `{"rex_pistol": {"itemTplToClone": "PISTOL_PM", "fleaPriceRoubles": 30000}}`,
		},
		{
			name: "valid fragment without optional field",
			data: `{"rex_pistol": {"itemTplToClone": "PISTOL_PM"}}`,
		},
		{
			name: "empty fragment",
			data: `{}`,
		},
		{
			name:      "missing required field",
			data:      `{"rex_pistol": {"fleaPriceRoubles": 1}}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"rex_pistol": {"itemTplToClone": 5}}`,
			wantError: true,
			errorMsg:  "/rex_pistol/itemTplToClone",
		},
		{
			name:      "constraint violation",
			data:      `{"rex_pistol": {"itemTplToClone": "x", "fleaPriceRoubles": -5}}`,
			wantError: true,
			errorMsg:  "fleaPriceRoubles",
		},
		{
			name:      "invalid JSON",
			data:      `{"rex_pistol": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "fragment.json")
			if err := os.WriteFile(dataPath, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write data file: %v", err)
			}

			err := validator.ValidateFile(dataPath, schemaPath)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_RegisterSchema(t *testing.T) {
	validator := NewSchemaValidator()

	require.NoError(t, validator.RegisterSchema("item-fragment.schema.json", []byte(fragmentSchema)))

	assert.NoError(t, validator.ValidateBytes([]byte(`{"a": {"itemTplToClone": "x"}}`), "item-fragment.schema.json"))

	err := validator.ValidateBytes([]byte(`{"a": {}}`), "item-fragment.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	err = validator.RegisterSchema("broken", []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestSchemaValidator_ReRegisterReplacesCompiledSchema(t *testing.T) {
	validator := NewSchemaValidator()
	data := []byte(`{"a": {}}`)

	require.NoError(t, validator.RegisterSchema("fragment", []byte(`{"type": "object"}`)))
	require.NoError(t, validator.ValidateBytes(data, "fragment"))

	require.NoError(t, validator.RegisterSchema("fragment", []byte(fragmentSchema)))
	assert.Error(t, validator.ValidateBytes(data, "fragment"))
}

func TestSchemaValidator_InvalidSchemaFile(t *testing.T) {
	validator := NewSchemaValidator()

	dataPath := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(dataPath, []byte(`{}`), 0644); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}

	err := validator.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_InvalidDataFile(t *testing.T) {
	validator := NewSchemaValidator()
	schemaPath := writeSchema(t, `{"type": "object"}`)

	err := validator.ValidateFile("nonexistent.json", schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeSchema(t, `{"type": "object"}`)

	// First validation should compile and cache the schema
	data := []byte(`{"rex_pistol": {}}`)
	require.NoError(t, v.ValidateBytes(data, schemaPath))
	assert.Equal(t, 1, v.schemas.Len())

	// Second validation should use cached schema
	require.NoError(t, v.ValidateBytes(data, schemaPath))
	assert.Equal(t, 1, v.schemas.Len())
}

func TestSchemaValidator_OneOfValidation(t *testing.T) {
	validator := NewSchemaValidator()
	schemaPath := writeSchema(t, `{
		"type": "object",
		"properties": {
			"modSlot": {
				"oneOf": [
					{"type": "string"},
					{"type": "array", "items": {"type": "string"}}
				]
			}
		}
	}`)

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{"single string", `{"modSlot": "mod_scope"}`, false},
		{"string list", `{"modSlot": ["mod_scope", "mod_muzzle"]}`, false},
		{"number", `{"modSlot": 7}`, true},
		{"mixed list", `{"modSlot": ["mod_scope", 7]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
