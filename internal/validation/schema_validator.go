package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// DefaultCacheSize bounds the number of compiled schemas kept in memory
const DefaultCacheSize = 32

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaRef string) error
	ValidateBytes(data []byte, schemaRef string) error
	RegisterSchema(id string, schema []byte) error
}

type validator struct {
	mu      sync.Mutex
	docs    map[string]interface{}
	schemas *lru.Cache[string, *jsonschema.Schema]
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	cache, err := lru.New[string, *jsonschema.Schema](DefaultCacheSize)
	if err != nil {
		// Only returned for a non-positive size
		panic(err)
	}
	return &validator{
		docs:    make(map[string]interface{}),
		schemas: cache,
	}
}

// RegisterSchema makes an in-memory schema document available under id.
// Registered documents take precedence over files of the same name.
func (v *validator) RegisterSchema(id string, schema []byte) error {
	var schemaJSON interface{}
	if err := json.Unmarshal(schema, &schemaJSON); err != nil {
		return fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.docs[id] = schemaJSON
	v.schemas.Remove(id)
	return nil
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaRef string) error {
	// Read data file
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schemaRef)
}

// ValidateBytes validates JSON data bytes against a registered schema or a
// schema file
func (v *validator) ValidateBytes(data []byte, schemaRef string) error {
	// Load and compile schema (cached)
	schema, err := v.loadSchema(schemaRef)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaRef, err)
	}

	// Parse JSON data
	var jsonData interface{}
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	// Validate data against schema
	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaRef string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas.Get(schemaRef); ok {
		return schema, nil
	}

	schemaJSON, ok := v.docs[schemaRef]
	if !ok {
		var err error
		if schemaJSON, err = readSchemaFile(schemaRef); err != nil {
			return nil, err
		}
	}

	// A fresh compiler per miss, since evicted resources cannot be re-added
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaRef, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaRef)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas.Add(schemaRef, schema)
	return schema, nil
}

func readSchemaFile(schemaPath string) (interface{}, error) {
	// Resolve schema path (handle both absolute and relative paths)
	resolvedPath, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}

	schemaData, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(schemaData, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	return schemaJSON, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if msg := formatError(err); msg != "" {
		*errors = append(*errors, msg)
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	// Get instance location (path to the invalid data)
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

// resolveSchemaPath resolves a schema path, handling both absolute and relative paths.
// Relative paths are searched upward from the current directory up to the module root.
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}

	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		testPath := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(testPath); err == nil {
			return testPath, nil
		}

		// Stop at the module root
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
}
