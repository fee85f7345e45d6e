package item

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:                  true,
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		AllowAdditionalProperties:  true,
	}
}

// FragmentSchema returns the JSON schema of an item fragment file: an
// object keyed by item id whose values are item entries.
func FragmentSchema() *jsonschema.Schema {
	entry := newReflector().Reflect(&wireItem{})
	entry.Version = ""
	entry.Title = "Custom Item"

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                "Custom Item Fragment",
		Description:          "Item definitions keyed by the id of the item to create.",
		Type:                 "object",
		AdditionalProperties: entry,
	}
}

// FragmentSchemaJSON returns FragmentSchema encoded as indented JSON.
func FragmentSchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(FragmentSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildSchemaFailed, err)
	}
	return data, nil
}
