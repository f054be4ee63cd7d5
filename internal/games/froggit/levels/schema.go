package levels

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema builds the JSON Schema of the level descriptor.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(Descriptor))
	schema.Title = "Froggit Level"
	schema.Description = "Lane layout, start cell and offscreen buffer of a froggit level"
	return schema
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
