package source

import (
	"github.com/BurntSushi/toml"

	jsongrid "github.com/jsongrid/jsongrid"
)

// schemaDoc is the TOML layout for schema documents:
//
//	[[field]]
//	name = "title"
//	type = "string"
//	required = true
//	widget = "textarea"
type schemaDoc struct {
	Fields []jsongrid.FieldDefinition `toml:"field"`
}

// DecodeSchemaTOML parses a TOML schema document into an ordered field
// sequence ([[field]] block order is kept).
func DecodeSchemaTOML(data []byte) (jsongrid.Schema, error) {
	var doc schemaDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, importError(err)
	}
	return jsongrid.Schema(doc.Fields), nil
}
