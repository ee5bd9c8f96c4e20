package jsongrid

// FieldType enumerates the supported field types.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeList    FieldType = "list"
)

// Widget hints understood by presentation layers. Data semantics ignore them.
const (
	WidgetNone     = ""
	WidgetTextarea = "textarea"
	WidgetText     = "text"
)

// FieldDefinition describes one field of a schema. Identity is Name; the
// widget hint serializes only when set.
type FieldDefinition struct {
	Name     string    `json:"name" yaml:"name" toml:"name"`
	Type     FieldType `json:"type" yaml:"type" toml:"type"`
	Required bool      `json:"required" yaml:"required" toml:"required"`
	Widget   string    `json:"widget,omitempty" yaml:"widget,omitempty" toml:"widget,omitempty"`
}

// Schema is an ordered field sequence; insertion order defines column order.
type Schema []FieldDefinition

// Field returns the definition named name and its position, or -1 when absent.
func (s Schema) Field(name string) (FieldDefinition, int) {
	for i, f := range s {
		if f.Name == name {
			return f, i
		}
	}
	return FieldDefinition{}, -1
}

// Has reports whether the schema declares a field named name.
func (s Schema) Has(name string) bool {
	_, i := s.Field(name)
	return i >= 0
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}

// Clone returns an independent copy of the field sequence.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	out := make(Schema, len(s))
	copy(out, s)
	return out
}
