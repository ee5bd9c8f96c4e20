package jsongrid

import "unicode/utf8"

// textareaThreshold is the rune length above which a string field gets the
// textarea widget hint.
const textareaThreshold = 50

// InferSchema proposes a field definition per key of the sample record, in
// the sample's own key order. Type priority is boolean, then number, then
// list; everything else (null included) falls back to string. Inference never
// marks a field required. An empty sample yields an empty schema, not an
// error. Pure function of its input.
func InferSchema(sample Record) Schema {
	schema := make(Schema, 0, sample.Len())
	for _, key := range sample.Keys() {
		v, _ := sample.Get(key)
		ft := guessFieldType(v)
		widget := WidgetNone
		if ft == TypeString {
			if s, ok := v.AsString(); ok && utf8.RuneCountInString(s) > textareaThreshold {
				widget = WidgetTextarea
			}
		}
		schema = append(schema, FieldDefinition{Name: key, Type: ft, Widget: widget})
	}
	return schema
}

// guessFieldType maps a value variant onto a field type.
func guessFieldType(v Value) FieldType {
	switch v.Kind() {
	case KindBool:
		return TypeBoolean
	case KindNumber:
		return TypeNumber
	case KindList:
		return TypeList
	default:
		return TypeString
	}
}
