package jsongrid_test

import (
	"strings"
	"testing"

	jsongrid "github.com/jsongrid/jsongrid"
)

func TestInferSchema_TypePriorityAndOrder(t *testing.T) {
	sample := jsongrid.NewRecord()
	sample.Set("a", jsongrid.Bool(true))
	sample.Set("b", jsongrid.Number(3))
	sample.Set("c", jsongrid.List(jsongrid.Number(1), jsongrid.Number(2)))
	sample.Set("d", jsongrid.String(strings.Repeat("x", 60)))

	schema := jsongrid.InferSchema(sample)
	if len(schema) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(schema))
	}
	wantNames := []string{"a", "b", "c", "d"}
	wantTypes := []jsongrid.FieldType{jsongrid.TypeBoolean, jsongrid.TypeNumber, jsongrid.TypeList, jsongrid.TypeString}
	for i, f := range schema {
		if f.Name != wantNames[i] {
			t.Fatalf("field %d: name %q, want %q", i, f.Name, wantNames[i])
		}
		if f.Type != wantTypes[i] {
			t.Fatalf("field %q: type %q, want %q", f.Name, f.Type, wantTypes[i])
		}
		if f.Required {
			t.Fatalf("field %q: inference must never mark fields required", f.Name)
		}
	}
	if schema[3].Widget != jsongrid.WidgetTextarea {
		t.Fatalf("long string field should get textarea widget, got %q", schema[3].Widget)
	}
	if schema[0].Widget != jsongrid.WidgetNone {
		t.Fatalf("boolean field should carry no widget hint, got %q", schema[0].Widget)
	}
}

func TestInferSchema_ShortStringGetsNoWidget(t *testing.T) {
	sample := jsongrid.NewRecord()
	sample.Set("s", jsongrid.String(strings.Repeat("x", 50)))
	schema := jsongrid.InferSchema(sample)
	if schema[0].Widget != jsongrid.WidgetNone {
		t.Fatalf("50-rune string must stay below the textarea threshold, got %q", schema[0].Widget)
	}
}

func TestInferSchema_NullFallsBackToString(t *testing.T) {
	sample := jsongrid.NewRecord()
	sample.Set("n", jsongrid.Null())
	schema := jsongrid.InferSchema(sample)
	if schema[0].Type != jsongrid.TypeString {
		t.Fatalf("null value should infer as string, got %q", schema[0].Type)
	}
	if schema[0].Widget != jsongrid.WidgetNone {
		t.Fatalf("null value should carry no widget hint, got %q", schema[0].Widget)
	}
}

func TestInferSchema_EmptySampleYieldsEmptySchema(t *testing.T) {
	schema := jsongrid.InferSchema(jsongrid.NewRecord())
	if len(schema) != 0 {
		t.Fatalf("expected empty schema, got %d fields", len(schema))
	}
}
