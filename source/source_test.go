package source_test

import (
	"strings"
	"testing"

	jsongrid "github.com/jsongrid/jsongrid"
	"github.com/jsongrid/jsongrid/source"
)

func TestDecodeRecords_SingleObjectBecomesOneElementSequence(t *testing.T) {
	records, err := source.DecodeRecords([]byte(`{"name":"a","count":2}`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if v, _ := records[0].Get("count"); !v.Equal(jsongrid.Number(2)) {
		t.Fatalf("count = %v, want 2", v)
	}
}

func TestDecodeRecords_ArrayShape(t *testing.T) {
	records, err := source.DecodeRecords([]byte(`[{"a":1},{"a":2}]`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestDecodeRecords_PreservesKeyOrder(t *testing.T) {
	records, err := source.DecodeRecords([]byte(`{"zeta":1,"alpha":2,"mid":3}`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	keys := records[0].Keys()
	want := []string{"zeta", "alpha", "mid"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys %v, want %v", keys, want)
		}
	}
}

func TestDecodeRecords_ValueVariants(t *testing.T) {
	records, err := source.DecodeRecords([]byte(`{"s":"x","n":1.5,"b":true,"l":["a",2],"z":null}`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	rec := records[0]
	if v, _ := rec.Get("s"); !v.Equal(jsongrid.String("x")) {
		t.Fatalf("s = %v", v)
	}
	if v, _ := rec.Get("n"); !v.Equal(jsongrid.Number(1.5)) {
		t.Fatalf("n = %v", v)
	}
	if v, _ := rec.Get("b"); !v.Equal(jsongrid.Bool(true)) {
		t.Fatalf("b = %v", v)
	}
	if v, _ := rec.Get("l"); !v.Equal(jsongrid.List(jsongrid.String("a"), jsongrid.Number(2))) {
		t.Fatalf("l = %v", v)
	}
	if v, _ := rec.Get("z"); !v.Equal(jsongrid.Null()) {
		t.Fatalf("z = %v", v)
	}
}

func TestDecodeRecords_NestedObjectCapturedAsText(t *testing.T) {
	records, err := source.DecodeRecords([]byte(`{"meta": {"k": 1, "j": [true]}}`))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	v, _ := records[0].Get("meta")
	s, ok := v.AsString()
	if !ok {
		t.Fatalf("nested object should decode as text, got kind %v", v.Kind())
	}
	if s != `{"k":1,"j":[true]}` {
		t.Fatalf("nested object text = %q", s)
	}
}

func TestDecodeRecords_RejectsNonObjectShapes(t *testing.T) {
	for _, in := range []string{`"just a string"`, `42`, `[1,2,3]`} {
		if _, err := source.DecodeRecords([]byte(in)); err == nil {
			t.Fatalf("input %s: expected shape error", in)
		}
	}
}

func TestDecodeRecords_MalformedInputIsImportFailure(t *testing.T) {
	_, err := source.DecodeRecords([]byte(`{"a": `))
	if err == nil {
		t.Fatalf("expected error for truncated input")
	}
	iss, ok := jsongrid.AsIssues(err)
	if !ok || iss[0].Code != jsongrid.CodeParseError {
		t.Fatalf("expected parse_error issue, got %v", err)
	}
	if iss[0].Message != "import failed" {
		t.Fatalf("message = %q, want %q", iss[0].Message, "import failed")
	}
}

func TestEncodeRecords_PrettyAndOrdered(t *testing.T) {
	rec := jsongrid.NewRecord()
	rec.Set("b", jsongrid.Number(1))
	rec.Set("a", jsongrid.String("héllo"))
	out, err := source.EncodeRecords([]jsongrid.Record{rec})
	if err != nil {
		t.Fatalf("EncodeRecords: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "\n    \"b\": 1") {
		t.Fatalf("output not indented: %s", s)
	}
	if strings.Index(s, `"b"`) > strings.Index(s, `"a"`) {
		t.Fatalf("field order lost: %s", s)
	}
	if !strings.Contains(s, "héllo") {
		t.Fatalf("non-ASCII escaped: %s", s)
	}
}

func TestSchemaJSONRoundTrip(t *testing.T) {
	schema := jsongrid.Schema{
		{Name: "title", Type: jsongrid.TypeString, Required: true, Widget: jsongrid.WidgetTextarea},
		{Name: "count", Type: jsongrid.TypeNumber},
	}
	data, err := source.EncodeSchema(schema)
	if err != nil {
		t.Fatalf("EncodeSchema: %v", err)
	}
	if strings.Contains(string(data), `"widget": ""`) {
		t.Fatalf("empty widget must be omitted: %s", data)
	}
	back, err := source.DecodeSchema(data)
	if err != nil {
		t.Fatalf("DecodeSchema: %v", err)
	}
	if len(back) != 2 || back[0] != schema[0] || back[1] != schema[1] {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestDecodeThenConvert_EndToEnd(t *testing.T) {
	data := []byte(`[{"name":"a","tags":["x","y"],"count":3.0,"ok":"yes"}]`)
	records, err := source.DecodeRecords(data)
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	schema := jsongrid.Schema{
		{Name: "name", Type: jsongrid.TypeString},
		{Name: "tags", Type: jsongrid.TypeList},
		{Name: "count", Type: jsongrid.TypeNumber},
		{Name: "ok", Type: jsongrid.TypeBoolean},
	}
	out := jsongrid.ToRecords(jsongrid.ToTable(records, schema), schema)
	b, err := source.EncodeRecords(out)
	if err != nil {
		t.Fatalf("EncodeRecords: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"count": 3`, `"ok": true`, `"x"`, `"y"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}
}
