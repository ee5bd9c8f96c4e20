// Package source is the text boundary of jsongrid: it decodes JSON, YAML and
// TOML documents into records and schemas and serializes them back. The core
// never sees raw text; everything passes through here first.
package source

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"

	jsongrid "github.com/jsongrid/jsongrid"
)

// DecodeRecords parses JSON input into a record sequence. A single object
// decodes as a one-element sequence; an array decodes element-wise, requiring
// every element to be an object. Key order is preserved. Nested objects have
// no variant in the value union, so they are captured as their compact JSON
// text in a string value.
func DecodeRecords(data []byte) ([]jsongrid.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, importError(err)
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil, shapeError("input must be an object or an array of objects")
	}
	switch d {
	case '{':
		rec, err := decodeObject(dec)
		if err != nil {
			return nil, err
		}
		return []jsongrid.Record{rec}, nil
	case '[':
		records := []jsongrid.Record{}
		for dec.More() {
			t, err := dec.Token()
			if err != nil {
				return nil, importError(err)
			}
			if d2, ok := t.(json.Delim); !ok || d2 != '{' {
				return nil, shapeError("array elements must be objects")
			}
			rec, err := decodeObject(dec)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if _, err := dec.Token(); err != nil { // closing ']'
			return nil, importError(err)
		}
		return records, nil
	default:
		return nil, shapeError("input must be an object or an array of objects")
	}
}

// decodeObject consumes one object body (opening brace already read),
// preserving key order by mixing Token and Decode on the same decoder.
func decodeObject(dec *json.Decoder) (jsongrid.Record, error) {
	rec := jsongrid.NewRecord()
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return rec, importError(err)
		}
		key, ok := t.(string)
		if !ok {
			return rec, importError(nil)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return rec, importError(err)
		}
		v, err := valueFromRaw(raw)
		if err != nil {
			return rec, err
		}
		rec.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return rec, importError(err)
	}
	return rec, nil
}

// valueFromRaw classifies a raw JSON value by its first byte.
func valueFromRaw(raw json.RawMessage) (jsongrid.Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return jsongrid.Null(), nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return jsongrid.Null(), importError(err)
		}
		return jsongrid.String(s), nil
	case '{':
		buf := &bytes.Buffer{}
		if err := json.Compact(buf, raw); err != nil {
			return jsongrid.Null(), importError(err)
		}
		return jsongrid.String(buf.String()), nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return jsongrid.Null(), importError(err)
		}
		vs := make([]jsongrid.Value, 0, len(elems))
		for _, e := range elems {
			v, err := valueFromRaw(e)
			if err != nil {
				return jsongrid.Null(), err
			}
			vs = append(vs, v)
		}
		return jsongrid.List(vs...), nil
	case 't':
		return jsongrid.Bool(true), nil
	case 'f':
		return jsongrid.Bool(false), nil
	case 'n':
		return jsongrid.Null(), nil
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return jsongrid.Null(), importError(err)
		}
		return jsongrid.Number(f), nil
	}
}

// EncodeRecords serializes records as a pretty-printed JSON array (two-space
// indent, HTML escaping off, non-ASCII preserved, field order kept).
func EncodeRecords(records []jsongrid.Record) ([]byte, error) {
	compact := &bytes.Buffer{}
	compact.WriteByte('[')
	for i, rec := range records {
		if i > 0 {
			compact.WriteByte(',')
		}
		b, err := rec.MarshalJSON()
		if err != nil {
			return nil, err
		}
		compact.Write(b)
	}
	compact.WriteByte(']')
	out := &bytes.Buffer{}
	if err := json.Indent(out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeSchema parses the schema's own JSON serialization: an array of field
// definition objects.
func DecodeSchema(data []byte) (jsongrid.Schema, error) {
	var schema jsongrid.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, importError(err)
	}
	return schema, nil
}

// EncodeSchema serializes the field definition structure directly, pretty
// printed, omitting empty widget hints.
func EncodeSchema(schema jsongrid.Schema) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schema); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// importError wraps any underlying decode failure as a single parse_error
// issue: the caller-facing "import failed" surface.
func importError(err error) error {
	return jsongrid.Issues{jsongrid.Issue{Path: "/", Code: jsongrid.CodeParseError, Message: "import failed", Cause: err}}
}

// shapeError reports input whose top-level shape the converter does not accept.
func shapeError(msg string) error {
	return jsongrid.Issues{jsongrid.Issue{Path: "/", Code: jsongrid.CodeInvalidShape, Message: msg}}
}
