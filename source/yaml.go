package source

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	jsongrid "github.com/jsongrid/jsongrid"
)

// DecodeRecordsYAML parses a (possibly multi-document) YAML stream into a
// record sequence. Each document may be a single mapping or a sequence of
// mappings. Decoding goes through yaml.Node so mapping key order survives,
// mirroring the JSON boundary.
func DecodeRecordsYAML(data []byte) ([]jsongrid.Record, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	records := []jsongrid.Record{}
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, importError(err)
		}
		root := &doc
		if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
			root = root.Content[0]
		}
		switch root.Kind {
		case yaml.MappingNode:
			rec, err := recordFromMapping(root)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		case yaml.SequenceNode:
			for _, item := range root.Content {
				if item.Kind != yaml.MappingNode {
					return nil, shapeError("sequence elements must be mappings")
				}
				rec, err := recordFromMapping(item)
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
			}
		default:
			return nil, shapeError("document must be a mapping or a sequence of mappings")
		}
	}
	return records, nil
}

// DecodeSchemaYAML parses a schema document: a YAML sequence of field
// definitions.
func DecodeSchemaYAML(data []byte) (jsongrid.Schema, error) {
	var schema jsongrid.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, importError(err)
	}
	return schema, nil
}

// recordFromMapping converts a YAML mapping node, preserving key order.
func recordFromMapping(n *yaml.Node) (jsongrid.Record, error) {
	rec := jsongrid.NewRecord()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		v, err := valueFromYAMLNode(n.Content[i+1])
		if err != nil {
			return rec, err
		}
		rec.Set(key, v)
	}
	return rec, nil
}

// valueFromYAMLNode maps YAML nodes onto the value union. Nested mappings are
// captured as compact JSON text, the same policy the JSON boundary applies to
// nested objects.
func valueFromYAMLNode(n *yaml.Node) (jsongrid.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return jsongrid.Null(), nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return jsongrid.String(n.Value), nil
			}
			return jsongrid.Bool(b), nil
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return jsongrid.String(n.Value), nil
			}
			return jsongrid.Number(f), nil
		default:
			return jsongrid.String(n.Value), nil
		}
	case yaml.SequenceNode:
		elems := make([]jsongrid.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := valueFromYAMLNode(c)
			if err != nil {
				return jsongrid.Null(), err
			}
			elems = append(elems, v)
		}
		return jsongrid.List(elems...), nil
	case yaml.MappingNode:
		rec, err := recordFromMapping(n)
		if err != nil {
			return jsongrid.Null(), err
		}
		b, err := rec.MarshalJSON()
		if err != nil {
			return jsongrid.Null(), importError(err)
		}
		return jsongrid.String(string(b)), nil
	case yaml.AliasNode:
		if n.Alias != nil {
			return valueFromYAMLNode(n.Alias)
		}
		return jsongrid.Null(), nil
	default:
		return jsongrid.Null(), nil
	}
}
