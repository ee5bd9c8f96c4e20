package jsongrid

import (
	"strconv"
	"strings"
)

// truthy is the case-insensitive set of strings that coerce to true.
var truthy = map[string]bool{"true": true, "yes": true, "1": true, "y": true}

// ToRecords rebuilds a record sequence from a table. Rows whose cells are all
// blank (null or whitespace-only) produce no record. Each retained row yields
// a record holding exactly the schema's fields in schema order, with cells
// coerced to the declared field types. Coercion is total: a cell that cannot
// be parsed degrades to the type's zero value instead of raising, so
// malformed input never blocks reconstruction.
func ToRecords(t Table, schema Schema) []Record {
	idx := t.columnIndex()
	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		if blankRow(row) {
			continue
		}
		rec := NewRecord()
		for _, f := range schema {
			cell := Null()
			if i, ok := idx[f.Name]; ok && i < len(row) {
				cell = row[i]
			}
			rec.Set(f.Name, coerce(f.Type, cell))
		}
		records = append(records, rec)
	}
	return records
}

// blankRow reports whether every cell is empty.
func blankRow(row []Value) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// coerce converts one cell to the declared field type.
func coerce(ft FieldType, cell Value) Value {
	if cell.IsBlank() {
		switch ft {
		case TypeNumber:
			return Number(0)
		case TypeBoolean:
			return Bool(false)
		case TypeList:
			return List()
		default:
			return String("")
		}
	}
	switch ft {
	case TypeNumber:
		return coerceNumber(cell)
	case TypeBoolean:
		return coerceBool(cell)
	case TypeList:
		return coerceList(cell)
	default:
		return String(cell.Text())
	}
}

// coerceNumber parses the cell as a float. Integral results narrow to plain
// integers when rendered; parse failures degrade to 0.
func coerceNumber(cell Value) Value {
	if f, ok := cell.AsNumber(); ok {
		return Number(f)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(cell.Text()), 64)
	if err != nil {
		return Number(0)
	}
	return Number(f)
}

// coerceBool passes real booleans through and otherwise matches the cell's
// lowercased text against the truthy set.
func coerceBool(cell Value) Value {
	if b, ok := cell.AsBool(); ok {
		return Bool(b)
	}
	return Bool(truthy[strings.ToLower(cell.Text())])
}

// coerceList splits the cell's text on commas, trims each piece, and drops
// pieces that trim to nothing. The inverse of the ", " join in ToTable.
func coerceList(cell Value) Value {
	parts := strings.Split(cell.Text(), ",")
	elems := make([]Value, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		elems = append(elems, String(p))
	}
	return List(elems...)
}
