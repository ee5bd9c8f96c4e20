package jsongrid

// Table is the tabular view of a record sequence: rows over schema-ordered
// columns. Cells keep their Value variants; projection only flattens lists,
// it never stringifies numbers or booleans.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// NumRows reports the number of rows.
func (t Table) NumRows() int { return len(t.Rows) }

// columnIndex maps column names to their positions.
func (t Table) columnIndex() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		idx[c] = i
	}
	return idx
}

// ToTable projects records onto the schema's column layout. Columns are
// exactly the schema's field names in schema order regardless of what keys
// the records carried. List-typed fields holding list values collapse to a
// single ", "-joined string of stringified elements; every other value
// passes through unchanged. Fields absent from a record become empty-string
// cells.
func ToTable(records []Record, schema Schema) Table {
	t := Table{Columns: schema.Names(), Rows: make([][]Value, 0, len(records))}
	for _, rec := range records {
		row := make([]Value, len(schema))
		for i, f := range schema {
			v, ok := rec.Get(f.Name)
			if !ok {
				row[i] = String("")
				continue
			}
			if f.Type == TypeList {
				if _, isList := v.AsList(); isList {
					row[i] = String(v.Text())
					continue
				}
			}
			row[i] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
