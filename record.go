package jsongrid

import "bytes"

// Record is one JSON object instance: an insertion-ordered mapping from field
// name to Value. Order matters because schema inference walks the sample's
// own key order, which Go maps do not preserve.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{values: map[string]Value{}}
}

// Set stores v under key, appending the key on first sight and keeping its
// original position on overwrite.
func (r *Record) Set(key string, v Value) {
	if r.values == nil {
		r.values = map[string]Value{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in insertion order. The slice is shared;
// callers must not mutate it.
func (r Record) Keys() []string { return r.keys }

// Len reports the number of fields.
func (r Record) Len() int { return len(r.keys) }

// Equal reports whether two records hold the same keys in the same order with
// equal values.
func (r Record) Equal(o Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k {
			return false
		}
		if !r.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the record as a JSON object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := quoteJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := r.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
