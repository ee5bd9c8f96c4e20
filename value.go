package jsongrid

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Kind enumerates the closed set of value variants a record cell may hold.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// Value is the closed union over JSON scalars and arrays used for record
// fields and table cells. Nested objects never appear here; the source
// boundary captures them as their compact JSON text in a KindString value.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// String wraps s as a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps f as a number value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool wraps b as a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List wraps elems as a list value. The slice is not copied; callers hand over
// ownership.
func List(elems ...Value) Value { return Value{kind: KindList, list: elems} }

// Kind reports the variant held by v. The zero Value is KindNull.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload when v is KindString.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric payload when v is KindNumber.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean payload when v is KindBool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsList returns the element slice when v is KindList.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// IsBlank reports whether v counts as an empty cell: null, or a string that
// is empty after trimming whitespace.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return strings.TrimSpace(v.str) == ""
	default:
		return false
	}
}

// Text renders v as its canonical cell string. Numbers with an integral value
// render without a fractional part, so 12.0 becomes "12" while 12.5 stays
// "12.5". Lists join their element texts with ", "; null renders empty.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.Text()
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// Equal reports deep equality of two values, including list elements.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MarshalJSON renders v as its JSON form with HTML escaping disabled so
// non-ASCII text survives round trips untouched.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return quoteJSON(v.str)
	case KindNumber:
		return []byte(formatNumber(v.num)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	case KindList:
		buf := &bytes.Buffer{}
		buf.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			eb, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(eb)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}

// formatNumber renders a float64 in its shortest JSON-compatible form,
// narrowing integral values to plain integers.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quoteJSON encodes s as a JSON string without HTML escaping.
func quoteJSON(s string) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
