package jsongrid

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDuplicateName = "duplicate_name"
	CodeUnknownSchema = "unknown_schema"
	CodeParseError    = "parse_error"
	CodeInvalidShape  = "invalid_shape"
)

// Issue represents a single structural failure.
type Issue struct {
	Path    string // Slash-prefixed location when known (for example: /schemas/Default).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of structural failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_name at /schemas/Default
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the first recorded cause for errors.Is/As chains.
func (iss Issues) Unwrap() error {
	for _, it := range iss {
		if it.Cause != nil {
			return it.Cause
		}
	}
	return nil
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// hasCode reports whether err carries at least one issue with the given code.
func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IsDuplicateName reports whether err is a duplicate schema-name failure.
func IsDuplicateName(err error) bool { return hasCode(err, CodeDuplicateName) }

// IsUnknownSchema reports whether err names a schema the store does not hold.
func IsUnknownSchema(err error) bool { return hasCode(err, CodeUnknownSchema) }

// issuef builds a single-issue error.
func issuef(path, code, format string, args ...any) Issues {
	return Issues{Issue{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}}
}
