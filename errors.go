package resmap

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeInvalidType marks a value outside the permitted JSON-like shapes
	// (null/bool/number/string/sequence/mapping).
	CodeInvalidType = "invalid_type"
	// CodeInvalidDefinition marks a schema-definition bug detected at
	// type-definition time (for example, a malformed field declaration).
	CodeInvalidDefinition = "invalid_definition"
	// CodeInvalidFormat marks a sub-constructor that received the right shape
	// but could not interpret the content (for example, a bad timestamp).
	CodeInvalidFormat = "invalid_format"
	// CodeParseError marks a boundary decode failure before values reach the
	// engine.
	CodeParseError = "parse_error"
)

// Issue represents a single diagnostic entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/created_at).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of diagnostics that implements error.
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
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
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

// IsTypeConstraint reports whether err carries an invalid_type issue, i.e. a
// value that is not one of the permitted JSON-like shapes reached the engine.
func IsTypeConstraint(err error) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == CodeInvalidType {
			return true
		}
	}
	return false
}

// prefixIssues rebases the paths of every issue in err under prefix, so that
// nested parse failures report their position from the root value.
func prefixIssues(err error, prefix string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		p := it.Path
		if p == "/" || p == "" {
			p = prefix
		} else {
			p = prefix + p
		}
		it.Path = p
		out[i] = it
	}
	return out
}
