package vttskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType      = "invalid_type"
	CodeInvalidArgument  = "invalid_argument"
	CodeRequired         = "required"
	CodeFormulaDice      = "formula_dice"
	CodeFormulaInvalid   = "formula_invalid"
	CodeIdentifierFormat = "identifier_format"
	CodeParseError       = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /movement/fly).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"got": "My Id"}) for i18n
	// and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
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

// ByKey groups issues by the first segment of their JSON Pointer path.
// Aggregating fields (mappings, schema trees) report child failures with
// paths rooted under /key, so the result maps each failing key to its own
// issue list. Issues at the root pointer land under "".
func (iss Issues) ByKey() map[string]Issues {
	out := make(map[string]Issues, len(iss))
	for _, it := range iss {
		p := strings.TrimPrefix(it.Path, "/")
		if i := strings.IndexByte(p, '/'); i >= 0 {
			p = p[:i]
		}
		out[p] = append(out[p], it)
	}
	return out
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

// RebaseIssues re-roots the issues carried by err under /key, so that callers
// aggregating over several values can report every failure at once while
// keeping each one attributable. Non-Issues errors are wrapped with
// CodeParseError at /key.
func RebaseIssues(key string, err error) Issues {
	if err == nil {
		return nil
	}
	base := "/" + key
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
