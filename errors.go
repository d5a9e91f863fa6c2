package goform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/goform/internal/jsondup"
	"github.com/reoring/goform/internal/pathtree"
)

// Issue codes
const (
	CodeValidation  = "validation"
	CodeInvalidPath = "invalid_path"
	CodeNotArray    = "not_array"
)

var (
	// ErrInvalidPath reports a path that does not resolve in the current value
	// tree. Every PathError produced by a missing path wraps it.
	ErrInvalidPath = pathtree.ErrInvalidPath
	// ErrNotArray reports an array operation on a node that is not an array.
	ErrNotArray = errors.New("not an array")
	// ErrNotRecord reports initial or replacement values that are not a record.
	ErrNotRecord = errors.New("values must be a record")
	// ErrDuplicateKey reports a JSON values document that repeats an object key.
	ErrDuplicateKey = jsondup.ErrDuplicateKey
)

// PathError records the operation and path that failed.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return "goform: " + e.Op + " " + strconv.Quote(e.Path) + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// pathErr normalises internal errors so callers can match ErrInvalidPath
// without the tree-level detail repeating the path.
func pathErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidPath) {
		err = ErrInvalidPath
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// Issue is one non-empty entry of the errors tree.
type Issue struct {
	Path    string // dotted path, e.g. hobbies.2
	Code    string // one of the codes listed above
	Message string
}

// Issues is a collection of field errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. name: Required
		fmt.Fprintf(b, "%s: %s", it.Path, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Paths returns the issue paths in order.
func (iss Issues) Paths() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Path)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
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

// issuesFrom projects a sparse errors map onto Issues in sorted path order.
func issuesFrom(errs map[string]string) Issues {
	var out Issues
	for _, p := range pathtree.SortedKeys(errs) {
		if msg := errs[p]; msg != "" {
			out = AppendIssues(out, Issue{Path: p, Code: CodeValidation, Message: msg})
		}
	}
	return out
}
