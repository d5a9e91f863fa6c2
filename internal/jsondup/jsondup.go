// Package jsondup finds repeated object keys in a JSON document. Plain
// decoding keeps the last occurrence silently, which would hide typos in a
// values file.
package jsondup

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrDuplicateKey is wrapped by the *Error that Find returns.
var ErrDuplicateKey = errors.New("duplicate key")

// Error locates a duplicate. Path is the dotted path of the enclosing
// object, "" for the root.
type Error struct {
	Path string
	Key  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "duplicate key " + strconv.Quote(e.Key)
	}
	return "duplicate key " + strconv.Quote(e.Key) + " in " + strconv.Quote(e.Path)
}

func (e *Error) Unwrap() error { return ErrDuplicateKey }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	path         string
	keys         map[string]struct{}
	expectingKey bool
	pendingKey   string
	nextIndex    int
}

// Find scans data and returns the first duplicate as an *Error. Syntax
// errors are returned as they come from the tokenizer; a document cut off
// inside a container yields io.ErrUnexpectedEOF.
func Find(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var stack []frame
	// child computes the path of the value that the next token opens.
	child := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		var seg string
		if top.kind == kindObject {
			seg = top.pendingKey
		} else {
			seg = strconv.Itoa(top.nextIndex)
		}
		if top.path == "" {
			return seg
		}
		return top.path + "." + seg
	}
	// done marks the current value of the enclosing container as consumed.
	done := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObject {
			top.expectingKey = true
			top.pendingKey = ""
		} else {
			top.nextIndex++
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{kind: kindObject, path: child(), keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, frame{kind: kindArray, path: child()})
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
				done()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				top := &stack[n-1]
				if _, dup := top.keys[v]; dup {
					return &Error{Path: top.path, Key: v}
				}
				top.keys[v] = struct{}{}
				top.expectingKey = false
				top.pendingKey = v
				continue
			}
			done()
		default:
			done()
		}
	}
}
