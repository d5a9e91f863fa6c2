package rules

import (
	"cmp"
	"reflect"

	"github.com/reoring/goform"
	"github.com/reoring/goform/internal/pathtree"
)

// Op defines simple comparison operators for If(...).Then(...)
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Conditional composes conditional execution of rules. Paths are dotted and
// relative to the validated value, so a condition is mostly useful on a
// validator registered for a record, e.g. "address".
type Conditional struct {
	path string
	op   Op
	want any
	all  []Conditional // composite AND
	any  []Conditional // composite OR
}

// If builds a conditional that evaluates a path against a value using an
// operator. "" tests the value itself.
func If(path string, op Op, want any) Conditional {
	return Conditional{path: path, op: op, want: want}
}

// IfAll builds a conditional that requires all conditions to hold.
func IfAll(conds ...Conditional) Conditional { return Conditional{all: conds} }

// IfAny builds a conditional that requires any condition to hold.
func IfAny(conds ...Conditional) Conditional { return Conditional{any: conds} }

// And combines the receiver with additional conditions using logical AND.
func (c Conditional) And(others ...Conditional) Conditional {
	return IfAll(append([]Conditional{c}, others...)...)
}

// Or combines the receiver with additional conditions using logical OR.
func (c Conditional) Or(others ...Conditional) Conditional {
	return IfAny(append([]Conditional{c}, others...)...)
}

// Then runs rules, as All does, only when the condition holds.
func (c Conditional) Then(rules ...goform.Validator) goform.Validator {
	all := All(rules...)
	return func(v any) string {
		if !c.eval(v) {
			return ""
		}
		return all(v)
	}
}

// At applies rule to the node at a dotted path inside the value. Missing
// nodes are passed as nil.
func At(path string, rule goform.Validator) goform.Validator {
	return func(v any) string {
		node, _ := valueAt(v, path)
		return rule(node)
	}
}

func (c Conditional) eval(v any) bool {
	// composite AND
	if len(c.all) > 0 {
		for _, it := range c.all {
			if !it.eval(v) {
				return false
			}
		}
		return true
	}
	// composite OR
	if len(c.any) > 0 {
		for _, it := range c.any {
			if it.eval(v) {
				return true
			}
		}
		return false
	}
	// simple predicate
	cur, ok := valueAt(v, c.path)
	if !ok {
		return false
	}
	return compare(cur, c.op, c.want)
}

// valueAt navigates a normalised value tree by dotted path.
func valueAt(v any, path string) (any, bool) {
	node, err := pathtree.Get(v, path)
	return node, err == nil
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		if a, ok := toNumber(cur); ok {
			if b, ok := toNumber(want); ok {
				return a == b
			}
		}
		return reflect.DeepEqual(cur, want)
	case Ne:
		return !compare(cur, Eq, want)
	case Lt, Le, Gt, Ge:
		return compareOrdered(cur, op, want)
	default:
		return false
	}
}

// compareOrdered orders numbers of any kind, or two strings.
func compareOrdered(cur any, op Op, want any) bool {
	a, aok := toNumber(cur)
	b, bok := toNumber(want)
	if aok && bok {
		return ordered(a, b, op)
	}
	as, aok := cur.(string)
	bs, bok := want.(string)
	if aok && bok {
		return ordered(as, bs, op)
	}
	return false
}

func ordered[T cmp.Ordered](a, b T, op Op) bool {
	switch op {
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	default:
		return false
	}
}

// toNumber widens every int, uint and float kind to float64. JSON decoding
// yields float64 while Go literals yield int, and both must compare equal.
func toNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
