package bloomgo

import "strconv"

// Kind identifies the shape of a Value.
type Kind uint8

const (
	// KindInvalid is the zero Value; operations reject it.
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindCollection
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindCollection:
		return "collection"
	default:
		return "invalid"
	}
}

// Value is the input to filter operations: a single scalar or a nested
// collection of further Values. Collections may nest arbitrarily; operations
// visit every scalar leaf in pre-order with insertion order preserved, and
// shaped results mirror the input's nesting.
//
// Values are tree-shaped by construction (Collection copies its items), so
// cyclic input cannot be expressed.
//
// The zero Value is invalid and makes operations fail with ErrInvalidInput.
type Value struct {
	kind  Kind
	str   string
	num   int64
	fnum  float64
	truth bool
	items []Value
}

// String returns a string scalar.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integer scalar.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Float returns a floating-point scalar.
func Float(f float64) Value {
	return Value{kind: KindFloat, fnum: f}
}

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	return Value{kind: KindBool, truth: b}
}

// Collection returns a collection of the given items.
func Collection(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindCollection, items: copied}
}

// Strings returns a collection of string scalars, a convenience for the
// common bulk case.
func Strings(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Value{kind: KindCollection, items: items}
}

// Kind returns the Value's shape.
func (v Value) Kind() Kind { return v.kind }

// canonical returns the scalar's canonical representation for hashing.
// Case folding happens later, in the hash family, so that the same Value
// hashes identically regardless of which filter processes it.
func (v Value) canonical() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.fnum, 'g', -1, 64)
	case KindBool:
		if v.truth {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// Result mirrors the nested shape of the Value an operation was applied to:
// one leaf per scalar, in the same order and nesting.
type Result struct {
	// OK is the per-scalar outcome: membership for Query, success for
	// Delete.
	OK bool

	// Ratio is the fraction of slot positions found set for a scalar, in
	// [0,1]. Populated by QueryRatio only.
	Ratio float64

	// Items holds the per-element results when the input was a collection.
	Items []Result

	collection bool
}

// IsCollection reports whether this result level mirrors a collection.
func (r Result) IsCollection() bool { return r.collection }

// AllOK reports whether every scalar leaf in the result has OK set. For a
// scalar result it is simply OK.
func (r Result) AllOK() bool {
	stack := []Result{r}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.collection {
			stack = append(stack, cur.Items...)
			continue
		}
		if !cur.OK {
			return false
		}
	}
	return true
}

// visit applies fn to every scalar leaf of v in pre-order. Traversal uses an
// explicit stack, so legitimate deep nesting cannot exhaust goroutine stack
// space.
func visit(v Value, fn func(Value) error) error {
	stack := []Value{v}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch cur.kind {
		case KindCollection:
			for i := len(cur.items) - 1; i >= 0; i-- {
				stack = append(stack, cur.items[i])
			}
		case KindInvalid:
			return &ErrInvalidInput{Kind: cur.kind}
		default:
			if err := fn(cur); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapShape applies fn to every scalar leaf of v in pre-order and assembles a
// Result tree mirroring v's nesting.
func mapShape(v Value, fn func(Value) (Result, error)) (Result, error) {
	type frame struct {
		val Value
		out *Result
	}

	var root Result
	stack := []frame{{val: v, out: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.val.kind {
		case KindCollection:
			f.out.collection = true
			f.out.Items = make([]Result, len(f.val.items))
			for i := len(f.val.items) - 1; i >= 0; i-- {
				stack = append(stack, frame{val: f.val.items[i], out: &f.out.Items[i]})
			}
		case KindInvalid:
			return Result{}, &ErrInvalidInput{Kind: f.val.kind}
		default:
			r, err := fn(f.val)
			if err != nil {
				return Result{}, err
			}
			*f.out = r
		}
	}
	return root, nil
}
