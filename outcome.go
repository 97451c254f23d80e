package nconvert

import "fmt"

// Outcome is the result of converting raw text: either a value
// or the bare fact that the text does not convert.  Outcomes never
// explain why; callers only learn success or failure per field.
type Outcome struct {
	value interface{}
	ok    bool
}

// Success builds an Outcome carrying v.  A nil v is a legitimate
// success: it is how a nil-able target receives "no value".
func Success(v interface{}) Outcome {
	return Outcome{value: v, ok: true}
}

// Failure is the outcome for text that cannot be converted.
func Failure() Outcome {
	return Outcome{}
}

func (o Outcome) OK() bool { return o.ok }

// Value returns the converted value, nil for a Failure.
func (o Outcome) Value() interface{} { return o.value }

func (o Outcome) Get() (interface{}, bool) { return o.value, o.ok }

func (o Outcome) String() string {
	if !o.ok {
		return "Failure"
	}
	return fmt.Sprintf("Success(%#v)", o.value)
}

// As extracts a Success value as a T.  It reports false for a
// Failure and for a value that is not a T.
func As[T any](o Outcome) (T, bool) {
	var zero T
	if !o.ok {
		return zero, false
	}
	if o.value == nil {
		// a nil success is a valid T only when T is nil-able
		return zero, isNilable(typeOf[T]())
	}
	t, ok := o.value.(T)
	return t, ok
}
