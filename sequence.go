package nconvert

import (
	"reflect"
)

// ConvertSequence converts every raw value into the element type of a
// slice or array target.  One element that does not convert fails the
// whole sequence: there are no partial results.  On success the value
// is a []E (or [N]E) in the same order as raw.
//
// A target without a derivable element type is a contract violation
// and is reported as an error, never as a Failure.
func ConvertSequence(raw []*string, target Descriptor, culture Culture) (Outcome, error) {
	if target.Kind != Sequence {
		return Failure(), contractErrorf("sequence conversion into non-sequence %s", target)
	}
	if target.Type == nil {
		return Failure(), contractErrorf("sequence descriptor has no type")
	}
	if target.Elem == nil || target.Elem.Type == nil {
		return Failure(), contractErrorf("element type of %s cannot be derived", target)
	}
	switch target.Type.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return Failure(), contractErrorf("sequence descriptor for %s, which is not a slice or array", target.Type)
	}
	elemType := target.Type.Elem()
	if target.Elem.Type != elemType {
		return Failure(), contractErrorf("sequence %s has element descriptor %s", target.Type, target.Elem)
	}
	if target.Elem.Kind == Sequence {
		return Failure(), contractErrorf("sequences of sequences are not supported: %s", target.Type)
	}

	var seq reflect.Value
	if target.Type.Kind() == reflect.Array {
		if len(raw) != target.Type.Len() {
			debugf("%s needs %d values, got %d", target.Type, target.Type.Len(), len(raw))
			return Failure(), nil
		}
		seq = reflect.New(target.Type).Elem()
	} else {
		seq = reflect.MakeSlice(target.Type, len(raw), len(raw))
	}

	for i, r := range raw {
		o, err := ConvertScalar(r, *target.Elem, culture)
		if err != nil {
			return Failure(), err
		}
		if !o.OK() {
			return Failure(), nil
		}
		v := reflect.ValueOf(o.Value())
		switch {
		case !v.IsValid():
			// nil success: zero element
		case v.Type().AssignableTo(elemType):
			seq.Index(i).Set(v)
		default:
			debugf("element %d of %s is a %s", i, target.Type, v.Type())
			return Failure(), nil
		}
	}
	return Success(seq.Interface()), nil
}
