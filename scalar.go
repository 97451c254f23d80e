package nconvert

import (
	"reflect"
	"strings"
)

// ConvertScalar converts one raw value.  A nil raw value means the
// option was present without a value.  The rules apply in order:
//
//  1. Optional targets (*T and Option[T]) are unwrapped to T.
//  2. A nil raw value gives the absent optional, or the zero value of
//     a nil-able target.  Any other target cannot take "no value" and
//     that is a contract violation.
//  3. "true" and "false", in any case, always convert to a bool, no
//     matter what the target is.  The bool is wrapped as present when
//     the optional can hold it.  Bool targets also accept the literals
//     with surrounding whitespace, as numbers and dates do.
//  4. Enumerations match member names exactly.
//  5. Everything else is parsed according to culture.
//
// The returned error is only for contract violations.  Text that does
// not convert is a Failure with a nil error.
func ConvertScalar(raw *string, target Descriptor, culture Culture) (Outcome, error) {
	effective := target
	var shell optionalShell
	if target.Kind == Optional {
		if target.Underlying == nil || target.Type == nil {
			return Failure(), contractErrorf("optional descriptor %s has no underlying type", target)
		}
		shell = shellFor(target)
		if shell == nil {
			return Failure(), contractErrorf("optional descriptor %s has no variant", target)
		}
		effective = *target.Underlying
	}
	if effective.Type == nil {
		return Failure(), contractErrorf("descriptor %s has no type", target)
	}
	switch effective.Kind {
	case Sequence:
		return Failure(), contractErrorf("scalar conversion into sequence %s", target)
	case Optional:
		return Failure(), contractErrorf("optional %s wraps another optional", target)
	case Invalid:
		return Failure(), contractErrorf("descriptor for %s is not classified", effective.Type)
	}

	if raw == nil {
		switch {
		case shell != nil:
			return Success(shell.absent().Interface()), nil
		case isNilable(target.Type):
			return Success(reflect.Zero(target.Type).Interface()), nil
		default:
			if debugging {
				debug("absent value for", target, callers(4))
			}
			return Failure(), contractErrorf("no value given for non-optional %s", target)
		}
	}
	text := *raw

	literal := text
	if effective.Kind == Boolean {
		literal = strings.TrimSpace(text)
	}
	var value reflect.Value
	switch {
	case strings.EqualFold(literal, "true"), strings.EqualFold(literal, "false"):
		b := reflect.ValueOf(strings.EqualFold(literal, "true"))
		if effective.Kind == Boolean {
			b = b.Convert(effective.Type)
		}
		if shell != nil && shell.canHold(b.Type()) {
			return Success(shell.present(b).Interface()), nil
		}
		return Success(b.Interface()), nil
	case effective.Kind == Boolean:
		debugf("%q is not a boolean literal", text)
		return Failure(), nil
	case effective.Kind == Enumeration:
		v, ok := convertEnum(text, effective)
		if !ok {
			debugf("%q is not a member of %s", text, effective.Type)
			return Failure(), nil
		}
		value = v
	default:
		v, err := convertPrimitive(text, effective.Type, culture)
		if err != nil {
			debugf("convert %q to %s: %s", text, effective.Type, err)
			return Failure(), nil
		}
		value = v
	}
	if shell != nil {
		return Success(shell.present(value).Interface()), nil
	}
	return Success(value.Interface()), nil
}
