package nconvert

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/muir/nconvert/internal/pointer"
	"github.com/pkg/errors"
)

// Assign stores a successful outcome into dst, which must be settable
// (typically a struct field reached through a pointer).  A Failure,
// or a value that dst cannot hold, is reported with InvalidValueError
// so that the caller can show it as a usage problem.
func Assign(dst reflect.Value, o Outcome) error {
	if !dst.IsValid() || !dst.CanSet() {
		return contractErrorf("assign into a value that cannot be set")
	}
	if !o.OK() {
		return InvalidValueError(errors.Errorf("invalid value for %s", dst.Type()))
	}
	v := reflect.ValueOf(o.Value())
	switch {
	case !v.IsValid():
		dst.Set(reflect.Zero(dst.Type()))
	case v.Type().AssignableTo(dst.Type()):
		dst.Set(v)
	default:
		return InvalidValueError(errors.Errorf("%v (%s) cannot be stored in %s", v.Interface(), v.Type(), dst.Type()))
	}
	return nil
}

// Set converts raw into dst's type and stores the result.  Use
// SetRaw when some values may be absent.
func (c *Converter) Set(dst reflect.Value, isScalar bool, raw ...string) error {
	return c.SetRaw(dst, isScalar, Texts(raw...)...)
}

func (c *Converter) SetRaw(dst reflect.Value, isScalar bool, raw ...*string) error {
	if !dst.IsValid() {
		return contractErrorf("set into an invalid value")
	}
	o, err := c.ConvertTo(dst.Type(), isScalar, raw...)
	if err != nil {
		return err
	}
	err = Assign(dst, o)
	if err != nil && IsInvalidValue(err) {
		return errors.Wrap(err, quoteRaw(raw))
	}
	return err
}

func quoteRaw(raw []*string) string {
	quoted := make([]string, len(raw))
	for i, r := range raw {
		quoted[i] = pointer.Describe(r, "<absent>", strconv.Quote)
	}
	return strings.Join(quoted, " ")
}
