package nconvert

import (
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/muir/commonerrors"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

// convertPrimitive turns text into a value of t according to culture.
// Every way this can go wrong, panics included, comes back as an
// error so that the scalar converter can fold it into Failure.
func convertPrimitive(text string, t reflect.Type, culture Culture) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = reflect.Value{}
			err = errors.Errorf("converting %q to %s: %v", text, t, r)
		}
	}()
	culture = culture.orInvariant()
	target := reflect.New(t).Elem()
	switch {
	case t == timeType:
		tm, err := parseTime(text, culture)
		if err != nil {
			return reflect.Value{}, err
		}
		target.Set(reflect.ValueOf(tm))
		return target, nil
	case t == durationType:
		d, err := time.ParseDuration(culture.asciiDecimal(strings.TrimSpace(text)))
		if err != nil {
			return reflect.Value{}, errors.WithStack(err)
		}
		target.SetInt(int64(d))
		return target, nil
	case reflect.PointerTo(t).Implements(textUnmarshalerType):
		return setWithReflectutils(target, text)
	}
	switch t.Kind() {
	case reflect.String:
		target.SetString(text)
	case reflect.Interface:
		target.Set(reflect.ValueOf(text))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := culture.normalizeInteger(text)
		if err != nil {
			return reflect.Value{}, err
		}
		i, err := strconv.ParseInt(n, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, errors.WithStack(err)
		}
		target.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := culture.normalizeInteger(text)
		if err != nil {
			return reflect.Value{}, err
		}
		u, err := strconv.ParseUint(n, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, errors.WithStack(err)
		}
		target.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(culture.normalizeNumber(text), t.Bits())
		if err != nil {
			return reflect.Value{}, errors.WithStack(err)
		}
		target.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(culture.normalizeNumber(text), t.Bits())
		if err != nil {
			return reflect.Value{}, errors.WithStack(err)
		}
		target.SetComplex(c)
	default:
		return setWithReflectutils(target, text)
	}
	return target, nil
}

func setWithReflectutils(target reflect.Value, text string) (reflect.Value, error) {
	setter, err := reflectutils.MakeStringSetter(target.Type())
	if err != nil {
		return reflect.Value{}, commonerrors.LibraryError(errors.Wrap(err, target.Type().String()))
	}
	err = setter(target, text)
	if err != nil {
		return reflect.Value{}, err
	}
	return target, nil
}

// normalizeNumber rewrites culture-formatted numeric text into the
// form strconv reads: group separators removed, ASCII minus and
// decimal point.
func (c Culture) normalizeNumber(text string) string {
	s := strings.TrimSpace(text)
	if c.minus != "-" && strings.HasPrefix(s, c.minus) {
		s = "-" + strings.TrimPrefix(s, c.minus)
	}
	if c.group != "" {
		s = strings.ReplaceAll(s, c.group, "")
		if isSpaceSeparator(c.group) {
			// users rarely type the exact space the locale groups with
			s = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, s)
		}
	}
	return c.asciiDecimal(s)
}

// normalizeInteger is normalizeNumber for integer targets, which take
// no group separators: "1.5" under de must not become 15.
func (c Culture) normalizeInteger(text string) (string, error) {
	s := strings.TrimSpace(text)
	if c.group != "" && strings.Contains(s, c.group) {
		return "", errors.Errorf("%q: group separator %q in an integer", text, c.group)
	}
	if c.minus != "-" && strings.HasPrefix(s, c.minus) {
		s = "-" + strings.TrimPrefix(s, c.minus)
	}
	return s, nil
}

func (c Culture) asciiDecimal(s string) string {
	if c.decimal == "." {
		return s
	}
	return strings.ReplaceAll(s, c.decimal, ".")
}

func isSpaceSeparator(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return s != ""
}

func parseTime(text string, culture Culture) (time.Time, error) {
	s := strings.TrimSpace(text)
	for _, layout := range culture.Layouts() {
		tm, err := time.Parse(layout, s)
		if err == nil {
			return tm, nil
		}
	}
	return time.Time{}, errors.Errorf("%q does not match any %s date layout", text, culture.Name())
}
