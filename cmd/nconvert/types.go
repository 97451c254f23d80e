package main

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/muir/nconvert"
	"github.com/pkg/errors"
)

var scalarTypes = map[string]reflect.Type{
	"bool":       reflect.TypeOf(false),
	"string":     reflect.TypeOf(""),
	"int":        reflect.TypeOf(int(0)),
	"int8":       reflect.TypeOf(int8(0)),
	"int16":      reflect.TypeOf(int16(0)),
	"int32":      reflect.TypeOf(int32(0)),
	"int64":      reflect.TypeOf(int64(0)),
	"uint":       reflect.TypeOf(uint(0)),
	"uint8":      reflect.TypeOf(uint8(0)),
	"uint16":     reflect.TypeOf(uint16(0)),
	"uint32":     reflect.TypeOf(uint32(0)),
	"uint64":     reflect.TypeOf(uint64(0)),
	"float32":    reflect.TypeOf(float32(0)),
	"float64":    reflect.TypeOf(float64(0)),
	"complex128": reflect.TypeOf(complex128(0)),
	"duration":   reflect.TypeOf(time.Duration(0)),
	"time":       reflect.TypeOf(time.Time{}),
}

// Option[T] cannot be instantiated through reflection, so the
// supported ones are listed.
var optionTypes = map[string]reflect.Type{
	"bool":     reflect.TypeOf(nconvert.Option[bool]{}),
	"string":   reflect.TypeOf(nconvert.Option[string]{}),
	"int":      reflect.TypeOf(nconvert.Option[int]{}),
	"int64":    reflect.TypeOf(nconvert.Option[int64]{}),
	"uint":     reflect.TypeOf(nconvert.Option[uint]{}),
	"float64":  reflect.TypeOf(nconvert.Option[float64]{}),
	"duration": reflect.TypeOf(nconvert.Option[time.Duration]{}),
	"time":     reflect.TypeOf(nconvert.Option[time.Time]{}),
}

func parseTypeName(name string) (reflect.Type, error) {
	switch {
	case strings.HasPrefix(name, "[]"):
		elem, err := parseTypeName(name[2:])
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case strings.HasPrefix(name, "["):
		end := strings.IndexByte(name, ']')
		if end == -1 {
			return nil, errors.Errorf("type %q: missing ]", name)
		}
		n, err := strconv.Atoi(name[1:end])
		if err != nil || n < 0 {
			return nil, errors.Errorf("type %q: bad array length", name)
		}
		elem, err := parseTypeName(name[end+1:])
		if err != nil {
			return nil, err
		}
		return reflect.ArrayOf(n, elem), nil
	case strings.HasPrefix(name, "*"):
		elem, err := parseTypeName(name[1:])
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case strings.HasPrefix(name, "?"):
		t, ok := optionTypes[name[1:]]
		if !ok {
			return nil, errors.Errorf("type %q: Option of %s is not available here", name, name[1:])
		}
		return t, nil
	}
	t, ok := scalarTypes[name]
	if !ok {
		return nil, errors.Errorf("unknown type %q", name)
	}
	return t, nil
}
