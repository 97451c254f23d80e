package nconvert

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// EnumMember is one defined constant of an enumeration.
type EnumMember struct {
	Name  string
	Value interface{}
}

// WithEnum registers the defined constants of an enumeration type.
// Each value's String() is the name users type on the command line.
//
//	type Color int
//	const (
//		Red Color = iota
//		Green
//	)
//	func (c Color) String() string { ... }
//
//	describer := NewDescriber(WithEnum(Red, Green))
func WithEnum[T fmt.Stringer](values ...T) DescriberOpt {
	return func(d *Describer) error {
		members := make([]EnumMember, len(values))
		for i, v := range values {
			members[i] = EnumMember{Name: v.String(), Value: v}
		}
		return d.addEnum(typeOf[T](), members)
	}
}

// WithEnumNames registers an enumeration whose names are not
// provided by a String method.
func WithEnumNames[T any](names map[string]T) DescriberOpt {
	return func(d *Describer) error {
		members := make([]EnumMember, 0, len(names))
		for name, v := range names {
			members = append(members, EnumMember{Name: name, Value: v})
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
		return d.addEnum(typeOf[T](), members)
	}
}

func (d *Describer) addEnum(t reflect.Type, members []EnumMember) error {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Interface:
		return contractErrorf("%s cannot be an enumeration", t)
	}
	if len(members) == 0 {
		return contractErrorf("enumeration %s has no members", t)
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Name == "" {
			return contractErrorf("enumeration %s has a member with an empty name", t)
		}
		if _, dup := seen[m.Name]; dup {
			return contractError(errors.Errorf("enumeration %s defines %q more than once", t, m.Name))
		}
		seen[m.Name] = struct{}{}
	}
	if _, exists := d.enums[t]; exists {
		return contractErrorf("enumeration %s registered twice", t)
	}
	d.enums[t] = members
	return nil
}

// convertEnum matches name exactly (case matters) against the defined
// members.  Numeric text is never taken as an ordinal: "0" only
// matches a member literally named "0".
func convertEnum(name string, target Descriptor) (reflect.Value, bool) {
	for _, m := range target.Members {
		if m.Name != name {
			continue
		}
		v := reflect.ValueOf(m.Value)
		if !v.IsValid() || !v.Type().AssignableTo(target.Type) {
			debugf("enum %s member %s has value of type %T", target.Type, m.Name, m.Value)
			return reflect.Value{}, false
		}
		return v, true
	}
	return reflect.Value{}, false
}
