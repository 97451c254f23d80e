package nconvert

import (
	"encoding"
	"reflect"
	"time"

	"github.com/pkg/errors"
)

// Kind classifies a target type for conversion purposes.
type Kind int

const (
	Invalid Kind = iota
	Boolean
	Enumeration
	Optional
	Primitive
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Enumeration:
		return "enumeration"
	case Optional:
		return "optional"
	case Primitive:
		return "primitive"
	case Sequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// Descriptor is the classification of a target type that the
// converters dispatch on.  Build them with a Describer; literal
// Descriptors are accepted but are checked at conversion time.
type Descriptor struct {
	Kind Kind
	Type reflect.Type

	// Variant and Underlying are set for Optional.
	Variant    OptionalVariant
	Underlying *Descriptor

	// Elem is set for Sequence.
	Elem *Descriptor

	// Members is set for Enumeration.
	Members []EnumMember
}

func (d Descriptor) String() string {
	if d.Type == nil {
		return d.Kind.String()
	}
	return d.Kind.String() + " " + d.Type.String()
}

// Describer is the type-descriptor provider.  It classifies Go
// types and knows the members of registered enumerations.  A
// Describer is immutable once built and safe for concurrent use.
type Describer struct {
	enums      map[reflect.Type][]EnumMember
	delayedErr error
}

type DescriberOpt func(*Describer) error

var (
	timeType            = reflect.TypeOf(time.Time{})
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	emptyInterfaceType  = reflect.TypeOf((*interface{})(nil)).Elem()
)

// NewDescriber creates a Describer.  Errors in the options are
// reported by every later call to Describe.
func NewDescriber(opts ...DescriberOpt) *Describer {
	d := &Describer{
		enums: make(map[reflect.Type][]EnumMember),
	}
	d.delayedErr = d.opts(opts)
	return d
}

func (d *Describer) opts(opts []DescriberOpt) error {
	for _, f := range opts {
		err := f(d)
		if err != nil {
			return err
		}
	}
	return nil
}

// With returns a new Describer that knows everything d knows plus
// whatever opts add.  d is not modified.
func (d *Describer) With(opts ...DescriberOpt) *Describer {
	n := &Describer{
		enums:      make(map[reflect.Type][]EnumMember, len(d.enums)),
		delayedErr: d.delayedErr,
	}
	for t, members := range d.enums {
		n.enums[t] = members
	}
	if n.delayedErr == nil {
		n.delayedErr = n.opts(opts)
	}
	return n
}

// Describe classifies t.  Types that text can never be converted
// into produce a contract violation.
func (d *Describer) Describe(t reflect.Type) (Descriptor, error) {
	if d.delayedErr != nil {
		return Descriptor{}, d.delayedErr
	}
	if t == nil {
		return Descriptor{}, contractErrorf("cannot describe a nil type")
	}
	return d.describe(t, nil)
}

// DescriptorFor is Describe for a type parameter.
func DescriptorFor[T any](d *Describer) (Descriptor, error) {
	return d.Describe(typeOf[T]())
}

// describe classifies t.  parents holds the types being described
// above t, so that self-referential types such as "type Tree []Tree"
// are rejected instead of recursing forever.
func (d *Describer) describe(t reflect.Type, parents []reflect.Type) (Descriptor, error) {
	for _, p := range parents {
		if p == t {
			if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
				return Descriptor{}, contractErrorf("sequences of sequences are not supported: %s contains itself", t)
			}
			return Descriptor{}, contractErrorf("%s refers to itself", t)
		}
	}
	if members, ok := d.enums[t]; ok {
		return Descriptor{
			Kind:    Enumeration,
			Type:    t,
			Members: members,
		}, nil
	}
	switch {
	case t.Kind() == reflect.Ptr:
		return d.optional(t, Nullable, t.Elem(), parents)
	case isMaybe(t):
		return d.optional(t, Maybe, reflect.New(t).Interface().(maybe).optionPayload(), parents)
	}
	switch t.Kind() {
	case reflect.Bool:
		return Descriptor{Kind: Boolean, Type: t}, nil
	case reflect.Slice, reflect.Array:
		elem, err := d.describe(t.Elem(), append(parents, t))
		if err != nil {
			return Descriptor{}, errors.Wrapf(err, "element of %s", t)
		}
		if elem.Kind == Sequence {
			return Descriptor{}, contractErrorf("sequences of sequences are not supported: %s", t)
		}
		return Descriptor{Kind: Sequence, Type: t, Elem: &elem}, nil
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return Descriptor{Kind: Primitive, Type: t}, nil
	case reflect.Interface:
		if t == emptyInterfaceType {
			return Descriptor{Kind: Primitive, Type: t}, nil
		}
	}
	if t == timeType || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return Descriptor{Kind: Primitive, Type: t}, nil
	}
	return Descriptor{}, contractErrorf("text cannot be converted to %s", t)
}

func (d *Describer) optional(t reflect.Type, variant OptionalVariant, payload reflect.Type, parents []reflect.Type) (Descriptor, error) {
	underlying, err := d.describe(payload, append(parents, t))
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, "%s value of %s", variant, t)
	}
	switch underlying.Kind {
	case Optional, Sequence:
		return Descriptor{}, contractErrorf("%s %s cannot wrap a %s", variant, t, underlying.Kind)
	}
	return Descriptor{
		Kind:       Optional,
		Type:       t,
		Variant:    variant,
		Underlying: &underlying,
	}, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
