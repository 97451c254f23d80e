package nconvert

import (
	"fmt"
	"reflect"
)

// Option is a present-or-absent value for consumers that prefer
// an explicit maybe type to a pointer.  Fields declared as Option[T]
// are described as Optional with the Maybe variant.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, present: true} }
func None[T any]() Option[T]    { return Option[T]{} }

func (o Option[T]) IsPresent() bool { return o.present }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// OrElse returns the value if present and def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func (o *Option[T]) setPresent(v reflect.Value) {
	o.value = v.Interface().(T)
	o.present = true
}

func (Option[T]) optionPayload() reflect.Type {
	return typeOf[T]()
}

// maybe is implemented by every *Option[T].  It is how reflection
// recognizes an Option regardless of T.
type maybe interface {
	setPresent(reflect.Value)
	optionPayload() reflect.Type
}

var maybeType = reflect.TypeOf((*maybe)(nil)).Elem()

func isMaybe(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(maybeType)
}

// OptionalVariant distinguishes the two shapes of an Optional target.
type OptionalVariant int

const (
	NotOptional OptionalVariant = iota
	Nullable                    // *T
	Maybe                       // Option[T]
)

func (v OptionalVariant) String() string {
	switch v {
	case Nullable:
		return "nullable"
	case Maybe:
		return "maybe"
	default:
		return "none"
	}
}

// optionalShell is the single present/absent contract shared by
// both variants.  The scalar converter only ever talks to this.
type optionalShell interface {
	absent() reflect.Value
	present(payload reflect.Value) reflect.Value
	canHold(payload reflect.Type) bool
}

type nullableShell struct {
	t reflect.Type // *T
}

func (s nullableShell) absent() reflect.Value { return reflect.Zero(s.t) }

func (s nullableShell) present(payload reflect.Value) reflect.Value {
	p := reflect.New(s.t.Elem())
	p.Elem().Set(payload)
	return p
}

func (s nullableShell) canHold(payload reflect.Type) bool {
	return payload.AssignableTo(s.t.Elem())
}

type maybeShell struct {
	t reflect.Type // Option[T]
}

func (s maybeShell) absent() reflect.Value { return reflect.Zero(s.t) }

func (s maybeShell) present(payload reflect.Value) reflect.Value {
	p := reflect.New(s.t)
	p.Interface().(maybe).setPresent(payload)
	return p.Elem()
}

func (s maybeShell) canHold(payload reflect.Type) bool {
	return payload.AssignableTo(reflect.New(s.t).Interface().(maybe).optionPayload())
}

func shellFor(d Descriptor) optionalShell {
	switch d.Variant {
	case Nullable:
		return nullableShell{t: d.Type}
	case Maybe:
		return maybeShell{t: d.Type}
	default:
		return nil
	}
}
