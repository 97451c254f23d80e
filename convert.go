package nconvert

import (
	"reflect"

	"github.com/muir/nconvert/internal/pointer"
	"github.com/pkg/errors"
)

// Convert routes raw values to the scalar or sequence converter.  It
// does no conversion itself.
//
// The error is non-nil only when the caller broke the contract: a
// scalar request without exactly one value, a sequence request for a
// non-sequence target, a sequence whose element type cannot be derived.
// Values that do not convert come back as Failure with a nil error.
func Convert(raw []*string, target Descriptor, isScalar bool, culture Culture) (Outcome, error) {
	return convert(requestValidator(), Request{
		RawValues: raw,
		Target:    target,
		IsScalar:  isScalar,
		Culture:   culture,
	})
}

func convert(v Validate, req Request) (Outcome, error) {
	err := req.check(v)
	if err != nil {
		return Failure(), err
	}
	if req.IsScalar {
		return ConvertScalar(req.RawValues[0], req.Target, req.Culture)
	}
	return ConvertSequence(req.RawValues, req.Target, req.Culture)
}

// Converter bundles a Describer, a default Culture, and a request
// validator for callers that work from Go types rather than
// descriptors.  It holds no mutable state.
type Converter struct {
	describer *Describer
	culture   Culture
	validate  Validate
}

type ConverterOpt func(*Converter)

// WithDescriber sets the type-descriptor provider.  The default knows
// no enumerations.
func WithDescriber(d *Describer) ConverterOpt {
	return func(c *Converter) {
		c.describer = d
	}
}

// WithCulture sets the culture used when a Request does not carry one.
func WithCulture(culture Culture) ConverterOpt {
	return func(c *Converter) {
		c.culture = culture
	}
}

// WithValidate replaces the request validator.  Start from
// RequestValidator() to keep the built-in rules.
func WithValidate(v Validate) ConverterOpt {
	return func(c *Converter) {
		c.validate = v
	}
}

func NewConverter(opts ...ConverterOpt) *Converter {
	c := &Converter{
		culture: Invariant,
	}
	for _, f := range opts {
		f(c)
	}
	if c.describer == nil {
		c.describer = NewDescriber()
	}
	if c.validate == nil {
		c.validate = requestValidator()
	}
	return c
}

func (c *Converter) Describer() *Describer { return c.describer }

func (c *Converter) Culture() Culture { return c.culture }

// Convert is the package Convert with the Converter's validator.  A
// Request with a zero Culture uses the Converter's culture.
func (c *Converter) Convert(req Request) (Outcome, error) {
	if req.Culture.decimal == "" {
		req.Culture = c.culture
	}
	return convert(c.validate, req)
}

// ConvertTo describes t and converts raw into it.  The scalar or
// sequence branch is chosen by isScalar, as with Convert.
func (c *Converter) ConvertTo(t reflect.Type, isScalar bool, raw ...*string) (Outcome, error) {
	target, err := c.describer.Describe(t)
	if err != nil {
		return Failure(), errors.Wrap(err, "describe")
	}
	return c.Convert(Request{
		RawValues: raw,
		Target:    target,
		IsScalar:  isScalar,
	})
}

// Texts turns plain strings into raw values, none of them absent.
func Texts(values ...string) []*string {
	return pointer.Each(values)
}
