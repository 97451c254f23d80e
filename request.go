package nconvert

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Request is one field's worth of conversion work, built by the
// argument-matching layer and discarded after Convert.
type Request struct {
	// RawValues are the tokens for the field, in command-line order.
	// A nil entry is an option given without a value.
	RawValues []*string
	Target    Descriptor
	// IsScalar selects scalar conversion, which takes exactly one
	// raw value.  Otherwise the target must be a sequence.
	IsScalar bool
	Culture  Culture
}

// Validate is a subset of the Validate provided by
// https://github.com/go-playground/validator, allowing
// other implementations to be provided if desired.
type Validate interface {
	Struct(s interface{}) error
}

var (
	defaultValidateOnce sync.Once
	defaultValidate     *validator.Validate
)

// RequestValidator returns a go-playground validator that knows the
// shape rules for a Request.  Pass it to WithValidate after adding
// rules of your own.
func RequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(requestLevel, Request{})
	return v
}

func requestValidator() Validate {
	defaultValidateOnce.Do(func() {
		defaultValidate = RequestValidator()
	})
	return defaultValidate
}

func requestLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(Request)
	if req.Target.Kind == Invalid || req.Target.Type == nil {
		sl.ReportError(req.Target, "Target", "Target", "classified", "")
	}
	if req.IsScalar && len(req.RawValues) != 1 {
		sl.ReportError(req.RawValues, "RawValues", "RawValues", "scalararity", "1")
	}
	if !req.IsScalar && req.Target.Kind != Sequence && req.Target.Kind != Invalid {
		sl.ReportError(req.Target, "Target", "Target", "sequence", "")
	}
}

func (r Request) check(v Validate) error {
	err := v.Struct(r)
	if err != nil {
		return contractError(errors.Wrapf(err, "conversion request for %s", r.Target))
	}
	return nil
}
