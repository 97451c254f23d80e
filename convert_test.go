package nconvert

import (
	"reflect"
	"sync"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDispatch(t *testing.T) {
	o, err := Convert(Texts("42"), describe[int](t), true, Invariant)
	require.NoError(t, err)
	assert.Equal(t, Success(42), o)

	o, err = Convert(Texts("1", "2", "3"), describe[[]int](t), false, Invariant)
	require.NoError(t, err)
	assert.Equal(t, Success([]int{1, 2, 3}), o)

	o, err = Convert(Texts("1", "x", "3"), describe[[]int](t), false, Invariant)
	require.NoError(t, err)
	assert.Equal(t, Failure(), o)

	o, err = Convert([]*string{nil}, describe[*int](t), true, Invariant)
	require.NoError(t, err)
	assert.Equal(t, Success((*int)(nil)), o)
}

func TestConvertContract(t *testing.T) {
	cases := []struct {
		name     string
		raw      []*string
		target   Descriptor
		isScalar bool
	}{
		{name: "scalar without value", raw: nil, target: describe[int](t), isScalar: true},
		{name: "scalar with two values", raw: Texts("1", "2"), target: describe[int](t), isScalar: true},
		{name: "many into scalar type", raw: Texts("1", "2"), target: describe[int](t)},
		{name: "unclassified", raw: Texts("1"), target: Descriptor{}, isScalar: true},
		{name: "element not derivable", raw: Texts("1"), target: Descriptor{Kind: Sequence, Type: reflect.TypeOf([]int(nil))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Convert(tc.raw, tc.target, tc.isScalar, Invariant)
			require.Error(t, err)
			assert.True(t, IsContractViolation(err), "%+v", err)
			assert.False(t, o.OK())
		})
	}
}

func TestConvertIdempotent(t *testing.T) {
	de, err := LookupCulture("de")
	require.NoError(t, err)
	requests := []Request{
		{RawValues: Texts("1.234,5"), Target: describe[float64](t), IsScalar: true, Culture: de},
		{RawValues: Texts("Red", "Green"), Target: describe[[]Color](t), Culture: de},
		{RawValues: Texts("Red", "Blue"), Target: describe[[]Color](t), Culture: de},
		{RawValues: []*string{nil}, Target: describe[Option[int]](t), IsScalar: true},
	}
	converter := NewConverter(WithDescriber(testDescriber))
	for _, req := range requests {
		first, err := converter.Convert(req)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := converter.Convert(req)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestConvertConcurrently(t *testing.T) {
	target := describe[[]int](t)
	var wg sync.WaitGroup
	results := make([]Outcome, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o, err := Convert(Texts("7", "8", "9"), target, false, Invariant)
			if err == nil {
				results[i] = o
			}
		}(i)
	}
	wg.Wait()
	for _, o := range results {
		assert.Equal(t, Success([]int{7, 8, 9}), o)
	}
}

func TestConverter(t *testing.T) {
	fr, err := LookupCulture("fr_FR.UTF-8")
	require.NoError(t, err)
	converter := NewConverter(WithDescriber(testDescriber), WithCulture(fr))
	assert.Equal(t, "fr_FR", converter.Culture().Name())

	o, err := converter.ConvertTo(reflect.TypeOf(0.0), true, pointer.ToString("3,25"))
	require.NoError(t, err)
	assert.Equal(t, Success(3.25), o)

	o, err = converter.Convert(Request{
		RawValues: Texts("1,5"),
		Target:    describe[float64](t),
		IsScalar:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, Success(1.5), o)

	// a culture on the request wins
	o, err = converter.Convert(Request{
		RawValues: Texts("1,5"),
		Target:    describe[float64](t),
		IsScalar:  true,
		Culture:   Invariant,
	})
	require.NoError(t, err)
	assert.Equal(t, Success(15.0), o)

	_, err = converter.ConvertTo(reflect.TypeOf(map[string]int{}), true, pointer.ToString("a"))
	assert.True(t, IsContractViolation(err))
}

func TestConverterCustomValidator(t *testing.T) {
	v := RequestValidator()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		requestLevel(sl)
		req := sl.Current().Interface().(Request)
		if len(req.RawValues) > 2 {
			sl.ReportError(req.RawValues, "RawValues", "RawValues", "max", "2")
		}
	}, Request{})
	converter := NewConverter(WithDescriber(testDescriber), WithValidate(v))

	_, err := converter.ConvertTo(reflect.TypeOf([]int(nil)), false, Texts("1", "2", "3")...)
	assert.True(t, IsContractViolation(err))

	o, err := converter.ConvertTo(reflect.TypeOf([]int(nil)), false, Texts("1", "2")...)
	require.NoError(t, err)
	assert.Equal(t, Success([]int{1, 2}), o)
}
