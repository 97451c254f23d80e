package nconvert

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	cases := []struct {
		name   string
		raw    []*string
		target Descriptor
		want   interface{}
		fail   bool
	}{
		{
			name:   "ints",
			raw:    Texts("1", "2", "3"),
			target: describe[[]int](t),
			want:   []int{1, 2, 3},
		},
		{
			name:   "one bad element",
			raw:    Texts("1", "x", "3"),
			target: describe[[]int](t),
			fail:   true,
		},
		{
			name:   "last element bad",
			raw:    Texts("1", "2", "x"),
			target: describe[[]int](t),
			fail:   true,
		},
		{
			name:   "empty",
			raw:    nil,
			target: describe[[]string](t),
			want:   []string{},
		},
		{
			name:   "enums",
			raw:    Texts("Green", "Red", "Green"),
			target: describe[[]Color](t),
			want:   []Color{Green, Red, Green},
		},
		{
			name:   "undefined enum",
			raw:    Texts("Green", "Blue"),
			target: describe[[]Color](t),
			fail:   true,
		},
		{
			name:   "nullable elements",
			raw:    []*string{pointer.ToString("4"), nil},
			target: describe[[]*int](t),
			want:   []*int{pointer.ToInt(4), nil},
		},
		{
			name:   "maybe elements",
			raw:    []*string{nil, pointer.ToString("5")},
			target: describe[[]Option[int]](t),
			want:   []Option[int]{None[int](), Some(5)},
		},
		{
			name:   "booleans",
			raw:    Texts("TRUE", "false"),
			target: describe[[]bool](t),
			want:   []bool{true, false},
		},
		{
			name:   "boolean literal in ints",
			raw:    Texts("1", "true"),
			target: describe[[]int](t),
			fail:   true,
		},
		{
			name:   "array",
			raw:    Texts("1.5", "2.5"),
			target: describe[[2]float64](t),
			want:   [2]float64{1.5, 2.5},
		},
		{
			name:   "array too short",
			raw:    Texts("1.5"),
			target: describe[[2]float64](t),
			fail:   true,
		},
		{
			name:   "array too long",
			raw:    Texts("1", "2", "3"),
			target: describe[[2]float64](t),
			fail:   true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := ConvertSequence(tc.raw, tc.target, Invariant)
			require.NoError(t, err)
			if tc.fail {
				assert.False(t, o.OK(), "expected failure, got %v", o)
				assert.Nil(t, o.Value(), "no partial result")
				return
			}
			require.True(t, o.OK())
			assert.Equal(t, tc.want, o.Value())
		})
	}
}

func TestSequenceOrder(t *testing.T) {
	values := make([]string, 200)
	want := make([]int, len(values))
	for i := range values {
		n := (i * 7919) % 1000
		values[i] = strconv.Itoa(n)
		want[i] = n
	}
	o, err := ConvertSequence(Texts(values...), describe[[]int](t), Invariant)
	require.NoError(t, err)
	require.True(t, o.OK())
	got, ok := As[[]int](o)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSequenceElementNotDerivable(t *testing.T) {
	malformed := Descriptor{
		Kind: Sequence,
		Type: reflect.TypeOf([]int(nil)),
	}
	o, err := ConvertSequence(Texts("1", "2"), malformed, Invariant)
	require.Error(t, err, "must not be a plain failure")
	assert.True(t, IsContractViolation(err))
	assert.False(t, o.OK())

	mismatched := Descriptor{
		Kind: Sequence,
		Type: reflect.TypeOf([]int(nil)),
		Elem: &Descriptor{Kind: Primitive, Type: reflect.TypeOf("")},
	}
	_, err = ConvertSequence(Texts("1"), mismatched, Invariant)
	assert.True(t, IsContractViolation(err), "element descriptor for the wrong type")

	_, err = ConvertSequence(Texts("1"), describe[int](t), Invariant)
	assert.True(t, IsContractViolation(err), "not a sequence")

	_, err = ConvertSequence([]*string{nil}, describe[[]int](t), Invariant)
	assert.True(t, IsContractViolation(err), "absent element for a non-optional element type")
}
