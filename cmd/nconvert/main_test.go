package main

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/muir/nconvert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeName(t *testing.T) {
	cases := []struct {
		name string
		want reflect.Type
	}{
		{name: "int", want: reflect.TypeOf(0)},
		{name: "[]int", want: reflect.TypeOf([]int(nil))},
		{name: "[3]float64", want: reflect.TypeOf([3]float64{})},
		{name: "*duration", want: reflect.TypeOf((*time.Duration)(nil))},
		{name: "[]*string", want: reflect.TypeOf([]*string(nil))},
		{name: "?int", want: reflect.TypeOf(nconvert.Option[int]{})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTypeName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	_, err := parseTypeName("widget")
	assert.Error(t, err, "unknown")
	_, err = parseTypeName("?complex64")
	assert.Error(t, err, "no such option")
}

func runConvert(t *testing.T, args ...string) (string, error) {
	cmd := NewNconvertCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"convert"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	t.Setenv("NCONVERT_CULTURE", "")

	out, err := runConvert(t, "--type", "float64", "--culture", "de-DE", "1.234,5")
	require.NoError(t, err)
	assert.Equal(t, "1234.5\n", out)

	out, err = runConvert(t, "--type", "[]int", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "[]int{1, 2, 3}\n", out)

	out, err = runConvert(t, "--type", "int", "abc")
	assert.Error(t, err)
	assert.Equal(t, "Failure\n", out)

	_, err = runConvert(t, "--type", "*int", "--absent", "5", "1")
	require.Error(t, err)
	assert.Equal(t, "--absent 5 is out of range for 1 values", err.Error())

	out, err = runConvert(t, "--type", "*int", "--absent", "0", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "(*int)(nil)\n", out)

	_, err = runConvert(t, "--type", "int", "1", "2")
	require.Error(t, err)
	assert.True(t, nconvert.IsContractViolation(err), "two values for a scalar")
}
