package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputAddAndValue(t *testing.T) {
	in := NewInput()
	in.Add("email", "a@b.c")

	v, ok := in.Value("email")
	require.True(t, ok)
	require.Equal(t, "a@b.c", v)
	require.True(t, in.Present("email"))
	require.Equal(t, 1, in.Occurrences("email"))
}

func TestInputMarkHasNoValue(t *testing.T) {
	in := NewInput()
	in.Mark("force")

	require.True(t, in.Present("force"))
	_, ok := in.Value("force")
	require.False(t, ok)
}

func TestInputRepeatedValues(t *testing.T) {
	in := NewInput()
	in.Add("tag", "a")
	in.Add("tag", "b")
	in.Add("tag", "c")

	require.Equal(t, []string{"a", "b", "c"}, in.Values("tag"))
	require.Equal(t, 3, in.Occurrences("tag"))

	// Value always returns the first occurrence.
	v, ok := in.Value("tag")
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestInputMixedMarkAndAddCountOccurrences(t *testing.T) {
	in := NewInput()
	in.Mark("verbose")
	in.Mark("verbose")
	in.Add("verbose", "x")

	require.Equal(t, 3, in.Occurrences("verbose"))
	require.Equal(t, []string{"x"}, in.Values("verbose"))
}

func TestInputAbsent(t *testing.T) {
	in := NewInput()
	require.False(t, in.Present("missing"))
	require.Empty(t, in.Values("missing"))
	require.Zero(t, in.Occurrences("missing"))
}
