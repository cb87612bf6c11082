package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimes_SingleValues(t *testing.T) {
	got, err := ParseTimes([]string{"0", "1.5", "-2.25", "2459000.5"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1.5, -2.25, 2459000.5}, got)
}

func TestParseTimes_RangeDefaultStep(t *testing.T) {
	got, err := ParseTimes([]string{"0..3"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, got)
}

func TestParseTimes_RangeWithStep(t *testing.T) {
	got, err := ParseTimes([]string{"0..2:0.5"})
	require.NoError(t, err)
	require.Len(t, got, 5)
	want := []float64{0, 0.5, 1, 1.5, 2}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "i=%d", i)
	}
}

func TestParseTimes_MixedArgs(t *testing.T) {
	got, err := ParseTimes([]string{"-1", "0..1:0.5", "5"})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 0.5, 1, 5}, got)
}

func TestParseTimes_SkipsEmptyArgs(t *testing.T) {
	got, err := ParseTimes([]string{"", "  ", "1"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)
}

func TestParseTimes_Errors(t *testing.T) {
	cases := []string{
		"abc",
		"1..x",
		"x..1",
		"2..1",      // end before start
		"0..1:0",    // zero step
		"0..1:-0.5", // negative step
		"0..1:y",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := ParseTimes([]string{in})
			require.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestFmtFloat(t *testing.T) {
	assert.Equal(t, "0.5", FmtFloat(0.5))
	assert.Equal(t, "-0.4", FmtFloat(-0.4))
	assert.Equal(t, "2.4590005e+06", FmtFloat(2459000.5))
}
