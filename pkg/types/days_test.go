package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Days
		want string
	}{
		{Days(2.5), "2.50 d"},
		{Days(1), "1.00 d"},
		{Days(0.5), "12.00 h"},
		{Days(1.0 / 24), "1.00 h"},
		{Days(0.020433598), "29.42 min"}, // Kepler long cadence
		{Days(1.0 / 1440), "1.00 min"},
		{Days(30.0 / 86400), "30.00 s"},
		{Days(0), "0.00 s"},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestDays_UnitAccessors(t *testing.T) {
	d := Days(0.5)
	assert.InDelta(t, 12, d.Hours(), 1e-12)
	assert.InDelta(t, 720, d.Minutes(), 1e-12)
	assert.InDelta(t, 43200, d.Seconds(), 1e-9)

	// Kepler long cadence is ~29.4 minutes
	assert.InDelta(t, 29.42, Days(0.020433598).Minutes(), 5e-3)
}
