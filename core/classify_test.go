// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgest/core"
)

// TestClassify_AllSectors verifies the eight 45° sectors of ModeAll,
// including every left-closed boundary.
func TestClassify_AllSectors(t *testing.T) {
	cases := []struct {
		angle float64
		want  core.Direction
	}{
		{0, core.Right},
		{22.4, core.Right},
		{22.5, core.UpRight}, // boundary opens the next sector
		{45, core.UpRight},
		{67.5, core.Up},
		{90, core.Up},
		{112.5, core.UpLeft},
		{135, core.UpLeft},
		{157.5, core.Left},
		{180, core.Left},
		{202.5, core.DownLeft},
		{225, core.DownLeft},
		{247.5, core.Down},
		{270, core.Down},
		{292.5, core.DownRight},
		{315, core.DownRight},
		{337.4, core.DownRight},
		{337.5, core.Right},
		{359.9, core.Right},
	}
	for _, tc := range cases {
		d, err := core.ModeAll.Classify(tc.angle)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d, "angle %v", tc.angle)
	}
}

// TestClassify_CrossSectors verifies the four 90° sectors of ModeCross.
func TestClassify_CrossSectors(t *testing.T) {
	cases := []struct {
		angle float64
		want  core.Direction
	}{
		{0, core.Right},
		{44.9, core.Right},
		{45, core.Up},
		{90, core.Up},
		{134.9, core.Up},
		{135, core.Left},
		{180, core.Left},
		{224.9, core.Left},
		{225, core.Down},
		{270, core.Down},
		{314.9, core.Down},
		{315, core.Right},
		{359.9, core.Right},
	}
	for _, tc := range cases {
		d, err := core.ModeCross.Classify(tc.angle)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d, "angle %v", tc.angle)
	}
}

// TestClassify_DiagonalSectors verifies the four 90° sectors of
// ModeDiagonal, which are offset by 45° from the cross sectors.
func TestClassify_DiagonalSectors(t *testing.T) {
	cases := []struct {
		angle float64
		want  core.Direction
	}{
		{0, core.UpRight},
		{45, core.UpRight},
		{89.9, core.UpRight},
		{90, core.UpLeft},
		{135, core.UpLeft},
		{180, core.DownLeft},
		{225, core.DownLeft},
		{269.9, core.DownLeft},
		{270, core.DownRight},
		{315, core.DownRight},
		{359.9, core.DownRight},
	}
	for _, tc := range cases {
		d, err := core.ModeDiagonal.Classify(tc.angle)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d, "angle %v", tc.angle)
	}
}

// TestClassify_Totality sweeps the full circle in small steps and
// checks that every valid mode maps every angle to a member of its own
// alphabet.
func TestClassify_Totality(t *testing.T) {
	for _, m := range []core.Mode{core.ModeAll, core.ModeCross, core.ModeDiagonal} {
		t.Run(m.String(), func(t *testing.T) {
			alphabet := make(map[core.Direction]bool)
			for _, d := range m.Directions() {
				alphabet[d] = true
			}
			for angle := 0.0; angle < 360.0; angle += 0.25 {
				d, err := m.Classify(angle)
				require.NoError(t, err, "angle %v", angle)
				require.True(t, d.Valid(), "angle %v produced invalid token", angle)
				require.True(t, alphabet[d], "angle %v produced %v outside the %s alphabet", angle, d, m)
			}
		})
	}
}

// TestClassify_BadMode verifies unknown modes fail fast instead of
// falling back to a default alphabet.
func TestClassify_BadMode(t *testing.T) {
	_, err := core.Mode(42).Classify(10)
	assert.ErrorIs(t, err, core.ErrBadMode)

	_, err = core.Mode(-1).Classify(10)
	assert.ErrorIs(t, err, core.ErrBadMode)
}
