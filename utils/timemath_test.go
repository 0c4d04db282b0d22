package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestToMinutesRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"9:00",    // hours not zero-padded
		"09:0",    // minutes not zero-padded
		"24:00",   // hours out of range
		"12:60",   // minutes out of range
		"12-30",   // wrong separator
		"ab:cd",   // not digits
		"09:30 ",  // trailing garbage
		" 9:30",   // leading space
		"0930",    // missing separator
		"09:30:00",
	}
	for _, in := range bad {
		_, err := ToMinutes(in)
		require.Error(t, err, "%q should be rejected", in)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, in)
	}
}

func TestToTimeString(t *testing.T) {
	assert.Equal(t, "00:00", ToTimeString(0))
	assert.Equal(t, "09:05", ToTimeString(545))
	assert.Equal(t, "23:59", ToTimeString(1439))

	// Out-of-range values clamp to the day.
	assert.Equal(t, "00:00", ToTimeString(-10))
	assert.Equal(t, "23:59", ToTimeString(1500))
}

func TestTimeStringRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m += 7 {
		s := ToTimeString(m)
		back, err := ToMinutes(s)
		require.NoError(t, err, s)
		assert.Equal(t, m, back, s)
	}
}

func TestIntervalsOverlap(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"disjoint", 540, 600, 660, 720, false},
		{"contained", 540, 720, 600, 660, true},
		{"partial", 540, 630, 600, 720, true},
		{"identical", 540, 600, 540, 600, true},
		{"touching boundaries do not conflict", 540, 600, 600, 660, false},
		{"touching reversed", 600, 660, 540, 600, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IntervalsOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.want, IntervalsOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd), "overlap must be symmetric")
		})
	}
}
