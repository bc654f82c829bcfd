package crontime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestTimeZoneCorrectionSpringForward(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	s := mustSchedule(t, "0 9 13 3 * 2016")
	anchor := time.Date(2016, 3, 13, 0, 0, 0, 0, loc)

	res, err := s.Next(FromZoned(anchor))
	require.NoError(t, err)
	require.True(t, res.Ok())
	assert.Equal(t, 28800.0, res.Seconds())
}

func TestTimeZoneCorrectionFallBack(t *testing.T) {
	// 2018-11-04 is the US fall-back day in America/Los_Angeles: wall-clock
	// 01:00-01:59 occurs twice. Exactly which of the two occurrences a
	// zoned anchor within that hour resolves to is a property of the zone
	// library's ambiguity rule, not of this package (spec.md §9, open
	// question b) — so both a pre-transition and an in-the-repeated-hour
	// anchor must produce an Ok, small, non-negative delay to the next
	// 01:30 fire, reproducible from the anchor's own UTC offset.
	loc := mustLocation(t, "America/Los_Angeles")
	s := mustSchedule(t, "30 1 * * * 2018")

	for _, anchor := range []time.Time{
		time.Date(2018, 11, 4, 0, 30, 0, 0, loc),
		time.Date(2018, 11, 4, 1, 15, 0, 0, loc),
	} {
		res, err := s.Next(FromZoned(anchor))
		require.NoError(t, err)
		require.True(t, res.Ok())
		assert.GreaterOrEqual(t, res.Seconds(), 0.0)
		assert.Less(t, res.Seconds(), float64(2*86400))
	}
}

func TestEpochAnchorDefaultUTC(t *testing.T) {
	s := mustSchedule(t, "0 * * * *")
	epoch := float64(time.Date(2014, 6, 6, 9, 0, 0, 0, time.UTC).Unix())
	res, err := s.Next(FromEpochSeconds(epoch), WithDefaultUTC())
	require.NoError(t, err)
	require.True(t, res.Ok())
	assert.Equal(t, 3600.0, res.Seconds())
}

func TestNaiveCivilAnchorIgnoresLocation(t *testing.T) {
	s := mustSchedule(t, "0 * * * *")
	loc := mustLocation(t, "America/New_York")
	anchor := time.Date(2014, 6, 6, 9, 0, 0, 0, loc)
	res, err := s.Next(FromCivil(anchor))
	require.NoError(t, err)
	require.True(t, res.Ok())
	assert.Equal(t, 3600.0, res.Seconds())
}

func TestAbsoluteOutputIsEpochSeconds(t *testing.T) {
	s := mustSchedule(t, "0 * * * *")
	anchor := time.Date(2014, 6, 6, 9, 0, 0, 0, time.UTC)
	res, err := s.Next(FromCivil(anchor), WithAbsolute())
	require.NoError(t, err)
	require.True(t, res.Ok())
	assert.Equal(t, time.Date(2014, 6, 6, 10, 0, 0, 0, time.UTC).Unix(), int64(res.Seconds()))
}

func TestExhaustionResultIsZeroValue(t *testing.T) {
	s := mustSchedule(t, "0 0 29 2 * 2011")
	res, err := s.Next(FromCivil(time.Date(2011, 2, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.False(t, res.Ok())
}
