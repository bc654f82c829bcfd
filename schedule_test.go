package crontime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldCountPromotion(t *testing.T) {
	five, err := New("* * * * *")
	require.NoError(t, err)
	assert.Equal(t, "0", five.fields[fieldSecond].input)
	assert.True(t, five.fields[fieldYear].any)

	six, err := New("* * * * * 2024")
	require.NoError(t, err)
	assert.Equal(t, "0", six.fields[fieldSecond].input)
	assert.ElementsMatch(t, []int{2024}, six.fields[fieldYear].sortedAllowed)

	seven, err := New("30 * * * * * 2024")
	require.NoError(t, err)
	assert.Equal(t, "30", seven.fields[fieldSecond].input)
}

func TestNewRejectsBadFieldCount(t *testing.T) {
	_, err := New("* * *")
	require.Error(t, err)
}

func TestNewAggregatesAllColumnErrors(t *testing.T) {
	_, err := New("99 99 * * * * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second")
	assert.Contains(t, err.Error(), "minute")
}

func TestAliasExpansion(t *testing.T) {
	cases := map[string]string{
		"@yearly":   "0 0 1 1 *",
		"@annually": "0 0 1 1 *",
		"@monthly":  "0 0 1 * *",
		"@weekly":   "0 0 * * 0",
		"@daily":    "0 0 * * *",
		"@hourly":   "0 * * * *",
	}
	for macro, canonical := range cases {
		a, err := New(macro)
		require.NoError(t, err)
		c, err := New(canonical)
		require.NoError(t, err)
		assert.True(t, a.Equal(c), "%s should equal %s", macro, canonical)
	}
}

func TestScheduleMatches(t *testing.T) {
	s, err := New("30 12 * * *")
	require.NoError(t, err)
	assert.True(t, s.Matches(time.Date(2024, 10, 31, 12, 30, 0, 0, time.UTC)))
	assert.False(t, s.Matches(time.Date(2024, 10, 31, 12, 31, 0, 0, time.UTC)))
}

func TestScheduleEqualIgnoresSecondOnlyWithRandomMode(t *testing.T) {
	r := newSeededRand(t, 1)
	a, err := New("* * * * *", WithRandomSecond(r))
	require.NoError(t, err)
	b, err := New("* * * * *")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := New("0 * * * * * *")
	require.NoError(t, err)
	d, err := New("1 * * * * * *")
	require.NoError(t, err)
	assert.False(t, c.Equal(d))
}

func TestScheduleString(t *testing.T) {
	s, err := New("0 0 1 1 *")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 1 1 * *", s.String())
}

func TestScheduleDayAndWeekdayAreIndependentNotOR(t *testing.T) {
	// Seven-field revision drops the legacy day-XOR-weekday wildcard rule:
	// a schedule constraining both columns requires both to hold.
	s, err := New("0 0 1 * 1 2024")
	require.NoError(t, err)
	// Jan 1 2024 is a Monday, satisfying both constraints.
	assert.True(t, s.Matches(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	// Jan 8 2024 is also a Monday but not day 1: must fail since both
	// columns are independently required.
	assert.False(t, s.Matches(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))
}
