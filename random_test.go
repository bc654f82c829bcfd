package crontime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomAlwaysParses(t *testing.T) {
	r := newSeededRand(t, 42)
	for i := 0; i < 200; i++ {
		expr, err := GenerateRandom(r)
		require.NoError(t, err)
		_, err = New(expr)
		require.NoErrorf(t, err, "generated expression %q failed to parse", expr)
	}
}

func TestWithRandomSecondInjectsVaryingSeconds(t *testing.T) {
	r := newSeededRand(t, 7)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		s, err := New("* * * * *", WithRandomSecond(r))
		require.NoError(t, err)
		seen[s.fields[fieldSecond].input] = true
	}
	assert.Greater(t, len(seen), 1, "random seconds should vary across constructions")
}
