package crontime

import (
	"math/rand"
	"testing"
)

// newSeededRand returns a deterministic RNG for tests that exercise
// random-second construction or the fuzz-style generator, so failures are
// reproducible. Not exported: the production New/WithRandomSecond path
// takes its RNG from the caller, as spec'd by the RNG-isolation design
// note.
func newSeededRand(t *testing.T, seed int64) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(seed))
}
