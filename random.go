package crontime

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"
)

// GenerateRandom produces a random, always-parseable seven-field schedule
// expression, adapted from the teacher's five-field NewRandom generator:
// extra weight is put on the wildcard, since it's the most common column
// value in real schedules, and list/range/step columns are generated with
// a bias toward simple forms. It is primarily useful for property-based
// and fuzz-style tests of New/Next/Previous. If r is nil, a source seeded
// from the current time is used.
func GenerateRandom(r *rand.Rand) (string, error) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if r.Intn(100) == 1 {
		macros := make([]string, 0, len(aliasTable))
		for k := range aliasTable {
			macros = append(macros, k)
		}
		sort.Strings(macros)
		return macros[r.Intn(len(macros))], nil
	}

	fields := make([]string, numFields)
	for k := fieldSecond; k <= fieldYear; k++ {
		v, err := randomColumn(k, r)
		if err != nil {
			return "", err
		}
		fields[k] = v
	}
	return strings.Join(fields, " "), nil
}

// anyBias controls how often each column is generated as a bare wildcard,
// mirroring the teacher's per-column weighting (minute/hour/day favor "*"
// more than month/weekday, since narrower columns read more naturally as
// explicit values in realistic schedules).
var anyBias = [numFields]int{
	fieldSecond:  9,
	fieldMinute:  9,
	fieldHour:    6,
	fieldDay:     6,
	fieldMonth:   4,
	fieldWeekday: 1,
	fieldYear:    8,
}

func randomColumn(kind fieldKind, r *rand.Rand) (string, error) {
	if r.Intn(10) < anyBias[kind] {
		return "*", nil
	}
	if kind == fieldDay && r.Intn(20) == 0 {
		return "l", nil
	}
	if kind == fieldWeekday && r.Intn(20) == 0 {
		return fmt.Sprintf("l%d", r.Intn(7)), nil
	}

	switch r.Intn(4) {
	case 0:
		return randomRange(kind, r), nil
	case 1:
		return randomStepColumn(kind, r), nil
	case 2:
		n := r.Intn(3) + 2
		seen := map[string]bool{}
		vals := make([]string, 0, n)
		for len(vals) < n {
			v := randomSingle(kind, r)
			if seen[v] {
				continue
			}
			seen[v] = true
			vals = append(vals, v)
		}
		return strings.Join(vals, ","), nil
	default:
		return randomSingle(kind, r), nil
	}
}

func randomSingle(kind fieldKind, r *rand.Rand) string {
	rng := fieldRanges[kind]
	return strconv.Itoa(rng.min + r.Intn(rng.max-rng.min+1))
}

func randomRange(kind fieldKind, r *rand.Rand) string {
	rng := fieldRanges[kind]
	width := rng.max - rng.min
	start := rng.min + r.Intn(width)
	end := start + r.Intn(rng.max-start) + 1
	return fmt.Sprintf("%d-%d", start, end)
}

// randomStepColumn mirrors the teacher's randomStep: pick a sub-range wide
// enough to carry a step greater than 1, leaving room for at least "/1".
func randomStepColumn(kind fieldKind, r *rand.Rand) string {
	rng := fieldRanges[kind]
	width := rng.max - rng.min
	if width < 2 {
		return fmt.Sprintf("%d-%d/1", rng.min, rng.max)
	}
	end := rng.min + r.Intn(width-1) + 1
	start := rng.min + r.Intn(end-rng.min)
	step := r.Intn(end-start) + 1
	return fmt.Sprintf("%d-%d/%d", start, end, step)
}

