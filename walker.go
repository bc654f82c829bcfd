package crontime

import "time"

// walk is the bidirectional coarsest-to-finest search engine. It returns
// the nearest civil instant satisfying s, strictly after now (forward) or
// strictly before now (backward), or ok=false on exhaustion.
func walk(s *Schedule, now time.Time, forward bool) (future time.Time, ok bool) {
	hadSubSecond := now.Nanosecond() != 0
	now = now.Truncate(time.Second)
	switch {
	case forward:
		future = now.Add(time.Second)
	case hadSubSecond:
		// now already sits strictly between the truncated second and the
		// next one, so the truncated second itself is the nearest
		// not-yet-ruled-out candidate: no further -1s step.
		future = now
	default:
		future = now.Add(-time.Second)
	}

	increments := forwardIncrements
	resets := resetForward
	if !forward {
		increments = backwardIncrements
		resets = resetBackward
	}

	exhausted := func(t time.Time) bool {
		if forward {
			return s.fields[fieldYear].before(t.Year())
		}
		return s.fields[fieldYear].after(t.Year())
	}

	toTest := int(fieldYear)
	for toTest >= 0 {
		kind := fieldKind(toTest)
		if s.fields[kind].Match(fieldValue(kind, future), future) {
			toTest--
			continue
		}

		inc := increments[kind](future, s)
		future = future.Add(inc)
		// Reset coarser-to-finer so a finer reset (e.g. day) can rely on a
		// coarser one (e.g. month) having already landed on its new value;
		// resetBackward's day branch in particular reads the current month.
		for i := toTest - 1; i >= 0; i-- {
			future = resets(fieldKind(i), future, inc)
		}

		if exhausted(future) {
			return time.Time{}, false
		}
		toTest = int(fieldYear)
	}

	for k := fieldSecond; k <= fieldYear; k++ {
		if !s.fields[k].Match(fieldValue(k, future), future) {
			panic("crontime: walker produced an instant that fails its own schedule; this is a bug, please report it")
		}
	}

	return future, true
}
