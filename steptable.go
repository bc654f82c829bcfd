package crontime

import "time"

// dayCoarse is the threshold past which an increment is considered
// "coarser than a day", the trigger for cascading a day/month reset. A
// plain day or weekday increment (exactly 24h) does not cross it.
const dayCoarse = 24 * time.Hour

// fieldValue reads the civil attribute a FieldMatcher of kind compares
// against, from dt.
func fieldValue(kind fieldKind, dt time.Time) int {
	switch kind {
	case fieldSecond:
		return dt.Second()
	case fieldMinute:
		return dt.Minute()
	case fieldHour:
		return dt.Hour()
	case fieldDay:
		return dt.Day()
	case fieldMonth:
		return int(dt.Month())
	case fieldWeekday:
		return int(dt.Weekday())
	case fieldYear:
		return dt.Year()
	}
	panic("crontime: unreachable field kind")
}

type incrementFunc func(dt time.Time, s *Schedule) time.Duration

var forwardIncrements = [numFields]incrementFunc{
	fieldSecond:  func(time.Time, *Schedule) time.Duration { return time.Second },
	fieldMinute:  func(time.Time, *Schedule) time.Duration { return time.Minute },
	fieldHour:    func(time.Time, *Schedule) time.Duration { return time.Hour },
	fieldDay:     func(time.Time, *Schedule) time.Duration { return dayCoarse },
	fieldMonth:   incMonth,
	fieldWeekday: func(time.Time, *Schedule) time.Duration { return dayCoarse },
	fieldYear:    incYear,
}

var backwardIncrements = [numFields]incrementFunc{
	fieldSecond:  func(time.Time, *Schedule) time.Duration { return -time.Second },
	fieldMinute:  func(time.Time, *Schedule) time.Duration { return -time.Minute },
	fieldHour:    func(time.Time, *Schedule) time.Duration { return -time.Hour },
	fieldDay:     decDay,
	fieldMonth:   decMonth,
	fieldWeekday: func(time.Time, *Schedule) time.Duration { return -dayCoarse },
	fieldYear:    decYear,
}

// incMonth advances to the first day of the next month, preserving
// time-of-day, expressed as the exact delta from dt.
func incMonth(dt time.Time, s *Schedule) time.Duration {
	firstOfNext := time.Date(dt.Year(), dt.Month(), 1, dt.Hour(), dt.Minute(), dt.Second(), dt.Nanosecond(), time.UTC).AddDate(0, 1, 0)
	return firstOfNext.Sub(dt)
}

// decMonth retreats to the last day of the previous month, preserving
// time-of-day.
func decMonth(dt time.Time, s *Schedule) time.Duration {
	firstOfThis := time.Date(dt.Year(), dt.Month(), 1, dt.Hour(), dt.Minute(), dt.Second(), dt.Nanosecond(), time.UTC)
	return firstOfThis.Add(-dayCoarse).Sub(dt)
}

// decDay is -1d unless the day column's raw text is the bare literal "l",
// in which case it jumps to the last day of the previous month so the
// search resumes against a terminal day.
func decDay(dt time.Time, s *Schedule) time.Duration {
	if s.fields[fieldDay].input != "l" {
		return -dayCoarse
	}
	firstOfThis := time.Date(dt.Year(), dt.Month(), 1, dt.Hour(), dt.Minute(), dt.Second(), dt.Nanosecond(), time.UTC)
	return firstOfThis.Add(-dayCoarse).Sub(dt)
}

// incYear/decYear mirror the leap-cycle correction of the reference
// implementation this grammar is distilled from: a year normally advances
// by 365d, but adds an extra day exactly once per 4-year straddle so that
// the (month, day) pair is re-approached correctly across Feb 29.
func incYear(dt time.Time, s *Schedule) time.Duration {
	mod := dt.Year() % 4
	before0229 := dt.Month() < 2 || (dt.Month() == 2 && dt.Day() < 29)
	after0229 := dt.Month() > 2 || (dt.Month() == 2 && dt.Day() > 29)
	if mod == 0 && before0229 {
		return 366 * dayCoarse
	}
	if mod == 3 && after0229 {
		return 366 * dayCoarse
	}
	return 365 * dayCoarse
}

func decYear(dt time.Time, s *Schedule) time.Duration {
	mod := dt.Year() % 4
	before0229 := dt.Month() < 2 || (dt.Month() == 2 && dt.Day() < 29)
	after0229 := dt.Month() > 2 || (dt.Month() == 2 && dt.Day() > 29)
	if mod == 0 && after0229 {
		return -366 * dayCoarse
	}
	if mod == 1 && before0229 {
		return -366 * dayCoarse
	}
	return -365 * dayCoarse
}

// resetForward normalizes field kind to its minimum after a coarser field
// has advanced by inc. Day and month only reset when inc crosses a day
// boundary, so a plain day-level increment doesn't regress the month.
func resetForward(kind fieldKind, dt time.Time, inc time.Duration) time.Time {
	switch kind {
	case fieldSecond:
		return time.Date(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), 0, 0, time.UTC)
	case fieldMinute:
		return time.Date(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), 0, dt.Second(), 0, time.UTC)
	case fieldHour:
		return time.Date(dt.Year(), dt.Month(), dt.Day(), 0, dt.Minute(), dt.Second(), 0, time.UTC)
	case fieldDay:
		if inc > dayCoarse {
			return time.Date(dt.Year(), dt.Month(), 1, dt.Hour(), dt.Minute(), dt.Second(), 0, time.UTC)
		}
	case fieldMonth:
		if inc > dayCoarse {
			return time.Date(dt.Year(), time.January, dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), 0, time.UTC)
		}
	case fieldWeekday:
		// derived from the date; nothing to reset directly.
	}
	return dt
}

// resetBackward is resetForward's mirror: fields are pushed to their
// maxima.
func resetBackward(kind fieldKind, dt time.Time, inc time.Duration) time.Time {
	switch kind {
	case fieldSecond:
		return time.Date(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), 59, 0, time.UTC)
	case fieldMinute:
		return time.Date(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), 59, dt.Second(), 0, time.UTC)
	case fieldHour:
		return time.Date(dt.Year(), dt.Month(), dt.Day(), 23, dt.Minute(), dt.Second(), 0, time.UTC)
	case fieldDay:
		if inc < -dayCoarse {
			firstOfThis := time.Date(dt.Year(), dt.Month(), 1, dt.Hour(), dt.Minute(), dt.Second(), 0, time.UTC)
			last := lastDayOfMonth(firstOfThis)
			return time.Date(dt.Year(), dt.Month(), last, dt.Hour(), dt.Minute(), dt.Second(), 0, time.UTC)
		}
	case fieldMonth:
		if inc < -dayCoarse {
			return time.Date(dt.Year(), time.December, dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), 0, time.UTC)
		}
	case fieldWeekday:
		// derived from the date; nothing to reset directly.
	}
	return dt
}
