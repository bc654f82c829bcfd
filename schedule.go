package crontime

import (
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

var aliasTable = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// Schedule is an immutable seven-field cron-style schedule: second, minute,
// hour, day, month, weekday, year.
type Schedule struct {
	raw          string
	fields       [numFields]*FieldMatcher
	randomSecond bool
}

// Option configures New.
type Option func(*scheduleOptions)

type scheduleOptions struct {
	wrap         bool
	randomSecond bool
	rng          *rand.Rand
}

// WithWrapAround enables loop (wrap-around) mode for every column: a range
// whose start exceeds its end wraps through the field's modulus instead of
// being rejected.
func WithWrapAround() Option {
	return func(o *scheduleOptions) { o.wrap = true }
}

// WithRandomSecond requests that, when the expression omits a seconds
// column (5 or 6 fields), the prepended seconds column be a uniformly
// random integer in 0-59 rather than a fixed 0. It also enables loop mode
// on the seconds column specifically, so explicit seven-field expressions
// can use wrap-around second ranges. If r is nil, a source seeded from the
// current time is used.
func WithRandomSecond(r *rand.Rand) Option {
	return func(o *scheduleOptions) {
		o.randomSecond = true
		o.rng = r
	}
}

// New parses a cron-style schedule expression into a Schedule.
func New(expr string, opts ...Option) (*Schedule, error) {
	var so scheduleOptions
	for _, opt := range opts {
		opt(&so)
	}
	if so.randomSecond && so.rng == nil {
		so.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	raw := strings.ToLower(strings.TrimSpace(expr))
	if canon, ok := aliasTable[raw]; ok {
		raw = canon
	}

	parts := strings.Fields(raw)
	second := "0"
	if so.randomSecond {
		second = strconv.Itoa(so.rng.Intn(60))
	}

	switch len(parts) {
	case 5:
		parts = append([]string{second}, parts...)
		parts = append(parts, "*")
	case 6:
		parts = append([]string{second}, parts...)
	case 7:
		// used as given
	default:
		return nil, scheduleErr("expected 5, 6, or 7 whitespace-separated fields, got %d", len(parts))
	}

	s := &Schedule{raw: expr, randomSecond: so.randomSecond}

	var errs []error
	for i := 0; i < int(numFields); i++ {
		kind := fieldKind(i)
		loop := so.wrap || (kind == fieldSecond && so.randomSecond)
		fm, err := newFieldMatcher(kind, parts[i], loop)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.fields[kind] = fm
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return s, nil
}

// Matches reports whether every field of s matches t.
func (s *Schedule) Matches(t time.Time) bool {
	for k := fieldSecond; k <= fieldYear; k++ {
		if !s.fields[k].Match(fieldValue(k, t), t) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other are built from equivalent field sets.
// The second field is skipped when either schedule was built with
// WithRandomSecond, since its value is non-deterministic by design.
func (s *Schedule) Equal(other *Schedule) bool {
	if other == nil {
		return false
	}
	skipSecond := s.randomSecond || other.randomSecond
	for k := fieldSecond; k <= fieldYear; k++ {
		if skipSecond && k == fieldSecond {
			continue
		}
		if !s.fields[k].equal(other.fields[k]) {
			return false
		}
	}
	return true
}

// String renders the schedule as its seven space-separated columns.
func (s *Schedule) String() string {
	parts := make([]string, numFields)
	for k := fieldSecond; k <= fieldYear; k++ {
		parts[k] = s.fields[k].String()
	}
	return strings.Join(parts, " ")
}

// LogValue implements slog.LogValuer, following the teacher's pattern of
// letting a *Schedule embed cleanly in structured log lines.
func (s *Schedule) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

