package crontime

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// fieldKind identifies one of the seven columns of a schedule. The order
// matches the data model table: second is the finest column, year the
// coarsest.
type fieldKind int

const (
	fieldSecond fieldKind = iota
	fieldMinute
	fieldHour
	fieldDay
	fieldMonth
	fieldWeekday
	fieldYear
	numFields
)

var fieldNames = [numFields]string{
	fieldSecond:  "second",
	fieldMinute:  "minute",
	fieldHour:    "hour",
	fieldDay:     "day",
	fieldMonth:   "month",
	fieldWeekday: "weekday",
	fieldYear:    "year",
}

type fieldRange struct{ min, max int }

var fieldRanges = [numFields]fieldRange{
	fieldSecond:  {0, 59},
	fieldMinute:  {0, 59},
	fieldHour:    {0, 23},
	fieldDay:     {1, 31},
	fieldMonth:   {1, 12},
	fieldWeekday: {0, 6},
	fieldYear:    {1970, 2099},
}

var monthAliases = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var weekdayAliases = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// ordinalRange is one "l<d>" or "l<d>-<e>" piece in the weekday column: it
// matches weekday values in [start,end] (end==7 denotes a wrap back to
// Sunday, i.e. the range 6-0) but only during the candidate month's final
// week containing that weekday.
type ordinalRange struct{ start, end int }

func (r ordinalRange) contains(v int) bool {
	if r.end == 7 {
		return v >= r.start || v == 0
	}
	return v >= r.start && v <= r.end
}

// FieldMatcher parses and answers membership queries for a single column of
// a Schedule. It is immutable once built by newFieldMatcher.
type FieldMatcher struct {
	kind fieldKind
	// input is the original lowercased column text, kept for the "bare l"
	// detection that the day decrement in steptable.go relies on and for
	// String()/LogValue() rendering.
	input string

	allowed       map[int]struct{}
	sortedAllowed []int
	any           bool

	// lastOfMonth is set only for the day column when a bare "l" piece
	// was present among the comma-separated pieces.
	lastOfMonth bool

	// lastWeekdays holds the weekday column's "l<d>"/"l<d>-<e>" pieces, if
	// any. A column may mix these with plain numeric pieces.
	lastWeekdays []ordinalRange

	loop bool
}

func newFieldMatcher(kind fieldKind, raw string, loop bool) (*FieldMatcher, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return nil, fieldErr(kind, "empty")
	}
	m := &FieldMatcher{
		kind:    kind,
		input:   raw,
		allowed: make(map[int]struct{}),
		loop:    loop,
	}

	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			return nil, fieldErr(kind, "empty piece in %q", raw)
		}
		if err := m.parsePiece(piece); err != nil {
			return nil, err
		}
	}

	m.sortedAllowed = make([]int, 0, len(m.allowed))
	for v := range m.allowed {
		m.sortedAllowed = append(m.sortedAllowed, v)
	}
	sort.Ints(m.sortedAllowed)

	return m, nil
}

func (m *FieldMatcher) parsePiece(piece string) error {
	switch {
	case piece == "*" || piece == "?":
		if piece == "?" && m.kind != fieldDay && m.kind != fieldWeekday {
			return fieldErr(m.kind, "'?' is only valid for day and weekday columns")
		}
		m.any = true
		return nil

	case piece == "l":
		if m.kind != fieldDay {
			return fieldErr(m.kind, "'l' is only valid in the day column")
		}
		m.lastOfMonth = true
		return nil

	case strings.HasPrefix(piece, "l"):
		if m.kind != fieldWeekday {
			return fieldErr(m.kind, "'l<weekday>' is only valid in the weekday column")
		}
		return m.parseOrdinalWeekday(piece[1:])

	default:
		return m.parseRangeStep(piece)
	}
}

func (m *FieldMatcher) parseOrdinalWeekday(ref string) error {
	if ref == "" {
		return fieldErr(m.kind, "'l' requires a weekday number or range")
	}
	var start, end int
	var err error
	if i := strings.IndexByte(ref, '-'); i >= 0 {
		start, err = m.parseValue(ref[:i])
		if err != nil {
			return err
		}
		end, err = m.parseValue(ref[i+1:])
		if err != nil {
			return err
		}
	} else {
		start, err = m.parseValue(ref)
		if err != nil {
			return err
		}
		end = start
	}
	if end == 0 && start > 0 {
		end = 7
	}
	m.lastWeekdays = append(m.lastWeekdays, ordinalRange{start: start, end: end})
	return nil
}

// parseValue parses one atomic value: a decimal integer, or (month/weekday
// only) a three-letter alias. 7 is accepted and normalized to 0 for the
// weekday column.
func (m *FieldMatcher) parseValue(tok string) (int, error) {
	if alias, ok := m.aliasTable()[tok]; ok {
		return alias, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fieldErr(m.kind, "not an integer or alias: %q", tok)
	}
	if m.kind == fieldWeekday && v == 7 {
		v = 0
	}
	r := fieldRanges[m.kind]
	if v < r.min || v > r.max {
		return 0, fieldErr(m.kind, "%d out of range %d-%d", v, r.min, r.max)
	}
	return v, nil
}

func (m *FieldMatcher) aliasTable() map[string]int {
	switch m.kind {
	case fieldMonth:
		return monthAliases
	case fieldWeekday:
		return weekdayAliases
	default:
		return nil
	}
}

func (m *FieldMatcher) parseRangeStep(piece string) error {
	rangePart := piece
	step := 0
	if i := strings.IndexByte(piece, '/'); i >= 0 {
		rangePart = piece[:i]
		stepPart := piece[i+1:]
		v, err := strconv.Atoi(stepPart)
		if err != nil || v <= 0 {
			return fieldErr(m.kind, "non-positive or invalid step %q", stepPart)
		}
		r := fieldRanges[m.kind]
		if v > r.max-r.min {
			return fieldErr(m.kind, "step %d larger than field upper limit", v)
		}
		step = v
	}

	r := fieldRanges[m.kind]

	var start, end int
	singleValue := false // true for a bare "<v>" with no "-" and no "*"
	switch {
	case rangePart == "*":
		start, end = r.min, r.max
	case strings.ContainsRune(rangePart, '-'):
		i := strings.IndexByte(rangePart, '-')
		var err error
		start, err = m.parseValue(rangePart[:i])
		if err != nil {
			return err
		}
		writtenEnd := rangePart[i+1:]
		end, err = m.parseValue(writtenEnd)
		if err != nil {
			return err
		}
		if (m.kind == fieldMonth || m.kind == fieldWeekday) && end == 0 && start > 0 {
			end = 7
		}
	default:
		v, err := m.parseValue(rangePart)
		if err != nil {
			return err
		}
		start, end = v, v
		singleValue = true
	}

	if singleValue && step == 0 {
		// "<v>" alone: expands to {v}.
		m.allowed[start] = struct{}{}
		return nil
	}

	wraps := start > end
	if wraps && !m.loop {
		return fieldErr(m.kind, "range start %d exceeds end %d", start, end)
	}

	if step == 0 {
		step = 1
	}

	if wraps {
		m.addWrapped(start, end, step)
		return nil
	}

	// "<v>/<step>" with no explicit range: the sequence runs to the
	// field's upper limit, not just to v itself.
	upper := end
	if singleValue {
		upper = r.max
	}
	for v := start; v <= upper; v += step {
		m.allowed[normalizeWeekday(m.kind, v)] = struct{}{}
	}
	return nil
}

// addWrapped expands a loop-mode piece whose start exceeds its end. It
// walks the upper side of the field from start, then continues the same
// step cadence from the wrapped-around low side up to end. Verified
// against the worked example in the grammar write-up: a bare "55-5" (step
// defaulting to 1) over the seconds column (0-59) yields
// {0,1,2,3,4,5,55,56,57,58,59}.
func (m *FieldMatcher) addWrapped(start, end, step int) {
	r := fieldRanges[m.kind]
	last := start
	for v := start; v <= r.max; v += step {
		m.allowed[v] = struct{}{}
		last = v
	}
	next := last + step
	first := next - (r.max - r.min + 1)
	for v := first; v <= end; v += step {
		if v >= r.min {
			m.allowed[v] = struct{}{}
		}
	}
}

func normalizeWeekday(kind fieldKind, v int) int {
	if kind == fieldWeekday && v == 7 {
		return 0
	}
	return v
}

// Match reports whether v, in the context of civil instant dt, satisfies
// this column.
func (m *FieldMatcher) Match(v int, dt time.Time) bool {
	switch {
	case m.kind == fieldDay && m.lastOfMonth && v == lastDayOfMonth(dt):
		return true
	case m.kind == fieldWeekday && len(m.lastWeekdays) > 0 && isLastWeekOfMonth(dt):
		for _, r := range m.lastWeekdays {
			if r.contains(v) {
				return true
			}
		}
	}
	if m.any {
		return true
	}
	_, ok := m.allowed[v]
	return ok
}

// lastDayOfMonth returns the day-of-month number of the last calendar day
// of dt's month.
func lastDayOfMonth(dt time.Time) int {
	firstOfNext := time.Date(dt.Year(), dt.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// isLastWeekOfMonth reports whether dt falls within the final occurrence of
// its own weekday in its month, i.e. dt and dt+7d fall in different months.
func isLastWeekOfMonth(dt time.Time) bool {
	return dt.AddDate(0, 0, 7).Month() != dt.Month()
}

// before reports whether every value this matcher could ever match is
// strictly less than bound. Used by the walker's year-exhaustion test; a
// Go-idiomatic stand-in for the original implementation's __lt__.
func (m *FieldMatcher) before(bound int) bool {
	if m.any {
		return fieldRanges[m.kind].max < bound
	}
	if len(m.sortedAllowed) == 0 {
		return true
	}
	return m.sortedAllowed[len(m.sortedAllowed)-1] < bound
}

// after is the mirror of before, used for the backward-search exhaustion
// test; a stand-in for the original's __gt__.
func (m *FieldMatcher) after(bound int) bool {
	if m.any {
		return fieldRanges[m.kind].min > bound
	}
	if len(m.sortedAllowed) == 0 {
		return true
	}
	return m.sortedAllowed[0] > bound
}

// equal reports semantic equality: same kind, same resolved value set, same
// last-of-month/ordinal-weekday metadata. Textually different but
// semantically identical columns (e.g. "mon" vs "1") compare equal.
func (m *FieldMatcher) equal(other *FieldMatcher) bool {
	if m.kind != other.kind || m.any != other.any || m.lastOfMonth != other.lastOfMonth {
		return false
	}
	if !intsEqual(m.sortedAllowed, other.sortedAllowed) {
		return false
	}
	if len(m.lastWeekdays) != len(other.lastWeekdays) {
		return false
	}
	for i, r := range m.lastWeekdays {
		if other.lastWeekdays[i] != r {
			return false
		}
	}
	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *FieldMatcher) String() string {
	return m.input
}
