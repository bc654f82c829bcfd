/*
Package crontime parses extended cron-style schedule expressions and
computes the next (or previous) instant at which a schedule fires relative
to an anchor instant, or determines that no such instant exists within the
supported calendar window (1970-2099).

It is a pure computation library: no timers, no persistent state, no I/O.
It is intended to be embedded by job schedulers and workflow engines that
translate a declarative schedule into concrete fire times of their own
choosing.

# Syntax

Schedules use seven whitespace-separated fields, in order: second, minute,
hour, day of month, month, day of week, year. Five- and six-field
expressions are accepted and promoted by prepending a seconds column (and,
for five fields, appending a wildcard year column).

	second   0-59
	minute   0-59
	hour     0-23
	day      1-31
	month    1-12 (or jan..dec)
	weekday  0-6, Sunday = 0 (or sun..sat)
	year     1970-2099

Each field is a comma-separated list of pieces. A piece is a wildcard (`*`
or, in the day/weekday columns, `?`), a single value, an inclusive range
`v-w`, or either of those followed by `/step`. The day column alone accepts
the bare literal `l`, meaning the last calendar day of the month. The
weekday column alone accepts `l<d>` or `l<d>-<e>`, meaning the last
occurrence (or range of occurrences) of that weekday within the month.

Macros are expanded before parsing:

	@yearly (or @annually) - 0 0 1 1 *
	@monthly                - 0 0 1 * *
	@weekly                 - 0 0 * * 0
	@daily                  - 0 0 * * *
	@hourly                 - 0 * * * *

# Directionality

New builds a Schedule; Matches answers a point-in-time membership query;
Next and Previous walk forward or backward from an Anchor to the nearest
firing instant, returning a zero Result when no instant exists in the
supported year range.
*/
package crontime
