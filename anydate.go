// Package anydate parses dates and datetimes whose exact textual layout is
// not known ahead of time, as found in logs, third-party APIs and user
// input. Instead of requiring a format string it tries a fixed, ordered
// catalogue of common numeric layouts and returns a normalized time.Time.
//
// The catalogue order is the ambiguity rule: the first layout that fits the
// characters wins, with no attempt to find a semantically nicer match.
// Callers that need a different precedence should parse with an explicit
// format via the time package instead.
package anydate

import (
	"fmt"
	"strings"
	"time"
)

// Parse parses an unknown-format datetime string. The input must contain a
// date portion and a time portion separated by a single space or 'T'; a
// numeric UTC offset suffix (Z, +07:00, +0700, +07) may follow, optionally
// preceded by one space. Inputs without an offset are taken as UTC.
//
// The returned error wraps one of the Err* sentinels describing which stage
// rejected the input. No partial result is ever returned.
func Parse(datestr string) (time.Time, error) {
	datestr = strings.TrimSpace(datestr)
	sep := strings.IndexAny(datestr, " T")
	if sep < 0 {
		return time.Time{}, fmt.Errorf("%w in %q", ErrNoDateTimeSeparator, datestr)
	}

	year, month, day, err := matchDate(dateLayouts, datestr[:sep])
	if err != nil {
		return time.Time{}, err
	}
	rest := datestr[sep+1:]
	hour, min, sec, nsec, n, err := matchTime(timeLayouts, rest)
	if err != nil {
		return time.Time{}, err
	}
	// Offsets may be glued to the seconds or follow one space, as in the
	// postgres style "2012-08-03 18:31:59 +0000".
	tail := strings.TrimPrefix(rest[n:], " ")
	offset, hasOffset, err := parseOffset(tail)
	if err != nil {
		return time.Time{}, err
	}

	loc := time.UTC
	if hasOffset && offset != 0 {
		loc = time.FixedZone("", offset)
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, nsec, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec {
		return time.Time{}, fmt.Errorf("%w: year=%d month=%d day=%d hour=%d minute=%d second=%d",
			ErrInvalidDateTime, year, month, day, hour, min, sec)
	}
	return t, nil
}

// ParseUTC is Parse with the result converted to UTC, for callers that do
// not care to preserve the offset the source string carried.
func ParseUTC(datestr string) (time.Time, error) {
	t, err := Parse(datestr)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseDate parses an unknown-format date-only string, returning midnight
// UTC of that day. The whole input must be a single catalogued date layout.
func ParseDate(datestr string) (time.Time, error) {
	datestr = strings.TrimSpace(datestr)
	year, month, day, err := matchDate(dateLayouts, datestr)
	if err != nil {
		return time.Time{}, err
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: year=%d month=%d day=%d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// MustParse is Parse but panics on error.
func MustParse(datestr string) time.Time {
	t, err := Parse(datestr)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// MustParseDate is ParseDate but panics on error.
func MustParseDate(datestr string) time.Time {
	t, err := ParseDate(datestr)
	if err != nil {
		panic(err.Error())
	}
	return t
}
