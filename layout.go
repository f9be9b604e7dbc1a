package anydate

import "fmt"

// A layout describes one accepted textual shape as data: an ordered run of
// numeric fields joined by a single separator character. Representing the
// catalogue declaratively keeps each entry testable on its own and lets new
// shapes be added at a chosen precedence position.
type layout struct {
	fields []fieldKind
	sep    byte
}

type fieldKind int

const (
	fieldYear4  fieldKind = iota // exactly four digits
	fieldYear2                   // one or two digits, windowed to 1969-2068
	fieldMonth                   // one or two digits
	fieldDay                     // one or two digits
	fieldHour                    // one or two digits
	fieldMinute                  // exactly two digits
	fieldSecond                  // exactly two digits
)

func (f fieldKind) widths() (min, max int) {
	switch f {
	case fieldYear4:
		return 4, 4
	case fieldMinute, fieldSecond:
		return 2, 2
	default:
		return 1, 2
	}
}

// dateLayouts is the date catalogue, tried strictly in order. The first
// layout whose separators and digit widths line up wins, with no second
// pass, so the order below is part of the public contract: appending a new
// shape is safe, reordering existing ones changes which of two ambiguous
// layouts an input resolves to.
var dateLayouts = []layout{
	{fields: []fieldKind{fieldYear4, fieldMonth, fieldDay}, sep: '-'}, // 2006-01-02, 2006-1-2
	{fields: []fieldKind{fieldYear4, fieldMonth, fieldDay}, sep: '/'}, // 2006/01/02
	{fields: []fieldKind{fieldYear4, fieldMonth, fieldDay}, sep: '.'}, // 2006.01.02
	{fields: []fieldKind{fieldMonth, fieldDay, fieldYear4}, sep: '/'}, // 01/02/2006
	{fields: []fieldKind{fieldMonth, fieldDay, fieldYear2}, sep: '/'}, // 01/02/06
	{fields: []fieldKind{fieldMonth, fieldDay, fieldYear4}, sep: '-'}, // 01-02-2006
	{fields: []fieldKind{fieldMonth, fieldDay, fieldYear2}, sep: '-'}, // 01-02-06
	{fields: []fieldKind{fieldMonth, fieldDay, fieldYear4}, sep: '.'}, // 01.02.2006
	{fields: []fieldKind{fieldMonth, fieldDay, fieldYear2}, sep: '.'}, // 01.02.06
}

// timeLayouts is the time-of-day catalogue. A fractional second suffix is
// not a layout of its own; it is consumed after a layout ending in seconds.
var timeLayouts = []layout{
	{fields: []fieldKind{fieldHour, fieldMinute, fieldSecond}, sep: ':'}, // 15:04:05
	{fields: []fieldKind{fieldHour, fieldMinute}, sep: ':'},              // 15:04
}

// match applies the layout to the front of s, returning the extracted field
// values in field order and the number of bytes consumed. A variable-width
// field takes two digits when two are available; fields only ever end at
// the layout separator so there is nothing to backtrack over.
func (l layout) match(s string) ([]int, int, bool) {
	vals := make([]int, 0, len(l.fields))
	i := 0
	for fi, f := range l.fields {
		if fi > 0 {
			if i >= len(s) || s[i] != l.sep {
				return nil, 0, false
			}
			i++
		}
		min, max := f.widths()
		j := i
		for j < len(s) && j-i < max && isDigit(s[j]) {
			j++
		}
		if j-i < min {
			return nil, 0, false
		}
		v := 0
		for ; i < j; i++ {
			v = v*10 + int(s[i]-'0')
		}
		vals = append(vals, v)
	}
	return vals, i, true
}

// matchDate walks the catalogue in order and returns the fields of the
// first layout that consumes all of s. There is no semantic promotion: a
// month of 13 is a structural match here and gets rejected later by the
// calendar constructor, never reinterpreted as a day.
func matchDate(catalogue []layout, s string) (year, month, day int, err error) {
	for _, l := range catalogue {
		vals, n, ok := l.match(s)
		if !ok || n != len(s) {
			continue
		}
		for i, f := range l.fields {
			switch f {
			case fieldYear4:
				year = vals[i]
			case fieldYear2:
				year = expandYear(vals[i])
			case fieldMonth:
				month = vals[i]
			case fieldDay:
				day = vals[i]
			}
		}
		return year, month, day, nil
	}
	return 0, 0, 0, fmt.Errorf("%w: %q", ErrNoMatchingDateFormat, s)
}

// matchTime matches the leading time-of-day portion of s plus an optional
// fractional second suffix, reporting how many bytes were consumed. Any
// offset suffix (Z, +07:00, ...) is left unread for the offset decomposer.
func matchTime(catalogue []layout, s string) (hour, min, sec, nsec, n int, err error) {
	for _, l := range catalogue {
		vals, consumed, ok := l.match(s)
		if !ok {
			continue
		}
		hour, min, sec, nsec, n = 0, 0, 0, 0, consumed
		for i, f := range l.fields {
			switch f {
			case fieldHour:
				hour = vals[i]
			case fieldMinute:
				min = vals[i]
			case fieldSecond:
				sec = vals[i]
			}
		}
		last := l.fields[len(l.fields)-1]
		if last == fieldSecond && n+1 < len(s) && s[n] == '.' && isDigit(s[n+1]) {
			var fn int
			nsec, fn, err = parseFraction(s[n:])
			if err != nil {
				return 0, 0, 0, 0, 0, err
			}
			n += fn
		}
		return hour, min, sec, nsec, n, nil
	}
	return 0, 0, 0, 0, 0, fmt.Errorf("%w: %q", ErrNoMatchingTimeFormat, s)
}

// parseFraction decodes a ".NNN" fractional second fragment into
// nanoseconds. Only the first nine digits are significant: shorter runs are
// right-padded (".5" is 500ms, not 5ns) and longer runs are truncated. The
// returned count covers every digit read, truncated or not, so the caller's
// cursor stays aligned with the input.
func parseFraction(s string) (nsec, n int, err error) {
	if len(s) < 2 || s[0] != '.' || !isDigit(s[1]) {
		return 0, 0, fmt.Errorf("%w: missing fractional digits in %q", ErrNoMatchingTimeFormat, s)
	}
	i := 1
	for ; i < len(s) && isDigit(s[i]); i++ {
		if i <= 9 {
			nsec = nsec*10 + int(s[i]-'0')
		}
	}
	for d := i - 1; d < 9; d++ {
		nsec *= 10
	}
	return nsec, i, nil
}

// expandYear maps a two digit year onto the same window the time package
// uses: 69-99 is 19xx, 00-68 is 20xx.
func expandYear(y int) int {
	if y >= 69 {
		return y + 1900
	}
	return y + 2000
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
