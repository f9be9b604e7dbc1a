package anydate

import "errors"

// Every parse failure wraps one of these sentinels, so callers can classify
// with errors.Is while the message carries the offending input or fields.
var (
	// ErrNoMatchingDateFormat means the date portion of the input matched
	// no catalogued layout.
	ErrNoMatchingDateFormat = errors.New("no matching date format")

	// ErrNoMatchingTimeFormat means the time portion of the input matched
	// no catalogued layout.
	ErrNoMatchingTimeFormat = errors.New("no matching time format")

	// ErrNoDateTimeSeparator means a datetime parse found no space or 'T'
	// boundary between the date and time portions.
	ErrNoDateTimeSeparator = errors.New("no date/time separator")

	// ErrMalformedOffset means a timezone offset suffix was present but not
	// in any recognized shape (Z, +HH:MM, +HHMM, +HH).
	ErrMalformedOffset = errors.New("malformed timezone offset")

	// ErrInvalidDate means the input was structurally well formed but the
	// field values do not name a real calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidDateTime is ErrInvalidDate for datetime inputs, covering
	// the clock fields as well.
	ErrInvalidDateTime = errors.New("invalid calendar datetime")
)
