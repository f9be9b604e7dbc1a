package anydate

import (
	"encoding/json"
	"time"
)

// The types below bridge the parse functions into encoding/json, for
// decoding payloads whose timestamp fields arrive in whatever layout the
// producer felt like. Each embeds time.Time, so the decoded value formats
// and marshals like any other. JSON null leaves the zero value; a string in
// no supported layout surfaces the usual parse error taxonomy as the
// unmarshal error.

// Time decodes a JSON string in any supported datetime layout, preserving
// whatever offset the source carried.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	return unmarshal(data, &t.Time, Parse)
}

// UTCTime decodes like Time but normalizes the result to UTC.
type UTCTime struct {
	time.Time
}

func (t *UTCTime) UnmarshalJSON(data []byte) error {
	return unmarshal(data, &t.Time, ParseUTC)
}

// Date decodes a JSON string in any supported date-only layout as midnight
// UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	return unmarshal(data, &d.Time, ParseDate)
}

func unmarshal(data []byte, dst *time.Time, parse func(string) (time.Time, error)) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*dst = time.Time{}
		return nil
	}
	t, err := parse(*s)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}
