package anydate

import "fmt"

// parseOffset decodes the timezone suffix trailing a datetime's time
// portion. Empty input means the source carried no offset at all, which is
// distinct from an explicit Z. The recognized shapes are Z, +HH:MM, +HHMM
// and +HH (minute taken as zero). Each shape must account for the entire
// tail; any remainder is a malformed offset, not ignorable garbage.
//
// Hour and minute magnitudes are not range checked here. Something like
// +25:00 is structurally fine and gets handed to the clock constructor,
// which normalizes it.
func parseOffset(s string) (seconds int, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	if s == "Z" || s == "z" {
		return 0, true, nil
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrMalformedOffset, s)
	}

	var hh, mm int
	d := s[1:]
	switch {
	case len(d) == 5 && d[2] == ':' && allDigits(d[:2]) && allDigits(d[3:]): // +07:00
		hh = int(d[0]-'0')*10 + int(d[1]-'0')
		mm = int(d[3]-'0')*10 + int(d[4]-'0')
	case len(d) == 4 && allDigits(d): // +0700
		hh = int(d[0]-'0')*10 + int(d[1]-'0')
		mm = int(d[2]-'0')*10 + int(d[3]-'0')
	case len(d) == 2 && allDigits(d): // +07
		hh = int(d[0]-'0')*10 + int(d[1]-'0')
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrMalformedOffset, s)
	}
	return sign * (hh*3600 + mm*60), true, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
