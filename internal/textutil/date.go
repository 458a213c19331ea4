package textutil

import "time"

// Positions of the hyphens in a YYYY-MM-DD- prefix.
const (
	datePrefixLen   = 11
	yearHyphenPos   = 4
	monthHyphenPos  = 7
	dayHyphenPos    = 10
	datePrefixDigit = 10 // length of the date part itself
)

// DatePrefix formats the YYYY-MM-DD stamp for a point in time, in UTC.
func DatePrefix(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// SplitDatePrefixed splits a name of the form "YYYY-MM-DD-rest" into its
// date part and remainder. The digits themselves are not validated, only
// the hyphen positions; this mirrors how stamped names are generated.
func SplitDatePrefixed(s string) (date, rest string, ok bool) {
	if len(s) < datePrefixLen {
		return "", "", false
	}
	if s[yearHyphenPos] != '-' || s[monthHyphenPos] != '-' || s[dayHyphenPos] != '-' {
		return "", "", false
	}
	return s[:datePrefixDigit], s[datePrefixLen:], true
}

// HasDatePrefix reports whether the name begins with a YYYY-MM-DD- stamp.
func HasDatePrefix(s string) bool {
	_, _, ok := SplitDatePrefixed(s)
	return ok
}

// StampName joins a date prefix with a normalized name part.
func StampName(now time.Time, name string) string {
	return DatePrefix(now) + "-" + NormalizeForMatch(name)
}
