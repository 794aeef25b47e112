package analytics

import "time"

// DateRange is an optional inclusive filter over order dates. A nil bound
// imposes no constraint.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseRange builds a DateRange from raw "YYYY-MM-DD" query values. Values
// that do not parse are dropped, not rejected: a bad filter widens the result
// set instead of failing the request.
func ParseRange(from, to string) DateRange {
	var r DateRange

	if d, err := time.Parse(time.DateOnly, from); err == nil {
		r.From = &d
	}
	if d, err := time.Parse(time.DateOnly, to); err == nil {
		r.To = &d
	}

	return r
}

// Contains reports whether t falls inside the range. Only the calendar date
// is compared; time-of-day is ignored and both bounds are inclusive.
func (r DateRange) Contains(t time.Time) bool {
	d := toDate(t)

	if r.From != nil && d.Before(toDate(*r.From)) {
		return false
	}
	if r.To != nil && d.After(toDate(*r.To)) {
		return false
	}

	return true
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
