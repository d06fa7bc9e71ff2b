package srs

import (
	"time"

	"cloud.google.com/go/civil"
)

type Nower interface {
	Now() time.Time
}

type RealNower struct{}

func (r RealNower) Now() time.Time {
	return time.Now()
}

// Today is the calendar date of the nower's current instant in loc.
func Today(n Nower, loc *time.Location) civil.Date {
	return DateIn(n.Now(), loc)
}

// DateIn is the calendar date t falls on in loc. Nil means UTC.
func DateIn(t time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(t.In(loc))
}
