package srs

import (
	"fmt"
	"strings"
)

// Rating is the user's self-assessed recall quality.
type Rating int

const (
	Again Rating = iota + 1
	Hard
	Good
	Easy
)

var ratingNames = [...]string{Again: "again", Hard: "hard", Good: "good", Easy: "easy"}

func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating accepts either the rating name or its number (1-4).
func ParseRating(s string) (Rating, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r := Again; r <= Easy; r++ {
		if s == ratingNames[r] || s == fmt.Sprint(int(r)) {
			return r, nil
		}
	}
	return 0, &Error{Kind: InvalidRating, Op: "parse-rating", Err: fmt.Errorf("%q", s)}
}
