package srs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatching(t *testing.T) {
	err := &Error{Kind: RecordsNotFound, Op: "move-to-top", UserID: 42, CardIDs: []string{"A", "C"}}
	wrapped := fmt.Errorf("handler: %w", err)

	assert.ErrorIs(t, wrapped, ErrRecordsNotFound)
	assert.NotErrorIs(t, wrapped, ErrConflict)
	assert.Equal(t, RecordsNotFound, KindOf(wrapped))
	assert.Equal(t, "srs: move-to-top: records not found (user 42, cards [A C])", err.Error())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := StoreError("get-card", cause)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)

	nf := NotFoundError("get-card", 1, "x")
	assert.Same(t, nf, StoreError("get-card", nf))
	assert.Nil(t, StoreError("noop", nil))
	assert.Equal(t, Unknown, KindOf(cause))
}

func TestParseRating(t *testing.T) {
	for in, want := range map[string]Rating{"again": Again, "2": Hard, " Good ": Good, "EASY": Easy} {
		got, err := ParseRating(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseRating("5")
	assert.ErrorIs(t, err, ErrInvalidRating)
	assert.Equal(t, "Rating(9)", Rating(9).String())
}
