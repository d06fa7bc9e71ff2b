package srs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies engine errors.
type Kind uint8

const (
	Unknown Kind = iota
	InvalidRating
	CorruptState
	RecordsNotFound
	StoreUnavailable
	NotFound
	Conflict
	InvalidArgument
)

var kindNames = map[Kind]string{
	Unknown:          "unknown",
	InvalidRating:    "invalid rating",
	CorruptState:     "corrupt state",
	RecordsNotFound:  "records not found",
	StoreUnavailable: "store unavailable",
	NotFound:         "not found",
	Conflict:         "conflict",
	InvalidArgument:  "invalid argument",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is the structured error returned by every engine operation.
type Error struct {
	Kind    Kind
	Op      string
	UserID  int64
	CardIDs []string
	Err     error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidRating    = &Error{Kind: InvalidRating}
	ErrCorruptState     = &Error{Kind: CorruptState}
	ErrRecordsNotFound  = &Error{Kind: RecordsNotFound}
	ErrStoreUnavailable = &Error{Kind: StoreUnavailable}
	ErrNotFound         = &Error{Kind: NotFound}
	ErrConflict         = &Error{Kind: Conflict}
	ErrInvalidArgument  = &Error{Kind: InvalidArgument}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("srs: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.UserID != 0 || len(e.CardIDs) > 0 {
		fmt.Fprintf(&b, " (user %d", e.UserID)
		if len(e.CardIDs) > 0 {
			fmt.Fprintf(&b, ", cards %v", e.CardIDs)
		}
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// StoreError wraps a collaborator failure as StoreUnavailable. Errors that
// are already classified pass through untouched.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: StoreUnavailable, Op: op, Err: err}
}

// NotFoundError is returned by point reads of a missing (user, card).
func NotFoundError(op string, userID int64, cardID string) error {
	return &Error{Kind: NotFound, Op: op, UserID: userID, CardIDs: []string{cardID}}
}

// ConflictError is returned when a compare-and-swap write loses.
func ConflictError(op string, userID int64, cardID string, expected int64) error {
	return &Error{Kind: Conflict, Op: op, UserID: userID, CardIDs: []string{cardID},
		Err: fmt.Errorf("expected version %d", expected)}
}

func InvalidArgError(op string, msg string) error {
	return &Error{Kind: InvalidArgument, Op: op, Err: errors.New(msg)}
}
