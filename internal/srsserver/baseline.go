package srsserver

import (
	"errors"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"

	"github.com/domino14/srs_server/internal/srs"
)

const (
	// A rating can be revised for this long after it was given.
	baselineTTL = 48 * time.Hour
	// baselineAudience keeps login tokens and baseline tokens apart.
	baselineAudience = "edit-last-score"
)

// baselineClaims is the payload of the token ScoreCard hands out. The card
// state it was computed from travels with the client but is signed, so
// EditLastScore recomputes from exactly that state.
type baselineClaims struct {
	jwt.RegisteredClaims
	Version  int64                    `json:"ver"`
	Baseline srs.CardSchedulingRecord `json:"base"`
}

func signBaseline(key []byte, baseline srs.CardSchedulingRecord, version int64, now time.Time) (string, error) {
	claims := baselineClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(baseline.UserID, 10),
			Audience:  jwt.ClaimStrings{baselineAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(baselineTTL)),
		},
		Version:  version,
		Baseline: baseline,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// parseBaseline checks the token's signature, expiry and owner and returns
// the baseline with the card version it was issued for.
func parseBaseline(key []byte, token string, userID int64, now time.Time) (srs.CardSchedulingRecord, int64, error) {
	if token == "" {
		return srs.CardSchedulingRecord{}, 0, invalidArgError("baseline_token is required")
	}
	claims := &baselineClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithSubject(strconv.FormatInt(userID, 10)),
		jwt.WithAudience(baselineAudience),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenInvalidSubject):
		return srs.CardSchedulingRecord{}, 0, connect.NewError(connect.CodePermissionDenied,
			errors.New("baseline belongs to another user"))
	case errors.Is(err, jwt.ErrTokenExpired):
		return srs.CardSchedulingRecord{}, 0, connect.NewError(connect.CodeFailedPrecondition,
			errors.New("the rating can no longer be edited"))
	case err != nil:
		return srs.CardSchedulingRecord{}, 0, invalidArgError("bad baseline token")
	}
	base := claims.Baseline
	if base.CardID == "" || base.UserID != userID || base.Validate() != nil {
		return srs.CardSchedulingRecord{}, 0, invalidArgError("malformed baseline")
	}
	return base, claims.Version, nil
}
