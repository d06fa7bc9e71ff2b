package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"
)

var secret = []byte("test-secret")

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func header(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

func TestAuthenticateJWT(t *testing.T) {
	is := is.New(t)
	tok := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"sub": "1234",
		"usn": "cesar",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	ctx, err := authenticateJWT(context.Background(), header(tok), secret)
	is.NoErr(err)
	u := UserFromContext(ctx)
	is.Equal(u.DBID, int64(1234))
	is.Equal(u.Username, "cesar")
}

func TestAuthenticateJWTRejects(t *testing.T) {
	for name, h := range map[string]http.Header{
		"missing": {},
		"wrong key": header(signed(t, jwt.SigningMethodHS256, []byte("other"),
			jwt.MapClaims{"sub": "1", "usn": "a"})),
		"expired": header(signed(t, jwt.SigningMethodHS256, secret,
			jwt.MapClaims{"sub": "1", "usn": "a", "exp": time.Now().Add(-time.Hour).Unix()})),
		"bad sub": header(signed(t, jwt.SigningMethodHS256, secret,
			jwt.MapClaims{"sub": "abc", "usn": "a"})),
		"no usn": header(signed(t, jwt.SigningMethodHS256, secret,
			jwt.MapClaims{"sub": "1"})),
		"garbage": header("not-a-token"),
	} {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			_, err := authenticateJWT(context.Background(), h, secret)
			is.True(err != nil)
		})
	}
}
