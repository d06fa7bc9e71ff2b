package auth

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestUserRoundTrip(t *testing.T) {
	is := is.New(t)
	is.True(UserFromContext(context.Background()) == nil)

	ctx := StoreUserInContext(context.Background(), 18, "cesar")
	u := UserFromContext(ctx)
	is.True(u != nil)
	is.Equal(u.DBID, int64(18))
	is.Equal(u.Username, "cesar")
}
