package auth

import (
	"context"
)

type ctxkey string

const (
	userkey ctxkey = "autheduser"
)

// AuthedUser identifies whose cards a request may touch. Every scheduling
// call is scoped to DBID.
type AuthedUser struct {
	DBID     int64
	Username string
}

func StoreUserInContext(ctx context.Context, dbid int64, username string) context.Context {
	ctx = context.WithValue(ctx, userkey, &AuthedUser{
		DBID:     dbid,
		Username: username,
	})
	return ctx
}

func UserFromContext(ctx context.Context) *AuthedUser {
	au, ok := ctx.Value(userkey).(*AuthedUser)
	if ok {
		return au
	}
	return nil
}
