package entity

import (
	"context"
)

type (
	CtxKeyIP   struct{}
	CtxKeyUser struct{}
)

func UserFromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(User)
	if !ok {
		return User{}, ErrUnauthorized
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

func IPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(CtxKeyIP{}).(string)
	return ip
}

func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, CtxKeyIP{}, ip)
}
