package api

import (
	"context"

	"sportlebanon/internal/admins"
)

type ctxKey string

const ctxKeyAdmin ctxKey = "admin"

func WithAdmin(ctx context.Context, a *admins.Admin) context.Context {
	return context.WithValue(ctx, ctxKeyAdmin, a)
}

func AdminFromContext(ctx context.Context) *admins.Admin {
	v := ctx.Value(ctxKeyAdmin)
	if v == nil {
		return nil
	}
	a, _ := v.(*admins.Admin)
	return a
}
