package model

import "context"

type ContextManager interface {
	SetAccessTokenToContext(ctx context.Context, token string) context.Context
	GetAccessTokenFromContext(ctx context.Context) (string, bool)
}
