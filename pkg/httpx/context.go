package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated user's id once the session
	// middleware has decoded the cookie.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyRole carries the authenticated user's role string.
	CtxKeyRole ctxKey = "role"
)

// WithUser returns a context carrying the authenticated user id and role.
func WithUser(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	return context.WithValue(ctx, CtxKeyRole, role)
}

// UserIDFromCtx returns the authenticated user id, or "" when anonymous.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated role, or "" when anonymous.
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
