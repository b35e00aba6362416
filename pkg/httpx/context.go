package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the id of the user owning the request's session.
	CtxKeyUserID ctxKey = "user_id"
)

// WithUserID records the authenticated user id for downstream middleware
// such as per-user rate limiting.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}
