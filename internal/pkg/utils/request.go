package utils

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
)

func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

// ContextWithAPIToken carries the bearer token of the current session to
// outbound API calls.
func ContextWithAPIToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_API_TOKEN_KEY, token)
}

func GetAPITokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(constvars.CONTEXT_API_TOKEN_KEY).(string)
	return token
}

func ContextWithSession(ctx context.Context, session *models.Session) context.Context {
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
	return ContextWithAPIToken(ctx, session.Token)
}

// GetSessionFromContext returns the session loaded for the request, or nil
// for anonymous visitors.
func GetSessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session
}
