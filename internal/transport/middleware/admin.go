package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
	"github.com/heartmarshall/evoting-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden for authenticated non-admins.
// Use in REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return id, nil
}

// RequireSubject returns the authenticated caller or domain.ErrUnauthorized.
func RequireSubject(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
