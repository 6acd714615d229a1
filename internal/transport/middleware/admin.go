package middleware

import (
	"context"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use inside REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.UserRoleFromCtx(ctx) != domain.UserRoleAdmin.String() {
		return domain.ErrForbidden
	}
	return nil
}
