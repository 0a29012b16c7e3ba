package auth

import (
	"context"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// Me returns the profile of the context user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.users.GetByID(ctx, userID)
}
