package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func (s *Service) Users(ctx context.Context) ([]entity.User, error) {
	_, err := adminFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.Users(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	admin, err := adminFromContext(ctx)
	if err != nil {
		return err
	}

	if admin.ID == id {
		return fmt.Errorf("%w: admin %s cannot delete own account", entity.ErrForbidden, id)
	}

	return s.repo.DeleteUser(ctx, id)
}

func adminFromContext(ctx context.Context) (entity.User, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user from context: %w", err)
	}

	if !user.IsAdmin() {
		return entity.User{}, fmt.Errorf("%w: user %s is not admin", entity.ErrForbidden, user.ID)
	}

	return user, nil
}
