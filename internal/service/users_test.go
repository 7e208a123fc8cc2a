package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestService_Users(t *testing.T) {
	t.Parallel()

	admin := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin}
	regular := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}

	tests := []struct {
		name         string
		ctx          context.Context
		mockBehavior func(ts *TestService)
		wantErr      error
	}{
		{
			name: "admin",
			ctx:  entity.SetUserToContext(context.Background(), admin),
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().Users(gomock.Any()).Return([]entity.User{admin, regular}, nil)
			},
		},
		{
			name:         "regular user",
			ctx:          entity.SetUserToContext(context.Background(), regular),
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrForbidden,
		},
		{
			name:         "anonymous",
			ctx:          context.Background(),
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := NewTestService(t)

			tt.mockBehavior(ts)

			_, err := ts.s.Users(tt.ctx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_DeleteUser(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	admin := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin}
	ctx := entity.SetUserToContext(context.Background(), admin)
	other := uuid.Must(uuid.NewV4())

	r.ErrorIs(ts.s.DeleteUser(ctx, admin.ID), entity.ErrForbidden)

	ts.repo.EXPECT().DeleteUser(gomock.Any(), other).Return(nil)
	r.NoError(ts.s.DeleteUser(ctx, other))
}
