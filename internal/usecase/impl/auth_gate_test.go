package impl

import (
	"context"
	"testing"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	mockRepo "mescontacts/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthGate(t *testing.T) {
	admin, adminAC := newAdmin()
	user, userAC := newCaller(entity.UserRoleUser)

	setup := func(t *testing.T) (*authGate, *repoMocks) {
		txManager := mockRepo.NewMockTransactionManager(t)
		repos := newRepoMocks(t)
		onExecute(txManager, repos)

		return NewAuthGate(txManager, newDiscardLogger()).(*authGate), repos
	}

	t.Run("current user is nil when anonymous", func(t *testing.T) {
		gate, _ := setup(t)

		got, err := gate.CurrentUser(context.Background(), entity.Anonymous())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("current user is nil before first sync", func(t *testing.T) {
		gate, repos := setup(t)
		repos.users.EXPECT().FindByTokenIdentifier(mock.Anything, user.TokenIdentifier).Return(nil, repository.ErrUserNotFound)

		got, err := gate.CurrentUser(context.Background(), userAC)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("require auth fails for anonymous", func(t *testing.T) {
		gate, _ := setup(t)

		_, err := gate.RequireAuth(context.Background(), entity.Anonymous())

		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
		assert.Equal(t, "Authentication required", err.Error())
	})

	t.Run("require admin rejects users", func(t *testing.T) {
		gate, repos := setup(t)
		expectCaller(repos, user)

		_, err := gate.RequireAdmin(context.Background(), userAC)

		assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
		assert.Equal(t, "Admin access only", err.Error())
	})

	t.Run("require admin returns admins", func(t *testing.T) {
		gate, repos := setup(t)
		expectCaller(repos, admin)

		got, err := gate.RequireAdmin(context.Background(), adminAC)

		require.NoError(t, err)
		assert.Equal(t, admin.ID, got.ID)
	})

	t.Run("is admin swallows lookup errors", func(t *testing.T) {
		gate, repos := setup(t)
		repos.users.EXPECT().FindByTokenIdentifier(mock.Anything, admin.TokenIdentifier).Return(nil, errors.New("connection reset"))

		assert.False(t, gate.IsAdmin(context.Background(), adminAC))
	})

	t.Run("is admin for admins", func(t *testing.T) {
		gate, repos := setup(t)
		expectCaller(repos, admin)

		assert.True(t, gate.IsAdmin(context.Background(), adminAC))
	})
}
