package handler

import (
	"net/http"
	"testing"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	mockusecase "mescontacts/internal/mocks/usecase"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Sync(t *testing.T) {
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC})

	userUC.EXPECT().
		Sync(mock.Anything, adminContext(), usecase.SyncUserInput{Name: "Marie Tremblay", Email: "marie@example.ca"}).
		Return(&entity.User{ID: uuid.New(), Name: "Marie Tremblay", Role: entity.UserRoleUser}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/users/sync", `{"name":"Marie Tremblay","email":"marie@example.ca"}`, adminContext())

	require.NoError(t, h.Sync(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"role":"USER"`)
}

func TestUserHandler_Me(t *testing.T) {
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC})

	userUC.EXPECT().Me(mock.Anything, entity.Anonymous()).Return(nil, domainerrors.ErrAuthenticationRequired)

	c, rec := newContext(http.MethodGet, "/api/v1/users/me", "", entity.Anonymous())

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_SetRole(t *testing.T) {
	t.Run("assigns the role", func(t *testing.T) {
		userUC := mockusecase.NewMockUserUsecase(t)
		h := NewUserHandler(UserHandlerParams{UserUC: userUC})

		id := uuid.New()
		userUC.EXPECT().SetRole(mock.Anything, adminContext(), id, entity.UserRoleAdmin).
			Return(&entity.User{ID: id, Role: entity.UserRoleAdmin}, nil)

		c, rec := newContext(http.MethodPut, "/", `{"role":"ADMIN"}`, adminContext())
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.SetRole(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		h := NewUserHandler(UserHandlerParams{UserUC: mockusecase.NewMockUserUsecase(t)})

		c, rec := newContext(http.MethodPut, "/", `{"role":"ROOT"}`, adminContext())
		c.SetParamNames("id")
		c.SetParamValues(uuid.NewString())

		require.NoError(t, h.SetRole(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Session(t *testing.T) {
	t.Run("anonymous callers get an empty session", func(t *testing.T) {
		gate := mockusecase.NewMockAuthGate(t)
		h := NewUserHandler(UserHandlerParams{UserUC: mockusecase.NewMockUserUsecase(t), AuthGate: gate})

		gate.EXPECT().CurrentUser(mock.Anything, entity.Anonymous()).Return(nil, nil)

		c, rec := newContext(http.MethodGet, "/api/v1/users/session", "", entity.Anonymous())

		require.NoError(t, h.Session(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":null,"isAdmin":false}`, string(decode(t, rec).Data))
	})

	t.Run("reports admins", func(t *testing.T) {
		gate := mockusecase.NewMockAuthGate(t)
		h := NewUserHandler(UserHandlerParams{UserUC: mockusecase.NewMockUserUsecase(t), AuthGate: gate})

		gate.EXPECT().CurrentUser(mock.Anything, adminContext()).
			Return(&entity.User{ID: uuid.New(), Role: entity.UserRoleAdmin}, nil)

		c, rec := newContext(http.MethodGet, "/api/v1/users/session", "", adminContext())

		require.NoError(t, h.Session(c))
		assert.Contains(t, string(decode(t, rec).Data), `"isAdmin":true`)
	})
}
