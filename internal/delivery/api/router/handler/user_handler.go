package handler

import (
	"net/http"

	"mescontacts/internal/delivery/api/response"
	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	"mescontacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncUserRequest carries the profile shown by the identity provider.
type SyncUserRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Image string `json:"image" validate:"omitempty,url"`
}

// SetRoleRequest assigns a platform role.
type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN USER"`
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC   usecase.UserUsecase
	AuthGate usecase.AuthGate
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userUC   usecase.UserUsecase
	authGate usecase.AuthGate
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC, authGate: params.AuthGate}
}

// SessionResponse tells clients who they are signed in as. User is null for anonymous callers
// and for callers who have not synced yet.
type SessionResponse struct {
	User    *entity.User `json:"user"`
	IsAdmin bool         `json:"isAdmin"`
}

// Session resolves the caller without requiring authentication.
func (h *UserHandler) Session(c echo.Context) error {
	ctx := c.Request().Context()
	ac := deliverycontext.GetAuthContext(c)

	user, err := h.authGate.CurrentUser(ctx, ac)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{User: user, IsAdmin: user.IsAdmin()})
}

// Sync creates or refreshes the caller's user.
func (h *UserHandler) Sync(c echo.Context) error {
	var req SyncUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.userUC.Sync(c.Request().Context(), deliverycontext.GetAuthContext(c), usecase.SyncUserInput{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Me returns the caller's user.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.userUC.Me(c.Request().Context(), deliverycontext.GetAuthContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SetRole changes a user's platform role.
func (h *UserHandler) SetRole(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "user")
	}

	var req SetRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.userUC.SetRole(c.Request().Context(), deliverycontext.GetAuthContext(c), id, entity.UserRole(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
