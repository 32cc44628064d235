package handler

import (
	"net/http"

	"mescontacts/internal/delivery/api/response"
	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CreateOrganizationRequest creates an organization with its first owner.
type CreateOrganizationRequest struct {
	Name       string    `json:"name" validate:"required,max=200"`
	OwnerID    uuid.UUID `json:"ownerId" validate:"required"`
	Email      string    `json:"email" validate:"omitempty,email"`
	Phone      string    `json:"phone" validate:"max=50"`
	Website    string    `json:"website" validate:"omitempty,url"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Province   string    `json:"province" validate:"omitempty,province"`
	PostalCode string    `json:"postalCode"`
	Sector     string    `json:"sector"`
	Logo       string    `json:"logo" validate:"omitempty,url"`
}

// AddMemberRequest adds a user to an organization.
type AddMemberRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=OWNER MEMBER"`
}

// UpdateMemberRoleRequest changes a member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=OWNER MEMBER"`
}

// OrganizationHandlerParams holds dependencies for OrganizationHandler, injected by Fx.
type OrganizationHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
}

// OrganizationHandler serves organizations and their membership.
type OrganizationHandler struct {
	organizationUC usecase.OrganizationUsecase
}

// NewOrganizationHandler is the constructor for OrganizationHandler.
func NewOrganizationHandler(params OrganizationHandlerParams) *OrganizationHandler {
	return &OrganizationHandler{organizationUC: params.OrganizationUC}
}

// Create stores an organization.
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	org, err := h.organizationUC.Create(c.Request().Context(), deliverycontext.GetAuthContext(c), usecase.CreateOrganizationInput{
		Name:       req.Name,
		OwnerID:    req.OwnerID,
		Email:      req.Email,
		Phone:      req.Phone,
		Website:    req.Website,
		Address:    req.Address,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Sector:     req.Sector,
		Logo:       req.Logo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, org)
}

// List returns all organizations.
func (h *OrganizationHandler) List(c echo.Context) error {
	orgs, err := h.organizationUC.List(c.Request().Context(), deliverycontext.GetAuthContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orgs)
}

// Get returns one organization.
func (h *OrganizationHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "organization")
	}

	org, err := h.organizationUC.Get(c.Request().Context(), deliverycontext.GetAuthContext(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, org)
}

// ListMembers returns the members of an organization.
func (h *OrganizationHandler) ListMembers(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "organization")
	}

	members, err := h.organizationUC.ListMembers(c.Request().Context(), deliverycontext.GetAuthContext(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members)
}

// AddMember adds a user to an organization.
func (h *OrganizationHandler) AddMember(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "organization")
	}

	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	member, err := h.organizationUC.AddMember(c.Request().Context(), deliverycontext.GetAuthContext(c), id, req.UserID, entity.MemberRole(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member)
}

// UpdateMemberRole changes a member's role.
func (h *OrganizationHandler) UpdateMemberRole(c echo.Context) error {
	orgID, userID, ok := memberPath(c)
	if !ok {
		return invalidID(c, "member")
	}

	var req UpdateMemberRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	member, err := h.organizationUC.UpdateMemberRole(c.Request().Context(), deliverycontext.GetAuthContext(c), orgID, userID, entity.MemberRole(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member)
}

// RemoveMember removes a user from an organization.
func (h *OrganizationHandler) RemoveMember(c echo.Context) error {
	orgID, userID, ok := memberPath(c)
	if !ok {
		return invalidID(c, "member")
	}

	if err := h.organizationUC.RemoveMember(c.Request().Context(), deliverycontext.GetAuthContext(c), orgID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func memberPath(c echo.Context) (uuid.UUID, uuid.UUID, bool) {
	orgID, ok := parseID(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	return orgID, userID, true
}
