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

// GeoRequest is an optional map position.
type GeoRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// PostRequest is the body of create and update. Ownership is checked by the use case.
type PostRequest struct {
	BusinessName   string      `json:"businessName" validate:"required,max=200"`
	Category       string      `json:"category" validate:"required,max=100"`
	Description    string      `json:"description" validate:"max=5000"`
	Phone          string      `json:"phone" validate:"required,max=50"`
	Email          string      `json:"email" validate:"required,email"`
	Website        string      `json:"website" validate:"omitempty,url"`
	Address        string      `json:"address" validate:"required"`
	City           string      `json:"city" validate:"required"`
	Province       string      `json:"province" validate:"required,province"`
	PostalCode     string      `json:"postalCode" validate:"required"`
	Geo            *GeoRequest `json:"geo"`
	UserID         *uuid.UUID  `json:"userId"`
	OrganizationID *uuid.UUID  `json:"organizationId"`
}

func (r PostRequest) fields() usecase.PostFields {
	fields := usecase.PostFields{
		BusinessName:   r.BusinessName,
		Category:       r.Category,
		Description:    r.Description,
		Phone:          r.Phone,
		Email:          r.Email,
		Website:        r.Website,
		Address:        r.Address,
		City:           r.City,
		Province:       r.Province,
		PostalCode:     r.PostalCode,
		UserID:         r.UserID,
		OrganizationID: r.OrganizationID,
	}
	if r.Geo != nil {
		fields.Geo = &entity.GeoPoint{Longitude: r.Geo.Longitude, Latitude: r.Geo.Latitude}
	}

	return fields
}

// UpdatePostRequest carries the version the client read.
type UpdatePostRequest struct {
	PostRequest
	Version int `json:"version" validate:"min=1"`
}

// ChangeStatusRequest is the admin status selector.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT PUBLISHED EXPIRED DISABLED"`
	Reason string `json:"reason" validate:"max=500"`
	// DurationDays restarts the publication window when publishing.
	DurationDays int `json:"durationDays" validate:"omitempty,min=1"`
}

// DisablePostRequest carries an optional reason.
type DisablePostRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
}

// PostHandler serves listing endpoints.
type PostHandler struct {
	postUC usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{postUC: params.PostUC}
}

// Create stores a new DRAFT listing.
func (h *PostHandler) Create(c echo.Context) error {
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	post, err := h.postUC.Create(c.Request().Context(), deliverycontext.GetAuthContext(c), req.fields())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// Mine lists the caller's own listings.
func (h *PostHandler) Mine(c echo.Context) error {
	posts, err := h.postUC.GetMyPosts(c.Request().Context(), deliverycontext.GetAuthContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// Search lists published listings of the public directory.
func (h *PostHandler) Search(c echo.Context) error {
	var (
		input    usecase.SearchPostsInput
		lon, lat float64
	)

	err := echo.QueryParamsBinder(c).
		String("category", &input.Category).
		String("province", &input.Province).
		String("city", &input.City).
		Float64("lon", &lon).
		Float64("lat", &lat).
		Float64("radiusKm", &input.RadiusKm).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		BindError()
	if err != nil {
		return response.BindingError(c, "Invalid search parameters")
	}

	hasLon, hasLat := c.QueryParam("lon") != "", c.QueryParam("lat") != ""
	if hasLon != hasLat {
		return response.BadRequest(c, "INVALID_INPUT", "lon and lat must be given together")
	}
	if hasLon {
		input.Near = &entity.GeoPoint{Longitude: lon, Latitude: lat}
	}

	posts, err := h.postUC.Search(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// Get returns one listing.
func (h *PostHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	post, err := h.postUC.GetByID(c.Request().Context(), deliverycontext.GetAuthContext(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// Update replaces the listing fields.
func (h *PostHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	post, err := h.postUC.Update(c.Request().Context(), deliverycontext.GetAuthContext(c), id, usecase.UpdatePostInput{
		PostFields: req.fields(),
		Version:    req.Version,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// Delete removes a listing.
func (h *PostHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	if err := h.postUC.Delete(c.Request().Context(), deliverycontext.GetAuthContext(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeStatus sets the listing status directly.
func (h *PostHandler) ChangeStatus(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	post, err := h.postUC.ChangeStatus(c.Request().Context(), deliverycontext.GetAuthContext(c), id, usecase.ChangeStatusInput{
		Status:       entity.PostStatus(req.Status),
		Reason:       req.Reason,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// Disable takes a listing offline.
func (h *PostHandler) Disable(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	var req DisablePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	post, err := h.postUC.Disable(c.Request().Context(), deliverycontext.GetAuthContext(c), id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// QRCode returns the PNG QR code pointing at the public listing page.
func (h *PostHandler) QRCode(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	png, err := h.postUC.QRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
