package handler

import (
	"net/http"
	"time"

	"mescontacts/internal/delivery/api/response"
	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecordPaymentRequest records a payment against a listing. Amount is in cents.
type RecordPaymentRequest struct {
	PostID            uuid.UUID  `json:"postId" validate:"required"`
	Amount            int64      `json:"amount"`
	Method            string     `json:"method" validate:"required,oneof=CASH E_TRANSFER VIREMENT CARD OTHER"`
	DurationDays      int        `json:"durationDays"`
	Notes             string     `json:"notes" validate:"max=2000"`
	ExternalReference string     `json:"externalReference" validate:"max=200"`
	PaymentDate       *time.Time `json:"paymentDate"`
	AutoPublish       *bool      `json:"autoPublish"`
}

func (r RecordPaymentRequest) input() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		PostID:            r.PostID,
		Amount:            r.Amount,
		Method:            entity.PaymentMethod(r.Method),
		DurationDays:      r.DurationDays,
		Notes:             r.Notes,
		ExternalReference: r.ExternalReference,
		PaymentDate:       r.PaymentDate,
		AutoPublish:       r.AutoPublish,
	}
}

// RenewPostRequest renews an expired or disabled listing.
type RenewPostRequest struct {
	PostID       uuid.UUID `json:"postId" validate:"required"`
	Amount       int64     `json:"amount"`
	Method       string    `json:"method" validate:"required,oneof=CASH E_TRANSFER VIREMENT CARD OTHER"`
	DurationDays int       `json:"durationDays"`
	Notes        string    `json:"notes" validate:"max=2000"`
}

// RefundRequest carries the refund note.
type RefundRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// PaymentFilterRequest narrows ledger listings and exports.
type PaymentFilterRequest struct {
	Status string `json:"status" query:"status" validate:"omitempty,oneof=PENDING COMPLETED REFUNDED"`
	Method string `json:"method" query:"method" validate:"omitempty,oneof=CASH E_TRANSFER VIREMENT CARD OTHER"`
}

func (r PaymentFilterRequest) filter() repository.PaymentFilter {
	var filter repository.PaymentFilter
	if r.Status != "" {
		status := entity.PaymentStatus(r.Status)
		filter.Status = &status
	}
	if r.Method != "" {
		method := entity.PaymentMethod(r.Method)
		filter.Method = &method
	}

	return filter
}

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
}

// PaymentHandler serves the payment ledger.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{paymentUC: params.PaymentUC}
}

// Record stores a completed payment and publishes the listing unless autoPublish is false.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.paymentUC.Record(c.Request().Context(), deliverycontext.GetAuthContext(c), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// RecordPending stores a payment awaiting confirmation.
func (h *PaymentHandler) RecordPending(c echo.Context) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.paymentUC.RecordPending(c.Request().Context(), deliverycontext.GetAuthContext(c), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// Confirm completes a pending payment and publishes its listing.
func (h *PaymentHandler) Confirm(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "payment")
	}

	result, err := h.paymentUC.ConfirmPending(c.Request().Context(), deliverycontext.GetAuthContext(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Refund marks a completed payment refunded and disables its listing.
func (h *PaymentHandler) Refund(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "payment")
	}

	var req RefundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.paymentUC.Refund(c.Request().Context(), deliverycontext.GetAuthContext(c), id, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Renew records a renewal payment and republishes the listing.
func (h *PaymentHandler) Renew(c echo.Context) error {
	var req RenewPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.paymentUC.Renew(c.Request().Context(), deliverycontext.GetAuthContext(c), usecase.RenewPostInput{
		PostID:       req.PostID,
		Amount:       req.Amount,
		Method:       entity.PaymentMethod(req.Method),
		DurationDays: req.DurationDays,
		Notes:        req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// List returns ledger entries, newest first.
func (h *PaymentHandler) List(c echo.Context) error {
	req := PaymentFilterRequest{
		Status: c.QueryParam("status"),
		Method: c.QueryParam("method"),
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	payments, err := h.paymentUC.List(c.Request().Context(), deliverycontext.GetAuthContext(c), req.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments)
}

// ListByPost returns the payments of one listing.
func (h *PaymentHandler) ListByPost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	payments, err := h.paymentUC.GetByPost(c.Request().Context(), deliverycontext.GetAuthContext(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments)
}

// Stats returns ledger totals.
func (h *PaymentHandler) Stats(c echo.Context) error {
	stats, err := h.paymentUC.GetStats(c.Request().Context(), deliverycontext.GetAuthContext(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Export writes matching ledger entries to blob storage as CSV.
func (h *PaymentHandler) Export(c echo.Context) error {
	var req PaymentFilterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.paymentUC.Export(c.Request().Context(), deliverycontext.GetAuthContext(c), req.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
