package handler

import (
	"net/http"
	"strconv"

	"mescontacts/internal/delivery/api/response"
	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.StatusHistoryUsecase
}

// HistoryHandler serves the listing audit trail.
type HistoryHandler struct {
	historyUC usecase.StatusHistoryUsecase
}

// NewHistoryHandler is the constructor for HistoryHandler.
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{historyUC: params.HistoryUC}
}

// ListByPost returns the transitions of one listing, oldest first.
func (h *HistoryHandler) ListByPost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	history, err := h.historyUC.GetByPost(c.Request().Context(), deliverycontext.GetAuthContext(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// Recent returns the latest transitions across all listings.
func (h *HistoryHandler) Recent(c echo.Context) error {
	limit := usecase.DefaultRecentHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		limit = parsed
	}

	history, err := h.historyUC.GetRecent(c.Request().Context(), deliverycontext.GetAuthContext(c), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}
