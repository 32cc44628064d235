package handler

import (
	"net/http"
	"testing"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	mockusecase "mescontacts/internal/mocks/usecase"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_Record(t *testing.T) {
	postID := uuid.New()

	t.Run("records a payment with autoPublish defaulted", func(t *testing.T) {
		paymentUC := mockusecase.NewMockPaymentUsecase(t)
		h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

		paymentUC.EXPECT().
			Record(mock.Anything, adminContext(), mock.MatchedBy(func(in usecase.RecordPaymentInput) bool {
				return in.PostID == postID && in.Amount == 4999 && in.Method == entity.PaymentMethodETransfer &&
					in.DurationDays == 30 && in.ShouldPublish()
			})).
			Return(&usecase.PaymentResult{
				Payment: &entity.Payment{ID: uuid.New(), Status: entity.PaymentStatusCompleted},
				Post:    &entity.Post{ID: postID, Status: entity.PostStatusPublished},
			}, nil)

		body := `{"postId":"` + postID.String() + `","amount":4999,"method":"E_TRANSFER","durationDays":30}`
		c, rec := newContext(http.MethodPost, "/api/v1/payments", body, adminContext())

		require.NoError(t, h.Record(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"status":"PUBLISHED"`)
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: mockusecase.NewMockPaymentUsecase(t)})

		body := `{"postId":"` + postID.String() + `","amount":100,"method":"BITCOIN","durationDays":30}`
		c, rec := newContext(http.MethodPost, "/api/v1/payments", body, adminContext())

		require.NoError(t, h.Record(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("surfaces domain rule violations", func(t *testing.T) {
		paymentUC := mockusecase.NewMockPaymentUsecase(t)
		h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

		paymentUC.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrDurationInvalid))

		body := `{"postId":"` + postID.String() + `","amount":100,"method":"CASH","durationDays":0}`
		c, rec := newContext(http.MethodPost, "/api/v1/payments", body, adminContext())

		require.NoError(t, h.Record(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DURATION_INVALID", decode(t, rec).Error.Code)
	})

	t.Run("returns internal errors to the central handler", func(t *testing.T) {
		paymentUC := mockusecase.NewMockPaymentUsecase(t)
		h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

		paymentUC.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrTransactionFailed.WrapMessage("commit"))

		body := `{"postId":"` + postID.String() + `","amount":100,"method":"CASH","durationDays":7}`
		c, _ := newContext(http.MethodPost, "/api/v1/payments", body, adminContext())

		err := h.Record(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	})
}

func TestPaymentHandler_Confirm(t *testing.T) {
	paymentUC := mockusecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

	id := uuid.New()
	paymentUC.EXPECT().ConfirmPending(mock.Anything, adminContext(), id).Return(nil, domainerrors.ErrPaymentNotPending)

	c, rec := newContext(http.MethodPost, "/", "", adminContext())
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Confirm(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PAYMENT_NOT_PENDING", decode(t, rec).Error.Code)
}

func TestPaymentHandler_Refund(t *testing.T) {
	paymentUC := mockusecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

	id := uuid.New()
	paymentUC.EXPECT().Refund(mock.Anything, adminContext(), id, "client request").
		Return(&usecase.PaymentResult{Payment: &entity.Payment{ID: id, Status: entity.PaymentStatusRefunded}}, nil)

	c, rec := newContext(http.MethodPost, "/", `{"notes":"client request"}`, adminContext())
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Refund(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_List(t *testing.T) {
	t.Run("builds the filter from query parameters", func(t *testing.T) {
		paymentUC := mockusecase.NewMockPaymentUsecase(t)
		h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

		paymentUC.EXPECT().
			List(mock.Anything, adminContext(), mock.MatchedBy(func(f repository.PaymentFilter) bool {
				return f.Status != nil && *f.Status == entity.PaymentStatusPending && f.Method == nil
			})).
			Return([]*entity.Payment{}, nil)

		c, rec := newContext(http.MethodGet, "/api/v1/payments?status=PENDING", "", adminContext())

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: mockusecase.NewMockPaymentUsecase(t)})

		c, rec := newContext(http.MethodGet, "/api/v1/payments?status=LOST", "", adminContext())

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_Export(t *testing.T) {
	paymentUC := mockusecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

	paymentUC.EXPECT().
		Export(mock.Anything, adminContext(), mock.MatchedBy(func(f repository.PaymentFilter) bool {
			return f.Status == nil && f.Method != nil && *f.Method == entity.PaymentMethodCash
		})).
		Return(&usecase.ExportResult{Key: "exports/payments-20261014T120000Z.csv", Count: 2}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/payments/export", `{"method":"CASH"}`, adminContext())

	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"key":"exports/payments-20261014T120000Z.csv","count":2}`, string(decode(t, rec).Data))
}
