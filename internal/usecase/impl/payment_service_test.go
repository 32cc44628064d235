package impl

import (
	"context"
	"testing"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/validation"
	mockRepo "mescontacts/internal/mocks/repository"
	mockSvc "mescontacts/internal/mocks/service"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
	cache     *mockSvc.MockStatsCache
	exporter  *mockSvc.MockLedgerExporter
	publisher *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	cache := mockSvc.NewMockStatsCache(t)
	exporter := mockSvc.NewMockLedgerExporter(t)
	publisher, metrics := quietEffects(t)

	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Maybe()

	service := NewPaymentService(PaymentServiceParams{
		TxManager:  txManager,
		StatsCache: cache,
		Exporter:   exporter,
		Publisher:  publisher,
		Metrics:    metrics,
		Clock:      fixedClock(testNow),
		Logger:     newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:   service,
		txManager: txManager,
		repos:     repos,
		cache:     cache,
		exporter:  exporter,
		publisher: publisher,
	}
}

func TestPaymentService_Record_PublishesDraftPost(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	admin, ac := newAdmin()
	post := newDraftPost()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.payments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(nil)

	var logged []*entity.StatusHistory
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).
		Run(func(_ context.Context, entry *entity.StatusHistory) { logged = append(logged, entry) }).
		Return(nil).Once()

	result, err := fx.service.Record(ctx, ac, usecase.RecordPaymentInput{
		PostID:       post.ID,
		Amount:       5000,
		Method:       entity.PaymentMethodETransfer,
		DurationDays: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, result.Payment.Status)
	assert.Equal(t, admin.ID, result.Payment.RecordedBy)
	assert.Equal(t, entity.PostStatusPublished, result.Post.Status)
	require.NotNil(t, result.Post.PublishedAt)
	assert.Equal(t, testNow, *result.Post.PublishedAt)
	assert.Equal(t, validation.CalculateExpiresAt(testNow, 30), *result.Post.ExpiresAt)

	require.Len(t, logged, 1)
	assert.Equal(t, entity.PostStatusDraft, *logged[0].PreviousStatus)
	assert.Equal(t, entity.PostStatusPublished, logged[0].NewStatus)
	assert.Equal(t, admin.ID, *logged[0].ChangedBy)
}

func TestPaymentService_Record_WithoutAutoPublishLeavesPost(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	admin, ac := newAdmin()
	post := newDraftPost()
	autoPublish := false

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.payments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	result, err := fx.service.Record(ctx, ac, usecase.RecordPaymentInput{
		PostID:       post.ID,
		Amount:       5000,
		Method:       entity.PaymentMethodCash,
		DurationDays: 30,
		AutoPublish:  &autoPublish,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, result.Payment.Status)
	assert.Equal(t, entity.PostStatusDraft, result.Post.Status)
	fx.repos.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestPaymentService_Record_RejectsInvalidTermsBeforeWriting(t *testing.T) {
	fx := createTestPaymentService(t)
	_, ac := newAdmin()

	tests := []struct {
		name  string
		input usecase.RecordPaymentInput
		want  error
	}{
		{
			name:  "zero duration",
			input: usecase.RecordPaymentInput{PostID: uuid.New(), Amount: 100, Method: entity.PaymentMethodCash, DurationDays: 0},
			want:  domainerrors.ErrDurationInvalid,
		},
		{
			name:  "negative amount",
			input: usecase.RecordPaymentInput{PostID: uuid.New(), Amount: -1, Method: entity.PaymentMethodCash, DurationDays: 30},
			want:  domainerrors.ErrAmountInvalid,
		},
		{
			name:  "unknown method",
			input: usecase.RecordPaymentInput{PostID: uuid.New(), Amount: 100, Method: "BITCOIN", DurationDays: 30},
			want:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Record(context.Background(), ac, tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPaymentService_Record_Authorization(t *testing.T) {
	user, userAC := newCaller(entity.UserRoleUser)
	input := usecase.RecordPaymentInput{PostID: uuid.New(), Amount: 100, Method: entity.PaymentMethodCash, DurationDays: 30}

	t.Run("anonymous caller", func(t *testing.T) {
		fx := createTestPaymentService(t)
		onExecute(fx.txManager, fx.repos)

		_, err := fx.service.Record(context.Background(), entity.Anonymous(), input)

		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
		assert.Equal(t, domainerrors.KindAuthentication, domainerrors.KindOf(err))
	})

	t.Run("signed in but never synced", func(t *testing.T) {
		fx := createTestPaymentService(t)
		onExecute(fx.txManager, fx.repos)
		fx.repos.users.EXPECT().FindByTokenIdentifier(mock.Anything, user.TokenIdentifier).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Record(context.Background(), userAC, input)

		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	})

	t.Run("non-admin caller", func(t *testing.T) {
		fx := createTestPaymentService(t)
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, user)

		_, err := fx.service.Record(context.Background(), userAC, input)

		assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
		assert.Equal(t, domainerrors.KindAuthorization, domainerrors.KindOf(err))
	})
}

func TestPaymentService_Record_PublishFailureRollsBack(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusExpired)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.payments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	_, err := fx.service.Record(context.Background(), ac, usecase.RecordPaymentInput{
		PostID: post.ID, Amount: 100, Method: entity.PaymentMethodCash, DurationDays: 30,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPostNotDraft)
	fx.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestPaymentService_RecordPending_NeverPublishes(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	post := newDraftPost()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.payments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	result, err := fx.service.RecordPending(context.Background(), ac, usecase.RecordPaymentInput{
		PostID: post.ID, Amount: 3000, Method: entity.PaymentMethodVirement, DurationDays: 14,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, result.Payment.Status)
	assert.Equal(t, entity.PostStatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
}

func TestPaymentService_ConfirmPending_PublishesDraft(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	post := newDraftPost()
	payment := newPayment(post.ID, 3000, entity.PaymentMethodCash, 14, entity.PaymentStatusPending, admin.ID, testNow)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)
	fx.repos.payments.EXPECT().Update(mock.Anything, payment).Return(nil)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(nil)
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).Return(nil).Once()

	result, err := fx.service.ConfirmPending(context.Background(), ac, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, result.Payment.Status)
	assert.True(t, result.Payment.HasEvent(entity.PaymentEventConfirmed))
	assert.Equal(t, entity.PostStatusPublished, result.Post.Status)
	assert.Equal(t, validation.CalculateExpiresAt(testNow, 14), *result.Post.ExpiresAt)
}

func TestPaymentService_ConfirmPending_RenewsExpiredPost(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusExpired)
	payment := newPayment(post.ID, 3000, entity.PaymentMethodCash, 7, entity.PaymentStatusPending, admin.ID, testNow)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)
	fx.repos.payments.EXPECT().Update(mock.Anything, payment).Return(nil)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(nil)
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).Return(nil).Once()

	result, err := fx.service.ConfirmPending(context.Background(), ac, payment.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusPublished, result.Post.Status)
}

func TestPaymentService_ConfirmPending_RejectsNonPending(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	payment := newPayment(uuid.New(), 3000, entity.PaymentMethodCash, 7, entity.PaymentStatusCompleted, admin.ID, testNow)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)

	_, err := fx.service.ConfirmPending(context.Background(), ac, payment.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotPending)
	assert.Equal(t, "This payment is not pending", err.Error())
	assert.Equal(t, domainerrors.KindState, domainerrors.KindOf(err))
}

func TestPaymentService_ConfirmPending_MapsVersionConflict(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	payment := newPayment(uuid.New(), 3000, entity.PaymentMethodCash, 7, entity.PaymentStatusPending, admin.ID, testNow)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)
	fx.repos.payments.EXPECT().Update(mock.Anything, payment).Return(repository.ErrVersionConflict)

	_, err := fx.service.ConfirmPending(context.Background(), ac, payment.ID)

	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestPaymentService_ConfirmPending_NotFound(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	paymentID := uuid.New()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().FindByID(mock.Anything, paymentID).Return(nil, repository.ErrPaymentNotFound)

	_, err := fx.service.ConfirmPending(context.Background(), ac, paymentID)

	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_Refund_DisablesPost(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusPublished)
	payment := newPayment(post.ID, 5000, entity.PaymentMethodCard, 30, entity.PaymentStatusCompleted, admin.ID, testNow)
	payment.Notes = "paid at desk"

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)
	fx.repos.payments.EXPECT().Update(mock.Anything, payment).Return(nil)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(nil)
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).Return(nil).Once()

	result, err := fx.service.Refund(context.Background(), ac, payment.ID, "customer cancelled")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, result.Payment.Status)
	assert.Equal(t, "[REFUNDED] customer cancelled | paid at desk", result.Payment.DisplayNotes())
	assert.Equal(t, entity.PostStatusDisabled, result.Post.Status)
}

func TestPaymentService_Refund_AlreadyDisabledPostKeepsHistory(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusDisabled)
	payment := newPayment(post.ID, 5000, entity.PaymentMethodCard, 30, entity.PaymentStatusCompleted, admin.ID, testNow)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)
	fx.repos.payments.EXPECT().Update(mock.Anything, payment).Return(nil)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)

	result, err := fx.service.Refund(context.Background(), ac, payment.ID, "")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, result.Payment.Status)
	fx.repos.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestPaymentService_Refund_RejectsNonCompleted(t *testing.T) {
	for _, status := range []entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusRefunded} {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestPaymentService(t)
			admin, ac := newAdmin()
			payment := newPayment(uuid.New(), 5000, entity.PaymentMethodCard, 30, status, admin.ID, testNow)

			onExecute(fx.txManager, fx.repos)
			expectCaller(fx.repos, admin)
			fx.repos.payments.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)

			_, err := fx.service.Refund(context.Background(), ac, payment.ID, "")

			assert.ErrorIs(t, err, domainerrors.ErrPaymentNotCompleted)
			assert.Equal(t, "Only completed payments can be refunded", err.Error())
		})
	}
}

func TestPaymentService_Renew_RepublishesExpiredPost(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusExpired)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.payments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(nil)
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).Return(nil).Once()

	result, err := fx.service.Renew(context.Background(), ac, usecase.RenewPostInput{
		PostID: post.ID, Amount: 2500, Method: entity.PaymentMethodETransfer, DurationDays: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, result.Payment.Status)
	assert.True(t, result.Payment.HasEvent(entity.PaymentEventRenewal))
	assert.Equal(t, "[RENEWAL]", result.Payment.DisplayNotes())
	assert.Equal(t, entity.PostStatusPublished, result.Post.Status)
	assert.Equal(t, validation.CalculateExpiresAt(testNow, 60), *result.Post.ExpiresAt)
}

func TestPaymentService_Renew_RejectsRenewablePostsOnly(t *testing.T) {
	for _, status := range []entity.PostStatus{entity.PostStatusDraft, entity.PostStatusPublished} {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestPaymentService(t)
			admin, ac := newAdmin()
			post := postWithStatus(status)

			onExecute(fx.txManager, fx.repos)
			expectCaller(fx.repos, admin)
			fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)

			_, err := fx.service.Renew(context.Background(), ac, usecase.RenewPostInput{
				PostID: post.ID, Amount: 2500, Method: entity.PaymentMethodCash, DurationDays: 30,
			})

			assert.ErrorIs(t, err, domainerrors.ErrPostNotRenewable)
			assert.Equal(t, "Only expired or disabled posts can be renewed", err.Error())
			fx.repos.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPaymentService_GetStats_AggregatesOnCacheMiss(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	postID := uuid.New()
	payments := []*entity.Payment{
		newPayment(postID, 5000, entity.PaymentMethodCash, 30, entity.PaymentStatusCompleted, admin.ID, testNow),
		newPayment(postID, 3000, entity.PaymentMethodCard, 30, entity.PaymentStatusCompleted, admin.ID, testNow),
		newPayment(postID, 2000, entity.PaymentMethodCash, 30, entity.PaymentStatusPending, admin.ID, testNow),
	}

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.cache.EXPECT().Get(mock.Anything).Return(nil, false, nil)
	fx.repos.payments.EXPECT().List(mock.Anything, repository.PaymentFilter{}).Return(payments, nil)
	fx.cache.EXPECT().Set(mock.Anything, mock.AnythingOfType("*entity.PaymentStats")).Return(nil)

	stats, err := fx.service.GetStats(context.Background(), ac)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 2, stats.CompletedCount)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, int64(8000), stats.TotalRevenue)
	assert.Equal(t, int64(2000), stats.PendingAmount)
	assert.Equal(t, int64(5000), stats.ByMethod[entity.PaymentMethodCash])
	assert.Equal(t, int64(3000), stats.ByMethod[entity.PaymentMethodCard])
	assert.Equal(t, int64(0), stats.ByMethod[entity.PaymentMethodOther])
}

func TestPaymentService_GetStats_ServesCacheHit(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	cached := &entity.PaymentStats{TotalCount: 9}

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.cache.EXPECT().Get(mock.Anything).Return(cached, true, nil)

	stats, err := fx.service.GetStats(context.Background(), ac)

	require.NoError(t, err)
	assert.Same(t, cached, stats)
	fx.repos.payments.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestPaymentService_Export_WritesFilteredLedger(t *testing.T) {
	fx := createTestPaymentService(t)
	admin, ac := newAdmin()
	completed := entity.PaymentStatusCompleted
	filter := repository.PaymentFilter{Status: &completed}
	payments := []*entity.Payment{
		newPayment(uuid.New(), 5000, entity.PaymentMethodCash, 30, completed, admin.ID, testNow),
	}

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.payments.EXPECT().List(mock.Anything, filter).Return(payments, nil)
	fx.exporter.EXPECT().Export(mock.Anything, payments).Return("ledger/20260301T100000Z.csv", nil)

	result, err := fx.service.Export(context.Background(), ac, filter)

	require.NoError(t, err)
	assert.Equal(t, "ledger/20260301T100000Z.csv", result.Key)
	assert.Equal(t, 1, result.Count)
}

func TestPaymentService_List_RejectsUnknownFilter(t *testing.T) {
	fx := createTestPaymentService(t)
	_, ac := newAdmin()
	status := entity.PaymentStatus("LOST")

	_, err := fx.service.List(context.Background(), ac, repository.PaymentFilter{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
