package impl

import (
	"context"
	"testing"
	"time"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/service"
	mockRepo "mescontacts/internal/mocks/repository"
	mockSvc "mescontacts/internal/mocks/service"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service   usecase.PostUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
	qr        *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockLedgerMetrics
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	qr := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockLedgerMetrics(t)

	svc := NewPostService(PostServiceParams{
		TxManager: txManager,
		QRService: qr,
		Publisher: publisher,
		Metrics:   metrics,
		Clock:     fixedClock(testNow),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return postServiceFixtures{
		service:   svc,
		txManager: txManager,
		repos:     repos,
		qr:        qr,
		publisher: publisher,
		metrics:   metrics,
	}
}

func validPostFields() usecase.PostFields {
	userID := uuid.New()

	return usecase.PostFields{
		BusinessName: "  Plomberie Laval ",
		Category:     "plumbing",
		Phone:        "450-555-0100",
		Email:        "info@plomberie.example",
		Address:      "1 rue Principale",
		City:         "Laval",
		Province:     "QC",
		PostalCode:   "H7A 0A1",
		UserID:       &userID,
	}
}

func TestPostService_Create_StoresDraftWithInitialHistory(t *testing.T) {
	fx := createTestPostService(t)
	admin, ac := newAdmin()
	input := validPostFields()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.users.EXPECT().FindByID(mock.Anything, *input.UserID).Return(&entity.User{ID: *input.UserID}, nil)
	fx.repos.posts.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)

	var initial *entity.StatusHistory
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).
		Run(func(_ context.Context, entry *entity.StatusHistory) { initial = entry }).
		Return(nil)

	fx.metrics.EXPECT().StatusChanged((*entity.PostStatus)(nil), entity.PostStatusDraft).Return().Once()
	fx.publisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.MatchedBy(func(e *service.LifecycleEvent) bool {
			return e.NewStatus == "DRAFT" && e.PreviousStatus == "" && e.ChangedBy == admin.ID.String()
		})).
		Return(nil).Once()

	post, err := fx.service.Create(context.Background(), ac, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusDraft, post.Status)
	assert.Equal(t, "Plomberie Laval", post.BusinessName)
	assert.Equal(t, admin.ID, post.CreatedBy)
	assert.Equal(t, input.UserID, post.UserID)
	assert.Nil(t, post.OrganizationID)
	assert.Nil(t, post.PublishedAt)

	require.NotNil(t, initial)
	assert.Nil(t, initial.PreviousStatus)
	assert.Equal(t, post.ID, initial.PostID)
}

func TestPostService_Create_OwnershipMustBeExclusive(t *testing.T) {
	userID, orgID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		userID  *uuid.UUID
		orgID   *uuid.UUID
		wantErr bool
	}{
		{name: "user only", userID: &userID, wantErr: false},
		{name: "organization only", orgID: &orgID, wantErr: false},
		{name: "both owners", userID: &userID, orgID: &orgID, wantErr: true},
		{name: "no owner", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPostService(t)
			input := validPostFields()
			input.UserID, input.OrganizationID = tt.userID, tt.orgID

			if !tt.wantErr {
				admin, ac := newAdmin()
				onExecute(fx.txManager, fx.repos)
				expectCaller(fx.repos, admin)
				if tt.userID != nil {
					fx.repos.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
				} else {
					fx.repos.orgs.EXPECT().FindByID(mock.Anything, orgID).Return(&entity.Organization{ID: orgID}, nil)
				}
				fx.repos.posts.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)
				fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).Return(nil)
				fx.metrics.EXPECT().StatusChanged(mock.Anything, mock.Anything).Return()
				fx.publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(nil)

				post, err := fx.service.Create(context.Background(), ac, input)

				require.NoError(t, err)
				assert.True(t, (post.UserID == nil) != (post.OrganizationID == nil))

				return
			}

			_, err := fx.service.Create(context.Background(), entity.Anonymous(), input)

			assert.ErrorIs(t, err, domainerrors.ErrOwnershipInvalid)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestPostService_Create_PublisherFailureDoesNotFail(t *testing.T) {
	fx := createTestPostService(t)
	admin, ac := newAdmin()
	input := validPostFields()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.users.EXPECT().FindByID(mock.Anything, *input.UserID).Return(&entity.User{ID: *input.UserID}, nil)
	fx.repos.posts.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).Return(nil)
	fx.metrics.EXPECT().StatusChanged(mock.Anything, mock.Anything).Return()
	fx.publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(errors.New("topic unavailable"))

	_, err := fx.service.Create(context.Background(), ac, input)

	require.NoError(t, err)
}

func TestPostService_GetByID_Visibility(t *testing.T) {
	admin, adminAC := newAdmin()
	user, userAC := newCaller(entity.UserRoleUser)

	t.Run("published is public", func(t *testing.T) {
		fx := createTestPostService(t)
		post := postWithStatus(entity.PostStatusPublished)
		onExecute(fx.txManager, fx.repos)
		fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)

		got, err := fx.service.GetByID(context.Background(), entity.Anonymous(), post.ID)

		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("draft hidden from non-admin", func(t *testing.T) {
		fx := createTestPostService(t)
		post := newDraftPost()
		onExecute(fx.txManager, fx.repos)
		fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
		expectCaller(fx.repos, user)

		_, err := fx.service.GetByID(context.Background(), userAC, post.ID)

		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})

	t.Run("draft visible to admin", func(t *testing.T) {
		fx := createTestPostService(t)
		post := newDraftPost()
		onExecute(fx.txManager, fx.repos)
		fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
		expectCaller(fx.repos, admin)

		got, err := fx.service.GetByID(context.Background(), adminAC, post.ID)

		require.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		fx := createTestPostService(t)
		id := uuid.New()
		onExecute(fx.txManager, fx.repos)
		fx.repos.posts.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrPostNotFound)

		_, err := fx.service.GetByID(context.Background(), adminAC, id)

		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})
}

func TestPostService_GetMyPosts(t *testing.T) {
	t.Run("anonymous gets empty list", func(t *testing.T) {
		fx := createTestPostService(t)
		onExecute(fx.txManager, fx.repos)

		posts, err := fx.service.GetMyPosts(context.Background(), entity.Anonymous())

		require.NoError(t, err)
		assert.Empty(t, posts)
		assert.NotNil(t, posts)
	})

	t.Run("own and organization posts", func(t *testing.T) {
		fx := createTestPostService(t)
		user, ac := newCaller(entity.UserRoleUser)
		orgIDs := []uuid.UUID{uuid.New()}
		owned := []*entity.Post{newDraftPost(), newDraftPost()}

		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, user)
		fx.repos.orgs.EXPECT().ListOrganizationIDsByUser(mock.Anything, user.ID).Return(orgIDs, nil)
		fx.repos.posts.EXPECT().FindByOwners(mock.Anything, user.ID, orgIDs).Return(owned, nil)

		posts, err := fx.service.GetMyPosts(context.Background(), ac)

		require.NoError(t, err)
		assert.Equal(t, owned, posts)
	})
}

func TestPostService_Update_RejectsStaleVersion(t *testing.T) {
	fx := createTestPostService(t)
	admin, ac := newAdmin()
	post := newDraftPost()
	post.Version = 3
	input := usecase.UpdatePostInput{PostFields: validPostFields(), Version: 2}

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)

	_, err := fx.service.Update(context.Background(), ac, post.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
}

func TestPostService_Update_MapsRepositoryConflict(t *testing.T) {
	fx := createTestPostService(t)
	admin, ac := newAdmin()
	post := newDraftPost()
	input := usecase.UpdatePostInput{PostFields: validPostFields(), Version: post.Version}

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.users.EXPECT().FindByID(mock.Anything, *input.UserID).Return(&entity.User{ID: *input.UserID}, nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(repository.ErrVersionConflict)

	_, err := fx.service.Update(context.Background(), ac, post.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestPostService_ChangeStatus_AnyToAnyWithReason(t *testing.T) {
	fx := createTestPostService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusDisabled)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(nil)

	var logged *entity.StatusHistory
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).
		Run(func(_ context.Context, entry *entity.StatusHistory) { logged = entry }).
		Return(nil).Once()
	fx.metrics.EXPECT().StatusChanged(mock.Anything, entity.PostStatusDraft).Return().Once()
	fx.publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(nil).Once()

	got, err := fx.service.ChangeStatus(context.Background(), ac, post.ID, usecase.ChangeStatusInput{
		Status: entity.PostStatusDraft,
		Reason: "owner asked for edits",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusDraft, got.Status)
	require.NotNil(t, logged)
	assert.Equal(t, entity.PostStatusDisabled, *logged.PreviousStatus)
	assert.Equal(t, "owner asked for edits", logged.Reason)
}

func TestPostService_ChangeStatus_PublishRestartsWindow(t *testing.T) {
	fx := createTestPostService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusExpired)
	stale := testNow.Add(-24 * time.Hour)
	post.ExpiresAt = &stale

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, post).Return(nil)
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).Return(nil).Once()
	fx.metrics.EXPECT().StatusChanged(mock.Anything, entity.PostStatusPublished).Return().Once()
	fx.publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(nil).Once()

	got, err := fx.service.ChangeStatus(context.Background(), ac, post.ID, usecase.ChangeStatusInput{
		Status:       entity.PostStatusPublished,
		DurationDays: 14,
	})

	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt)
	assert.Equal(t, testNow.Add(14*24*time.Hour), *got.ExpiresAt)
	assert.False(t, got.IsPastExpiry(testNow))
}

func TestPostService_Disable_AlreadyDisabled(t *testing.T) {
	fx := createTestPostService(t)
	admin, ac := newAdmin()
	post := postWithStatus(entity.PostStatusDisabled)

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)

	_, err := fx.service.Disable(context.Background(), ac, post.ID, "")

	assert.ErrorIs(t, err, domainerrors.ErrPostAlreadyDisabled)
}

func TestPostService_Search_ProximitySortsByDistance(t *testing.T) {
	fx := createTestPostService(t)

	montreal := &entity.GeoPoint{Longitude: -73.5673, Latitude: 45.5017}
	near := postWithStatus(entity.PostStatusPublished)
	near.Geo = &entity.GeoPoint{Longitude: -73.58, Latitude: 45.51} // about 1.5 km
	nearer := postWithStatus(entity.PostStatusPublished)
	nearer.Geo = &entity.GeoPoint{Longitude: -73.568, Latitude: 45.502}
	far := postWithStatus(entity.PostStatusPublished)
	far.Geo = &entity.GeoPoint{Longitude: -71.2082, Latitude: 46.8139} // Quebec City
	noGeo := postWithStatus(entity.PostStatusPublished)

	onExecute(fx.txManager, fx.repos)
	fx.repos.posts.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f repository.PostFilter) bool {
			return f.Status != nil && *f.Status == entity.PostStatusPublished && f.Within != nil && f.Limit == 0
		})).
		Return([]*entity.Post{far, near, noGeo, nearer}, nil)

	posts, err := fx.service.Search(context.Background(), usecase.SearchPostsInput{Near: montreal, RadiusKm: 10})

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, nearer.ID, posts[0].ID)
	assert.Equal(t, near.ID, posts[1].ID)
}

func TestPostService_Search_ValidatesRadius(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.Search(context.Background(), usecase.SearchPostsInput{
		Near:     &entity.GeoPoint{Longitude: -73.5, Latitude: 45.5},
		RadiusKm: 0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPostService_Search_ClampsLimit(t *testing.T) {
	fx := createTestPostService(t)

	onExecute(fx.txManager, fx.repos)
	fx.repos.posts.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f repository.PostFilter) bool {
			return f.Limit == 100 && f.Category == "plumbing" && f.Within == nil
		})).
		Return([]*entity.Post{}, nil)

	_, err := fx.service.Search(context.Background(), usecase.SearchPostsInput{Category: " plumbing ", Limit: 5000})

	require.NoError(t, err)
}

func TestPostService_QRCode_OnlyForPublished(t *testing.T) {
	t.Run("published", func(t *testing.T) {
		fx := createTestPostService(t)
		post := postWithStatus(entity.PostStatusPublished)
		onExecute(fx.txManager, fx.repos)
		fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
		fx.qr.EXPECT().GeneratePostQR(post.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.QRCode(context.Background(), post.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("draft", func(t *testing.T) {
		fx := createTestPostService(t)
		post := newDraftPost()
		onExecute(fx.txManager, fx.repos)
		fx.repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)

		_, err := fx.service.QRCode(context.Background(), post.ID)

		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})
}

func TestPostService_ExpireDue_ExpiresEachInOwnTransaction(t *testing.T) {
	fx := createTestPostService(t)
	past := testNow.Add(-time.Hour)

	due := postWithStatus(entity.PostStatusPublished)
	due.ExpiresAt = &past
	raced := postWithStatus(entity.PostStatusPublished)
	raced.ExpiresAt = &past

	onExecute(fx.txManager, fx.repos)
	fx.repos.posts.EXPECT().FindDueForExpiry(mock.Anything, testNow, 50).Return([]*entity.Post{raced, due}, nil)
	fx.repos.posts.EXPECT().Update(mock.Anything, raced).Return(repository.ErrVersionConflict)
	fx.repos.posts.EXPECT().Update(mock.Anything, due).Return(nil)

	var logged *entity.StatusHistory
	fx.repos.history.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.StatusHistory")).
		Run(func(_ context.Context, entry *entity.StatusHistory) { logged = entry }).
		Return(nil).Once()
	fx.metrics.EXPECT().StatusChanged(mock.Anything, entity.PostStatusExpired).Return().Once()
	fx.publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(nil).Once()

	expired, err := fx.service.ExpireDue(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, entity.PostStatusExpired, due.Status)
	require.NotNil(t, logged)
	assert.Nil(t, logged.ChangedBy)
	assert.Equal(t, "Publication period ended", logged.Reason)
	fx.txManager.AssertNumberOfCalls(t, "Execute", 3)
}
