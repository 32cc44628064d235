package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mescontacts/config"
	"mescontacts/internal/domain/entity"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/service"
	mockRepo "mescontacts/internal/mocks/repository"
	mockSvc "mescontacts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(now time.Time) service.Clock {
	return func() time.Time { return now }
}

func newTestConfig() *config.Config {
	return &config.Config{
		Listing: &config.ListingConfig{
			SweepInterval:      time.Minute,
			SweepBatch:         50,
			SearchDefaultLimit: 20,
			SearchMaxLimit:     100,
			MaxSearchRadiusKm:  200,
		},
	}
}

// repoMocks bundles the repositories handed out by a mocked transaction.
type repoMocks struct {
	factory  *mockRepo.MockRepositoryFactory
	users    *mockRepo.MockUserRepository
	orgs     *mockRepo.MockOrganizationRepository
	posts    *mockRepo.MockPostRepository
	payments *mockRepo.MockPaymentRepository
	history  *mockRepo.MockStatusHistoryRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	repos := &repoMocks{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		users:    mockRepo.NewMockUserRepository(t),
		orgs:     mockRepo.NewMockOrganizationRepository(t),
		posts:    mockRepo.NewMockPostRepository(t),
		payments: mockRepo.NewMockPaymentRepository(t),
		history:  mockRepo.NewMockStatusHistoryRepository(t),
	}

	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().OrganizationRepo().Return(repos.orgs).Maybe()
	repos.factory.EXPECT().PostRepo().Return(repos.posts).Maybe()
	repos.factory.EXPECT().PaymentRepo().Return(repos.payments).Maybe()
	repos.factory.EXPECT().StatusHistoryRepo().Return(repos.history).Maybe()

	return repos
}

// onExecute runs every transaction callback against repos and returns its error, like a real rollback would.
func onExecute(txManager *mockRepo.MockTransactionManager, repos *repoMocks) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

func newAdmin() (*entity.User, entity.AuthContext) {
	return newCaller(entity.UserRoleAdmin)
}

func newCaller(role entity.UserRole) (*entity.User, entity.AuthContext) {
	user := &entity.User{
		ID:              uuid.New(),
		Name:            "Caller",
		Email:           "caller@example.com",
		TokenIdentifier: "https://issuer.example|" + uuid.NewString(),
		Role:            role,
	}

	return user, entity.Authenticated(&entity.Identity{TokenIdentifier: user.TokenIdentifier})
}

func expectCaller(repos *repoMocks, user *entity.User) {
	repos.users.EXPECT().FindByTokenIdentifier(mock.Anything, user.TokenIdentifier).Return(user, nil)
}

// quietEffects returns post-commit collaborators that accept any call.
func quietEffects(t *testing.T) (*mockSvc.MockEventPublisher, *mockSvc.MockLedgerMetrics) {
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockLedgerMetrics(t)

	publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	metrics.EXPECT().StatusChanged(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().PaymentRecorded(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().PaymentRefunded(mock.Anything, mock.Anything).Return().Maybe()

	return publisher, metrics
}

func newDraftPost() *entity.Post {
	userID := uuid.New()

	return &entity.Post{
		ID:           uuid.New(),
		BusinessName: "Plomberie Laval",
		Category:     "plumbing",
		Phone:        "450-555-0100",
		Email:        "info@plomberie.example",
		Address:      "1 rue Principale",
		City:         "Laval",
		Province:     "QC",
		PostalCode:   "H7A 0A1",
		Status:       entity.PostStatusDraft,
		UserID:       &userID,
		Version:      1,
	}
}

func postWithStatus(status entity.PostStatus) *entity.Post {
	post := newDraftPost()
	post.Status = status

	return post
}
