package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/service"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sync creates the caller's user row on first sign-in and refreshes profile fields afterwards.
func (srv *userService) Sync(ctx context.Context, ac entity.AuthContext, input usecase.SyncUserInput) (*entity.User, error) {
	if !ac.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	identity := ac.Identity
	now := srv.clock()

	var synced *entity.User
	created := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByTokenIdentifier(ctx, identity.TokenIdentifier)
		if errors.Is(err, repository.ErrUserNotFound) {
			synced = newUserFromIdentity(identity, input, now)
			created = true

			return errors.Wrap(userRepo.Create(ctx, synced), "failed to create user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by token identifier")
		}

		if applyProfile(existing, input) {
			existing.UpdatedAt = now
			if err := userRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update user profile")
			}
		}
		synced = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sync user", slog.String("issuer", identity.Issuer), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user sync transaction")
	}

	srv.log(ctx).Debug("User synced", slog.Any("userID", synced.ID), slog.Bool("created", created))

	return synced, nil
}

func (srv *userService) Me(ctx context.Context, ac entity.AuthContext) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = requireAuth(ctx, repoFactory.UserRepo(), ac)

		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *userService) SetRole(ctx context.Context, ac entity.AuthContext, userID uuid.UUID, role entity.UserRole) (*entity.User, error) {
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String()))
	}

	var target *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		admin, err := requireAdmin(ctx, userRepo, ac)
		if err != nil {
			return err
		}

		target, err = userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		target.Role = role
		target.UpdatedAt = srv.clock()
		if err := userRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to update user role")
		}

		srv.log(ctx).Info("User role changed", slog.Any("userID", target.ID), slog.String("role", role.String()), slog.Any("by", admin.ID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return target, nil
}

func newUserFromIdentity(identity *entity.Identity, input usecase.SyncUserInput, now time.Time) *entity.User {
	subject := identity.Subject
	user := &entity.User{
		ID:              uuid.New(),
		Name:            firstNonEmpty(input.Name, identity.Name),
		Email:           firstNonEmpty(input.Email, identity.Email),
		Image:           firstNonEmpty(input.Image, identity.Picture),
		TokenIdentifier: identity.TokenIdentifier,
		Role:            entity.UserRoleUser,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if subject != "" {
		user.ExternalID = &subject
	}

	return user
}

// applyProfile copies non-empty fields and reports whether anything changed.
func applyProfile(user *entity.User, input usecase.SyncUserInput) bool {
	changed := false
	if input.Name != "" && input.Name != user.Name {
		user.Name = input.Name
		changed = true
	}
	if input.Email != "" && input.Email != user.Email {
		user.Email = input.Email
		changed = true
	}
	if input.Image != "" && input.Image != user.Image {
		user.Image = input.Image
		changed = true
	}

	return changed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
