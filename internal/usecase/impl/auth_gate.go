// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/usecase"

	"github.com/pkg/errors"
)

// authGate implements the AuthGate interface.
type authGate struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAuthGate is the constructor for authGate.
func NewAuthGate(txManager repository.TransactionManager, logger *slog.Logger) usecase.AuthGate {
	return &authGate{
		txManager: txManager,
		logger:    logger,
	}
}

func (g *authGate) CurrentUser(ctx context.Context, ac entity.AuthContext) (*entity.User, error) {
	var user *entity.User
	err := g.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = currentUser(ctx, repoFactory.UserRepo(), ac)

		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (g *authGate) RequireAuth(ctx context.Context, ac entity.AuthContext) (*entity.User, error) {
	var user *entity.User
	err := g.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = requireAuth(ctx, repoFactory.UserRepo(), ac)

		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (g *authGate) RequireAdmin(ctx context.Context, ac entity.AuthContext) (*entity.User, error) {
	var user *entity.User
	err := g.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = requireAdmin(ctx, repoFactory.UserRepo(), ac)

		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (g *authGate) IsAdmin(ctx context.Context, ac entity.AuthContext) bool {
	user, err := g.CurrentUser(ctx, ac)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).Warn("Failed to resolve caller, treating as non-admin", slog.Any("error", err))

		return false
	}

	return user.IsAdmin()
}

// currentUser resolves the caller inside an existing transaction.
func currentUser(ctx context.Context, users repository.UserRepository, ac entity.AuthContext) (*entity.User, error) {
	if !ac.IsAuthenticated() {
		return nil, nil
	}

	user, err := users.FindByTokenIdentifier(ctx, ac.Identity.TokenIdentifier)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve caller")
	}

	return user, nil
}

func requireAuth(ctx context.Context, users repository.UserRepository, ac entity.AuthContext) (*entity.User, error) {
	user, err := currentUser(ctx, users, ac)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	return user, nil
}

func requireAdmin(ctx context.Context, users repository.UserRepository, ac entity.AuthContext) (*entity.User, error) {
	user, err := requireAuth(ctx, users, ac)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrAdminOnly)
	}

	return user, nil
}
