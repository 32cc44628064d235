package impl

import (
	"context"
	"testing"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	mockRepo "mescontacts/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusHistoryService_GetRecent_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: 20},
		{name: "within range", limit: 35, want: 35},
		{name: "above maximum", limit: 1000, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			repos := newRepoMocks(t)
			admin, ac := newAdmin()
			service := NewStatusHistoryService(txManager, newDiscardLogger())

			onExecute(txManager, repos)
			expectCaller(repos, admin)
			repos.history.EXPECT().FindRecent(mock.Anything, tt.want).Return([]*entity.StatusHistory{}, nil)

			_, err := service.GetRecent(context.Background(), ac, tt.limit)

			require.NoError(t, err)
		})
	}
}

func TestStatusHistoryService_GetByPost(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	admin, ac := newAdmin()
	post := newDraftPost()
	entries := []*entity.StatusHistory{post.InitialHistory(entity.Transition{Actor: &admin.ID, At: testNow})}
	service := NewStatusHistoryService(txManager, newDiscardLogger())

	onExecute(txManager, repos)
	expectCaller(repos, admin)
	repos.posts.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	repos.history.EXPECT().FindByPost(mock.Anything, post.ID).Return(entries, nil)

	got, err := service.GetByPost(context.Background(), ac, post.ID)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestStatusHistoryService_RequiresAdmin(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)
	user, ac := newCaller(entity.UserRoleUser)
	service := NewStatusHistoryService(txManager, newDiscardLogger())

	onExecute(txManager, repos)
	expectCaller(repos, user)

	_, err := service.GetRecent(context.Background(), ac, 10)

	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
}
