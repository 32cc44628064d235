package entity

import (
	"testing"
	"time"

	domainerrors "mescontacts/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(status PostStatus) *Post {
	userID := uuid.New()

	return &Post{
		ID:           uuid.New(),
		BusinessName: "Plomberie Tremblay",
		Category:     "plumbing",
		Status:       status,
		UserID:       &userID,
	}
}

func TestPost_Publish_FromDraft(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	actor := uuid.New()
	post := newTestPost(PostStatusDraft)

	history, err := post.Publish(30, Transition{Actor: &actor, At: now})
	require.NoError(t, err)

	assert.Equal(t, PostStatusPublished, post.Status)
	require.NotNil(t, post.PublishedAt)
	require.NotNil(t, post.ExpiresAt)
	assert.Equal(t, now, *post.PublishedAt)
	assert.Equal(t, now.UnixMilli()+30*86_400_000, post.ExpiresAt.UnixMilli())

	require.NotNil(t, history.PreviousStatus)
	assert.Equal(t, PostStatusDraft, *history.PreviousStatus)
	assert.Equal(t, PostStatusPublished, history.NewStatus)
	assert.Equal(t, post.ID, history.PostID)
	assert.Equal(t, &actor, history.ChangedBy)
	assert.Equal(t, now, history.CreatedAt)
}

func TestPost_Publish_RejectsNonDraft(t *testing.T) {
	for _, status := range []PostStatus{PostStatusPublished, PostStatusExpired, PostStatusDisabled} {
		t.Run(status.String(), func(t *testing.T) {
			post := newTestPost(status)

			history, err := post.Publish(30, Transition{At: time.Now()})
			assert.Nil(t, history)
			assert.True(t, errors.Is(err, domainerrors.ErrPostNotDraft))
			assert.Equal(t, status, post.Status)
		})
	}
}

func TestPost_Publish_RejectsShortDuration(t *testing.T) {
	post := newTestPost(PostStatusDraft)

	_, err := post.Publish(0, Transition{At: time.Now()})
	assert.True(t, errors.Is(err, domainerrors.ErrDurationInvalid))
	assert.Equal(t, PostStatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
}

func TestPost_Renew(t *testing.T) {
	tests := []struct {
		name    string
		status  PostStatus
		wantErr bool
	}{
		{name: "expired", status: PostStatusExpired},
		{name: "disabled", status: PostStatusDisabled},
		{name: "published", status: PostStatusPublished, wantErr: true},
		{name: "draft", status: PostStatusDraft, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.UnixMilli(1_800_000_000_000)
			post := newTestPost(tt.status)
			old := now.Add(-90 * 24 * time.Hour)
			post.ExpiresAt = &old

			history, err := post.Renew(60, Transition{At: now, Reason: "renewal"})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrPostNotRenewable))
				assert.Equal(t, "Only expired or disabled posts can be renewed", err.Error())
				assert.Equal(t, tt.status, post.Status)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, PostStatusPublished, post.Status)
			assert.Equal(t, now.UnixMilli()+60*86_400_000, post.ExpiresAt.UnixMilli())
			assert.Equal(t, tt.status, *history.PreviousStatus)
			assert.Equal(t, "renewal", history.Reason)
		})
	}
}

func TestPost_Disable(t *testing.T) {
	for _, status := range []PostStatus{PostStatusDraft, PostStatusPublished, PostStatusExpired} {
		post := newTestPost(status)

		history, err := post.Disable(Transition{At: time.Now(), Reason: "refund"})
		require.NoError(t, err)
		assert.Equal(t, PostStatusDisabled, post.Status)
		assert.Equal(t, status, *history.PreviousStatus)
	}

	post := newTestPost(PostStatusDisabled)
	_, err := post.Disable(Transition{At: time.Now()})
	assert.True(t, errors.Is(err, domainerrors.ErrPostAlreadyDisabled))
}

func TestPost_Expire(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	due := newTestPost(PostStatusPublished)
	due.ExpiresAt = &past
	history, err := due.Expire(Transition{At: now})
	require.NoError(t, err)
	assert.Equal(t, PostStatusExpired, due.Status)
	assert.Nil(t, history.ChangedBy)

	notDue := newTestPost(PostStatusPublished)
	notDue.ExpiresAt = &future
	_, err = notDue.Expire(Transition{At: now})
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotExpirable))

	draft := newTestPost(PostStatusDraft)
	_, err = draft.Expire(Transition{At: now})
	assert.Error(t, err)
}

func TestPost_ChangeStatus_AnyToAny(t *testing.T) {
	statuses := []PostStatus{PostStatusDraft, PostStatusPublished, PostStatusExpired, PostStatusDisabled}

	for _, from := range statuses {
		for _, to := range statuses {
			post := newTestPost(from)

			history, err := post.ChangeStatus(to, 0, Transition{At: time.Now(), Reason: "manual"})
			require.NoError(t, err)
			assert.Equal(t, to, post.Status)
			assert.Equal(t, from, *history.PreviousStatus)
			assert.Equal(t, to, history.NewStatus)
			assert.Equal(t, "manual", history.Reason)
		}
	}

	_, err := newTestPost(PostStatusDraft).ChangeStatus("ARCHIVED", 0, Transition{At: time.Now()})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPost_ChangeStatus_PublishExpiry(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stale expiry is cleared so the sweeper leaves it alone", func(t *testing.T) {
		post := newTestPost(PostStatusExpired)
		stale := now.Add(-time.Hour)
		post.ExpiresAt = &stale

		_, err := post.ChangeStatus(PostStatusPublished, 0, Transition{At: now})

		require.NoError(t, err)
		assert.Nil(t, post.ExpiresAt)
		assert.False(t, post.IsPastExpiry(now.Add(365*24*time.Hour)))
	})

	t.Run("future expiry is kept", func(t *testing.T) {
		post := newTestPost(PostStatusDisabled)
		future := now.Add(48 * time.Hour)
		post.ExpiresAt = &future

		_, err := post.ChangeStatus(PostStatusPublished, 0, Transition{At: now})

		require.NoError(t, err)
		assert.Equal(t, future, *post.ExpiresAt)
	})

	t.Run("duration schedules a new window from a draft", func(t *testing.T) {
		post := newTestPost(PostStatusDraft)

		_, err := post.ChangeStatus(PostStatusPublished, 30, Transition{At: now})

		require.NoError(t, err)
		require.NotNil(t, post.ExpiresAt)
		assert.Equal(t, now, *post.PublishedAt)
		assert.Equal(t, int64(30*86_400_000), post.ExpiresAt.Sub(now).Milliseconds())
	})

	t.Run("duration is rejected for other statuses", func(t *testing.T) {
		_, err := newTestPost(PostStatusPublished).ChangeStatus(PostStatusDisabled, 7, Transition{At: now})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("negative duration is rejected", func(t *testing.T) {
		_, err := newTestPost(PostStatusDraft).ChangeStatus(PostStatusPublished, -1, Transition{At: now})
		assert.True(t, errors.Is(err, domainerrors.ErrDurationInvalid))
	})
}

func TestPost_InitialHistory(t *testing.T) {
	post := newTestPost(PostStatusDraft)

	history := post.InitialHistory(Transition{At: time.Now()})
	assert.Nil(t, history.PreviousStatus)
	assert.Equal(t, PostStatusDraft, history.NewStatus)
}

func TestPost_OwnedBy(t *testing.T) {
	userID := uuid.New()
	orgID := uuid.New()

	personal := &Post{UserID: &userID}
	assert.True(t, personal.OwnedBy(userID, nil))
	assert.False(t, personal.OwnedBy(uuid.New(), []uuid.UUID{orgID}))

	business := &Post{OrganizationID: &orgID}
	assert.True(t, business.OwnedBy(userID, []uuid.UUID{uuid.New(), orgID}))
	assert.False(t, business.OwnedBy(userID, nil))
}
