package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"mescontacts/config"
	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/service"
	"mescontacts/internal/domain/validation"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	reasonPostCreated     = "Post created"
	reasonPostDisabled    = "Disabled by administrator"
	reasonPublicationOver = "Publication period ended"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	notifier  *lifecycleNotifier
	clock     service.Clock
	listing   config.ListingConfig
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Metrics   service.LedgerMetrics
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPostService creates a new post service.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		qrService: params.QRService,
		notifier: &lifecycleNotifier{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		clock:   params.Clock,
		listing: *params.Config.Listing,
		logger:  params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a DRAFT listing owned by exactly one user or organization.
func (srv *postService) Create(ctx context.Context, ac entity.AuthContext, input usecase.PostFields) (*entity.Post, error) {
	if err := validatePostFields(input); err != nil {
		return nil, err
	}

	now := srv.clock()
	var (
		post    *entity.Post
		initial *entity.StatusHistory
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admin, err := requireAdmin(ctx, repoFactory.UserRepo(), ac)
		if err != nil {
			return err
		}

		if err := ensureOwnerExists(ctx, repoFactory, input); err != nil {
			return err
		}

		post = &entity.Post{
			ID:        uuid.New(),
			Status:    entity.PostStatusDraft,
			CreatedBy: admin.ID,
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		assignPostFields(post, input)

		if err := repoFactory.PostRepo().Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create post")
		}

		initial = post.InitialHistory(entity.Transition{Actor: &admin.ID, Reason: reasonPostCreated, At: now})

		return errors.Wrap(repoFactory.StatusHistoryRepo().Append(ctx, initial), "failed to append status history")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create post", slog.String("businessName", input.BusinessName), slog.Any("error", err))

		return nil, err
	}

	srv.notifier.notify(ctx, nil, initial)
	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID))

	return post, nil
}

// Update replaces the editable fields of a listing. Status is never touched here.
func (srv *postService) Update(ctx context.Context, ac entity.AuthContext, id uuid.UUID, input usecase.UpdatePostInput) (*entity.Post, error) {
	if err := validatePostFields(input.PostFields); err != nil {
		return nil, err
	}

	var post *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		var err error
		post, err = findPost(ctx, repoFactory.PostRepo(), id)
		if err != nil {
			return err
		}
		if input.Version != 0 && input.Version != post.Version {
			return errors.WithStack(domainerrors.ErrConcurrentModification.WithDetails("post was modified since it was loaded"))
		}

		if err := ensureOwnerExists(ctx, repoFactory, input.PostFields); err != nil {
			return err
		}

		assignPostFields(post, input.PostFields)
		post.UpdatedAt = srv.clock()

		return versionConflict(repoFactory.PostRepo().Update(ctx, post), "failed to update post")
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (srv *postService) Delete(ctx context.Context, ac entity.AuthContext, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		postRepo := repoFactory.PostRepo()
		if _, err := findPost(ctx, postRepo, id); err != nil {
			return err
		}

		return errors.Wrap(postRepo.Delete(ctx, id), "failed to delete post")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", id))

	return nil
}

// GetByID hides non-published listings from everyone but administrators.
func (srv *postService) GetByID(ctx context.Context, ac entity.AuthContext, id uuid.UUID) (*entity.Post, error) {
	var post *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		post, err = findPost(ctx, repoFactory.PostRepo(), id)
		if err != nil {
			return err
		}
		if post.Status == entity.PostStatusPublished {
			return nil
		}

		caller, err := currentUser(ctx, repoFactory.UserRepo(), ac)
		if err != nil {
			return err
		}
		if !caller.IsAdmin() {
			return errors.WithStack(domainerrors.ErrPostNotFound)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetMyPosts returns listings owned by the caller directly or through an organization.
func (srv *postService) GetMyPosts(ctx context.Context, ac entity.AuthContext) ([]*entity.Post, error) {
	posts := []*entity.Post{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		caller, err := currentUser(ctx, repoFactory.UserRepo(), ac)
		if err != nil || caller == nil {
			return err
		}

		orgIDs, err := repoFactory.OrganizationRepo().ListOrganizationIDsByUser(ctx, caller.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list caller organizations")
		}

		found, err := repoFactory.PostRepo().FindByOwners(ctx, caller.ID, orgIDs)
		if err != nil {
			return errors.Wrap(err, "failed to find caller posts")
		}
		posts = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return posts, nil
}

// Search lists published listings. With Near set, results within RadiusKm are sorted by distance.
func (srv *postService) Search(ctx context.Context, input usecase.SearchPostsInput) ([]*entity.Post, error) {
	published := entity.PostStatusPublished
	filter := repository.PostFilter{
		Status:   &published,
		Category: strings.TrimSpace(input.Category),
		Province: strings.TrimSpace(input.Province),
		City:     strings.TrimSpace(input.City),
		Limit:    srv.searchLimit(input.Limit),
		Offset:   max(input.Offset, 0),
	}

	var radiusMeters float64
	if input.Near != nil {
		center := input.Near.Point()
		if err := validation.ValidatePoint(center); err != nil {
			return nil, err
		}
		if input.RadiusKm <= 0 || input.RadiusKm > srv.listing.MaxSearchRadiusKm {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("radiusKm must be within (0, max search radius]"))
		}

		radiusMeters = input.RadiusKm * 1000
		bound := geo.NewBoundAroundPoint(center, radiusMeters)
		filter.Within = &bound
		// The bounding box is only a prefilter; paging happens after the exact distance check.
		filter.Limit, filter.Offset = 0, 0
	}

	var posts []*entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		posts, err = repoFactory.PostRepo().List(ctx, filter)

		return errors.Wrap(err, "failed to search posts")
	})
	if err != nil {
		return nil, err
	}

	if input.Near == nil {
		return posts, nil
	}

	return nearest(posts, input.Near.Point(), radiusMeters, max(input.Offset, 0), srv.searchLimit(input.Limit)), nil
}

func (srv *postService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		post, err := findPost(ctx, repoFactory.PostRepo(), id)
		if err != nil {
			return err
		}
		if post.Status != entity.PostStatusPublished {
			return errors.WithStack(domainerrors.ErrPostNotFound)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePostQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate post QR code")
	}

	return png, nil
}

// ChangeStatus is the administrator's any-to-any status selector.
func (srv *postService) ChangeStatus(ctx context.Context, ac entity.AuthContext, id uuid.UUID, input usecase.ChangeStatusInput) (*entity.Post, error) {
	return srv.transition(ctx, ac, id, func(post *entity.Post, tr entity.Transition) (*entity.StatusHistory, error) {
		tr.Reason = input.Reason

		return post.ChangeStatus(input.Status, input.DurationDays, tr)
	})
}

func (srv *postService) Disable(ctx context.Context, ac entity.AuthContext, id uuid.UUID, reason string) (*entity.Post, error) {
	return srv.transition(ctx, ac, id, func(post *entity.Post, tr entity.Transition) (*entity.StatusHistory, error) {
		tr.Reason = firstNonEmpty(strings.TrimSpace(reason), reasonPostDisabled)

		return post.Disable(tr)
	})
}

// transition runs an admin status transition and its history append in one transaction.
func (srv *postService) transition(
	ctx context.Context,
	ac entity.AuthContext,
	id uuid.UUID,
	apply func(*entity.Post, entity.Transition) (*entity.StatusHistory, error),
) (*entity.Post, error) {
	var (
		post  *entity.Post
		entry *entity.StatusHistory
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admin, err := requireAdmin(ctx, repoFactory.UserRepo(), ac)
		if err != nil {
			return err
		}

		post, err = findPost(ctx, repoFactory.PostRepo(), id)
		if err != nil {
			return err
		}

		entry, err = apply(post, entity.Transition{Actor: &admin.ID, At: srv.clock()})
		if err != nil {
			return err
		}

		return saveTransition(ctx, repoFactory, post, entry)
	})
	if err != nil {
		return nil, err
	}

	srv.notifier.notify(ctx, nil, entry)

	return post, nil
}

// ExpireDue expires every published listing whose expiry is at or before now.
// Each listing is expired in its own transaction; a failure on one does not stop the others.
func (srv *postService) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	var due []*entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		due, err = repoFactory.PostRepo().FindDueForExpiry(ctx, now, srv.listing.SweepBatch)

		return errors.Wrap(err, "failed to find posts due for expiry")
	})
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, post := range due {
		var entry *entity.StatusHistory
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			entry, err = post.Expire(entity.Transition{Reason: reasonPublicationOver, At: now})
			if err != nil {
				return err
			}

			return saveTransition(ctx, repoFactory, post, entry)
		})
		if err != nil {
			srv.log(ctx).Warn("Failed to expire post", slog.Any("postID", post.ID), slog.Any("error", err))

			continue
		}

		srv.notifier.notify(ctx, nil, entry)
		expired++
	}

	if expired > 0 {
		srv.log(ctx).Info("Expired posts", slog.Int("count", expired), slog.Int("due", len(due)))
	}

	return expired, nil
}

func (srv *postService) searchLimit(limit int) int {
	if limit <= 0 {
		return srv.listing.SearchDefaultLimit
	}

	return min(limit, srv.listing.SearchMaxLimit)
}

// nearest keeps posts within radiusMeters of center, closest first, then pages the result.
func nearest(posts []*entity.Post, center orb.Point, radiusMeters float64, offset, limit int) []*entity.Post {
	type ranked struct {
		post     *entity.Post
		distance float64
	}

	candidates := make([]ranked, 0, len(posts))
	for _, post := range posts {
		if post.Geo == nil {
			continue
		}
		d := geo.DistanceHaversine(center, post.Geo.Point())
		if d <= radiusMeters {
			candidates = append(candidates, ranked{post: post, distance: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	result := []*entity.Post{}
	for i := offset; i < len(candidates) && len(result) < limit; i++ {
		result = append(result, candidates[i].post)
	}

	return result
}

func validatePostFields(input usecase.PostFields) error {
	if strings.TrimSpace(input.BusinessName) == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("businessName is required"))
	}
	if strings.TrimSpace(input.Category) == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("category is required"))
	}
	if err := validation.ValidateOwnership(input.UserID, input.OrganizationID); err != nil {
		return err
	}
	if input.Geo != nil {
		return validation.ValidatePoint(input.Geo.Point())
	}

	return nil
}

func ensureOwnerExists(ctx context.Context, repoFactory repository.RepositoryFactory, input usecase.PostFields) error {
	if input.UserID != nil && *input.UserID != uuid.Nil {
		return ensureUserExists(ctx, repoFactory.UserRepo(), *input.UserID)
	}

	_, err := findOrganization(ctx, repoFactory.OrganizationRepo(), *input.OrganizationID)

	return err
}

func assignPostFields(post *entity.Post, input usecase.PostFields) {
	post.BusinessName = strings.TrimSpace(input.BusinessName)
	post.Category = strings.TrimSpace(input.Category)
	post.Description = input.Description
	post.Phone = input.Phone
	post.Email = input.Email
	post.Website = input.Website
	post.Address = input.Address
	post.City = input.City
	post.Province = input.Province
	post.PostalCode = input.PostalCode
	post.Geo = input.Geo
	post.UserID, post.OrganizationID = nil, nil
	if input.UserID != nil && *input.UserID != uuid.Nil {
		post.UserID = input.UserID
	} else {
		post.OrganizationID = input.OrganizationID
	}
}
