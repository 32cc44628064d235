package impl

import (
	"context"
	"testing"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	mockRepo "mescontacts/internal/mocks/repository"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type organizationServiceFixtures struct {
	service   usecase.OrganizationUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
}

func createTestOrganizationService(t *testing.T) organizationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoMocks(t)

	return organizationServiceFixtures{
		service:   NewOrganizationService(txManager, fixedClock(testNow), newDiscardLogger()),
		txManager: txManager,
		repos:     repos,
	}
}

func TestOrganizationService_Create_RegistersOwner(t *testing.T) {
	fx := createTestOrganizationService(t)
	admin, ac := newAdmin()
	ownerID := uuid.New()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.users.EXPECT().FindByID(mock.Anything, ownerID).Return(&entity.User{ID: ownerID}, nil)
	fx.repos.orgs.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Organization")).Return(nil)

	var owner *entity.OrganizationMember
	fx.repos.orgs.EXPECT().AddMember(mock.Anything, mock.AnythingOfType("*entity.OrganizationMember")).
		Run(func(_ context.Context, member *entity.OrganizationMember) { owner = member }).
		Return(nil)

	org, err := fx.service.Create(context.Background(), ac, usecase.CreateOrganizationInput{Name: " Mescontacts ", OwnerID: ownerID})

	require.NoError(t, err)
	assert.Equal(t, "Mescontacts", org.Name)
	require.NotNil(t, owner)
	assert.Equal(t, org.ID, owner.OrganizationID)
	assert.Equal(t, ownerID, owner.UserID)
	assert.Equal(t, entity.MemberRoleOwner, owner.Role)
	assert.Equal(t, testNow, owner.JoinedAt)
}

func TestOrganizationService_Create_RequiresName(t *testing.T) {
	fx := createTestOrganizationService(t)
	_, ac := newAdmin()

	_, err := fx.service.Create(context.Background(), ac, usecase.CreateOrganizationInput{Name: "  ", OwnerID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrganizationService_AddMember_Duplicate(t *testing.T) {
	fx := createTestOrganizationService(t)
	admin, ac := newAdmin()
	orgID, userID := uuid.New(), uuid.New()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.orgs.EXPECT().FindByID(mock.Anything, orgID).Return(&entity.Organization{ID: orgID}, nil)
	fx.repos.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	fx.repos.orgs.EXPECT().AddMember(mock.Anything, mock.AnythingOfType("*entity.OrganizationMember")).Return(repository.ErrDuplicateMember)

	_, err := fx.service.AddMember(context.Background(), ac, orgID, userID, entity.MemberRoleMember)

	assert.ErrorIs(t, err, domainerrors.ErrMemberAlreadyExists)
}

func TestOrganizationService_LastOwnerInvariant(t *testing.T) {
	orgID := uuid.New()
	soleOwner := &entity.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: entity.MemberRoleOwner}
	member := &entity.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: entity.MemberRoleMember}
	// OwnerID points at someone else so these cases never hand over ownership.
	org := &entity.Organization{ID: orgID, OwnerID: uuid.New()}

	t.Run("cannot demote the last owner", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).Return(org, nil)
		fx.repos.orgs.EXPECT().FindMember(mock.Anything, orgID, soleOwner.UserID).Return(soleOwner, nil)
		fx.repos.orgs.EXPECT().ListMembers(mock.Anything, orgID).Return([]*entity.OrganizationMember{soleOwner, member}, nil)

		_, err := fx.service.UpdateMemberRole(context.Background(), ac, orgID, soleOwner.UserID, entity.MemberRoleMember)

		assert.ErrorIs(t, err, domainerrors.ErrLastOwner)
		assert.Equal(t, domainerrors.KindState, domainerrors.KindOf(err))
	})

	t.Run("cannot remove the last owner", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).Return(org, nil)
		fx.repos.orgs.EXPECT().FindMember(mock.Anything, orgID, soleOwner.UserID).Return(soleOwner, nil)
		fx.repos.orgs.EXPECT().ListMembers(mock.Anything, orgID).Return([]*entity.OrganizationMember{soleOwner}, nil)

		err := fx.service.RemoveMember(context.Background(), ac, orgID, soleOwner.UserID)

		assert.ErrorIs(t, err, domainerrors.ErrLastOwner)
	})

	t.Run("owner can leave when another owner remains", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		coOwner := &entity.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: entity.MemberRoleOwner}
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).Return(org, nil)
		fx.repos.orgs.EXPECT().FindMember(mock.Anything, orgID, soleOwner.UserID).Return(soleOwner, nil)
		fx.repos.orgs.EXPECT().ListMembers(mock.Anything, orgID).Return([]*entity.OrganizationMember{soleOwner, coOwner}, nil)
		fx.repos.orgs.EXPECT().RemoveMember(mock.Anything, orgID, soleOwner.UserID).Return(nil)

		err := fx.service.RemoveMember(context.Background(), ac, orgID, soleOwner.UserID)

		require.NoError(t, err)
	})

	t.Run("members are removed without owner check", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).Return(org, nil)
		fx.repos.orgs.EXPECT().FindMember(mock.Anything, orgID, member.UserID).Return(member, nil)
		fx.repos.orgs.EXPECT().RemoveMember(mock.Anything, orgID, member.UserID).Return(nil)

		err := fx.service.RemoveMember(context.Background(), ac, orgID, member.UserID)

		require.NoError(t, err)
		fx.repos.orgs.AssertNotCalled(t, "ListMembers", mock.Anything, mock.Anything)
	})
}

func TestOrganizationService_OwnershipHandOver(t *testing.T) {
	orgID := uuid.New()
	creator := &entity.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: entity.MemberRoleOwner}
	member := &entity.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: entity.MemberRoleMember}
	coOwner := &entity.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: entity.MemberRoleOwner}
	members := []*entity.OrganizationMember{creator, member, coOwner}

	t.Run("demoting the recorded owner moves OwnerID to the next owner", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		org := &entity.Organization{ID: orgID, OwnerID: creator.UserID}
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).Return(org, nil)
		fx.repos.orgs.EXPECT().FindMember(mock.Anything, orgID, creator.UserID).Return(&entity.OrganizationMember{
			OrganizationID: orgID, UserID: creator.UserID, Role: entity.MemberRoleOwner,
		}, nil)
		fx.repos.orgs.EXPECT().ListMembers(mock.Anything, orgID).Return(members, nil)
		fx.repos.orgs.EXPECT().UpdateOwner(mock.Anything, orgID, coOwner.UserID).Return(nil)
		fx.repos.orgs.EXPECT().UpdateMemberRole(mock.Anything, orgID, creator.UserID, entity.MemberRoleMember).Return(nil)

		updated, err := fx.service.UpdateMemberRole(context.Background(), ac, orgID, creator.UserID, entity.MemberRoleMember)

		require.NoError(t, err)
		assert.Equal(t, entity.MemberRoleMember, updated.Role)
		assert.Equal(t, coOwner.UserID, org.OwnerID)
	})

	t.Run("removing the recorded owner moves OwnerID", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		org := &entity.Organization{ID: orgID, OwnerID: creator.UserID}
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).Return(org, nil)
		fx.repos.orgs.EXPECT().FindMember(mock.Anything, orgID, creator.UserID).Return(creator, nil)
		fx.repos.orgs.EXPECT().ListMembers(mock.Anything, orgID).Return(members, nil)
		fx.repos.orgs.EXPECT().UpdateOwner(mock.Anything, orgID, coOwner.UserID).Return(nil)
		fx.repos.orgs.EXPECT().RemoveMember(mock.Anything, orgID, creator.UserID).Return(nil)

		require.NoError(t, fx.service.RemoveMember(context.Background(), ac, orgID, creator.UserID))
	})

	t.Run("organization row is locked before owners are counted", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		locked := false
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).
			Run(func(context.Context, uuid.UUID) { locked = true }).
			Return(&entity.Organization{ID: orgID, OwnerID: coOwner.UserID}, nil)
		fx.repos.orgs.EXPECT().FindMember(mock.Anything, orgID, creator.UserID).Return(creator, nil)
		fx.repos.orgs.EXPECT().ListMembers(mock.Anything, orgID).
			RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.OrganizationMember, error) {
				assert.True(t, locked, "owners counted without holding the organization lock")

				return []*entity.OrganizationMember{creator}, nil
			})

		err := fx.service.RemoveMember(context.Background(), ac, orgID, creator.UserID)

		assert.ErrorIs(t, err, domainerrors.ErrLastOwner)
		fx.repos.orgs.AssertNotCalled(t, "UpdateOwner", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown organization", func(t *testing.T) {
		fx := createTestOrganizationService(t)
		admin, ac := newAdmin()
		onExecute(fx.txManager, fx.repos)
		expectCaller(fx.repos, admin)
		fx.repos.orgs.EXPECT().LockByID(mock.Anything, orgID).Return(nil, repository.ErrOrganizationNotFound)

		err := fx.service.RemoveMember(context.Background(), ac, orgID, creator.UserID)

		assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
	})
}

func TestOrganizationService_Get_NotFound(t *testing.T) {
	fx := createTestOrganizationService(t)
	admin, ac := newAdmin()
	orgID := uuid.New()

	onExecute(fx.txManager, fx.repos)
	expectCaller(fx.repos, admin)
	fx.repos.orgs.EXPECT().FindByID(mock.Anything, orgID).Return(nil, repository.ErrOrganizationNotFound)

	_, err := fx.service.Get(context.Background(), ac, orgID)

	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}

func TestOrganizationService_List_TransactionFailure(t *testing.T) {
	fx := createTestOrganizationService(t)
	_, ac := newAdmin()

	var called bool
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(_ context.Context, fn func(repository.RepositoryFactory) error) { called = fn != nil }).
		Return(domainerrors.ErrTransactionFailed)

	orgs, err := fx.service.List(context.Background(), ac)

	assert.True(t, called)
	assert.Nil(t, orgs)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}
