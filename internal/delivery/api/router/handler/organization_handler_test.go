package handler

import (
	"net/http"
	"testing"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	mockusecase "mescontacts/internal/mocks/usecase"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrganizationHandler_Create(t *testing.T) {
	orgUC := mockusecase.NewMockOrganizationUsecase(t)
	h := NewOrganizationHandler(OrganizationHandlerParams{OrganizationUC: orgUC})

	ownerID := uuid.New()
	orgUC.EXPECT().
		Create(mock.Anything, adminContext(), usecase.CreateOrganizationInput{Name: "Coop du Quartier", OwnerID: ownerID, Province: "QC"}).
		Return(&entity.Organization{ID: uuid.New(), Name: "Coop du Quartier"}, nil)

	body := `{"name":"Coop du Quartier","ownerId":"` + ownerID.String() + `","province":"QC"}`
	c, rec := newContext(http.MethodPost, "/api/v1/organizations", body, adminContext())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrganizationHandler_AddMember(t *testing.T) {
	orgUC := mockusecase.NewMockOrganizationUsecase(t)
	h := NewOrganizationHandler(OrganizationHandlerParams{OrganizationUC: orgUC})

	orgID, userID := uuid.New(), uuid.New()
	orgUC.EXPECT().AddMember(mock.Anything, adminContext(), orgID, userID, entity.MemberRoleMember).
		Return(nil, domainerrors.ErrMemberAlreadyExists)

	c, rec := newContext(http.MethodPost, "/", `{"userId":"`+userID.String()+`","role":"MEMBER"}`, adminContext())
	c.SetParamNames("id")
	c.SetParamValues(orgID.String())

	require.NoError(t, h.AddMember(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "MEMBER_ALREADY_EXISTS", decode(t, rec).Error.Code)
}

func TestOrganizationHandler_RemoveMember(t *testing.T) {
	t.Run("refuses to drop the last owner", func(t *testing.T) {
		orgUC := mockusecase.NewMockOrganizationUsecase(t)
		h := NewOrganizationHandler(OrganizationHandlerParams{OrganizationUC: orgUC})

		orgID, userID := uuid.New(), uuid.New()
		orgUC.EXPECT().RemoveMember(mock.Anything, adminContext(), orgID, userID).Return(domainerrors.ErrLastOwner)

		c, rec := newContext(http.MethodDelete, "/", "", adminContext())
		c.SetParamNames("id", "userId")
		c.SetParamValues(orgID.String(), userID.String())

		require.NoError(t, h.RemoveMember(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects a malformed member id", func(t *testing.T) {
		h := NewOrganizationHandler(OrganizationHandlerParams{OrganizationUC: mockusecase.NewMockOrganizationUsecase(t)})

		c, rec := newContext(http.MethodDelete, "/", "", adminContext())
		c.SetParamNames("id", "userId")
		c.SetParamValues(uuid.NewString(), "x")

		require.NoError(t, h.RemoveMember(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
