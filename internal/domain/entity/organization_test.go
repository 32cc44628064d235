package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNextOwner(t *testing.T) {
	first := &OrganizationMember{UserID: uuid.New(), Role: MemberRoleOwner}
	member := &OrganizationMember{UserID: uuid.New(), Role: MemberRoleMember}
	second := &OrganizationMember{UserID: uuid.New(), Role: MemberRoleOwner}
	members := []*OrganizationMember{first, member, second}

	assert.Same(t, second, NextOwner(members, first.UserID))
	assert.Same(t, first, NextOwner(members, second.UserID))
	assert.Same(t, first, NextOwner(members, member.UserID))
	assert.Nil(t, NextOwner([]*OrganizationMember{first, member}, first.UserID))
	assert.Nil(t, NextOwner(nil, uuid.New()))
}
