// Package entity contains the core business objects of the project.
package entity

import "slices"

// UserRole represents the platform-wide role of a user.
type UserRole string

const (
	// UserRoleAdmin grants access to every administrative operation.
	UserRoleAdmin UserRole = "ADMIN"
	// UserRoleUser is the default role assigned on first sign-in.
	UserRoleUser UserRole = "USER"
)

// String returns the string representation of the UserRole.
func (r UserRole) String() string {
	return string(r)
}

// IsValid checks if the UserRole is a valid value.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return true
	default:
		return false
	}
}

// MemberRole represents the role a user holds inside an organization.
type MemberRole string

const (
	// MemberRoleOwner can manage the organization. Every organization keeps at least one.
	MemberRoleOwner MemberRole = "OWNER"
	// MemberRoleMember is a regular organization member.
	MemberRoleMember MemberRole = "MEMBER"
)

// String returns the string representation of the MemberRole.
func (r MemberRole) String() string {
	return string(r)
}

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleMember:
		return true
	default:
		return false
	}
}

// MemberRoles is a slice of MemberRole for convenience.
type MemberRoles []MemberRole

// Contains checks if the roles slice contains a specific role.
func (rs MemberRoles) Contains(role MemberRole) bool {
	return slices.Contains(rs, role)
}
