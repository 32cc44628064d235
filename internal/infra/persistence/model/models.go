// Package model holds the GORM table mappings.
package model

// All returns every table model in dependency order, for AutoMigrate and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&OrganizationModel{},
		&OrganizationMemberModel{},
		&PostModel{},
		&PaymentModel{},
		&StatusHistoryModel{},
	}
}
