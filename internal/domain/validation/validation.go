// Package validation holds the pure domain rules shared by the use cases.
package validation

import (
	"time"

	domainerrors "mescontacts/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// MillisPerDay is the length of one publication day.
const MillisPerDay int64 = 86_400_000

// ValidateOwnership fails unless exactly one of userID and organizationID is set.
func ValidateOwnership(userID, organizationID *uuid.UUID) error {
	hasUser := userID != nil && *userID != uuid.Nil
	hasOrganization := organizationID != nil && *organizationID != uuid.Nil

	if hasUser == hasOrganization {
		if hasUser {
			return errors.WithStack(domainerrors.ErrOwnershipInvalid.WithDetails("both userId and organizationId are set"))
		}

		return errors.WithStack(domainerrors.ErrOwnershipInvalid.WithDetails("neither userId nor organizationId is set"))
	}

	return nil
}

// ValidateDurationDays fails when the publication duration is shorter than one day.
func ValidateDurationDays(days int) error {
	if days < 1 {
		return errors.WithStack(domainerrors.ErrDurationInvalid)
	}

	return nil
}

// CalculateExpiresAt returns from + days whole days, to the millisecond.
// The caller is responsible for ValidateDurationDays.
func CalculateExpiresAt(from time.Time, days int) time.Time {
	return from.Add(time.Duration(int64(days)*MillisPerDay) * time.Millisecond)
}

// ValidateAmount rejects negative amounts. Zero is allowed for complimentary listings.
func ValidateAmount(amount int64) error {
	if amount < 0 {
		return errors.WithStack(domainerrors.ErrAmountInvalid)
	}

	return nil
}

// ValidatePoint checks that a lon/lat pair lies on the globe.
func ValidatePoint(p orb.Point) error {
	if p.Lon() < -180 || p.Lon() > 180 || p.Lat() < -90 || p.Lat() > 90 {
		return errors.WithStack(domainerrors.ErrGeoInvalid)
	}

	return nil
}
