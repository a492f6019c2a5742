package impl

import (
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/usecase"

	"github.com/google/uuid"
)

// requireRole lets admins through and otherwise demands role.
func requireRole(actor usecase.Actor, role entity.Role) error {
	if actor.IsAdmin() || actor.Roles.Contains(role) {
		return nil
	}

	return domainerrors.ErrListingRoleRequired.WithDetails("requires the " + role.String() + " role")
}

// requireOwner lets admins through and otherwise demands the actor owns the listing.
func requireOwner(actor usecase.Actor, owner uuid.UUID) error {
	if actor.IsAdmin() || actor.UserID == owner {
		return nil
	}

	return domainerrors.ErrForbidden
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
