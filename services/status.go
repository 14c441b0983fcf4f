package services

import (
	"fmt"

	"resort-backend/models"
)

// checkTransition validates a lifecycle move shared by bookings and service
// orders and the caller's right to perform it. Legality is checked before
// authorization so an impossible move reads as such even for admins.
//
//	pending              -> confirmed   admin only
//	pending | confirmed  -> cancelled   owning client or admin
//	confirmed            -> completed   admin or staff
func checkTransition(from, to string, callerRole models.Role, isOwner bool) error {
	if !models.ValidStatus(to) {
		return validationErr("unknown status %q", to)
	}

	switch {
	case from == models.StatusPending && to == models.StatusConfirmed:
		if !callerRole.IsAdmin() {
			return fmt.Errorf("%w: only admin can confirm", ErrNotAuthorized)
		}
	case (from == models.StatusPending || from == models.StatusConfirmed) && to == models.StatusCancelled:
		if !isOwner && !callerRole.IsAdmin() {
			return fmt.Errorf("%w: only the owning client or admin can cancel", ErrNotAuthorized)
		}
	case from == models.StatusConfirmed && to == models.StatusCompleted:
		if !callerRole.IsAdminOrStaff() {
			return fmt.Errorf("%w: only staff or admin can complete", ErrNotAuthorized)
		}
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
