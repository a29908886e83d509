// Package policy contains the pure authorization decisions for user-account
// management. Every function is side-effect free: callers fetch the target
// record, ask for a decision, and only then touch storage.
package policy

import (
	"github.com/gofiber/fiber/v2"

	"steakz/models"
)

// ValidRoles is the fixed role enum, in declaration order.
var ValidRoles = []string{models.RoleUser, models.RoleAdmin, models.RoleManager, models.RoleCashier}

// Denial explains why an operation was refused and which HTTP status the
// refusal maps to.
type Denial struct {
	Status  int
	Message string
}

func (d *Denial) Error() string {
	return d.Message
}

func badRequest(message string) *Denial {
	return &Denial{Status: fiber.StatusBadRequest, Message: message}
}

func forbidden(message string) *Denial {
	return &Denial{Status: fiber.StatusForbidden, Message: message}
}

// Actor identifies the authenticated user performing a request.
type Actor struct {
	ID   uint
	Role string
}

// IsValidRole reports whether role is one of the fixed role enum values.
func IsValidRole(role string) bool {
	return RoleAllowed(role, ValidRoles)
}

// RoleAllowed reports whether role is in the allowed set (case-sensitive
// exact match).
func RoleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// adminProtected reports whether target is an admin account the actor may
// not touch: another admin's account that the actor did not create.
func adminProtected(actor Actor, target models.User) bool {
	if target.Role != models.RoleAdmin || target.ID == actor.ID {
		return false
	}
	return target.CreatedByID == nil || *target.CreatedByID != actor.ID
}

// CanChangeRole decides whether actor may set target's role to newRole.
func CanChangeRole(actor Actor, target models.User, newRole string) *Denial {
	if !IsValidRole(newRole) {
		return badRequest("Invalid role!")
	}
	if target.ID == actor.ID {
		return badRequest("Cannot change your own role!")
	}
	if adminProtected(actor, target) {
		return forbidden("Cannot modify another admin's role!")
	}
	return nil
}

// CanDeleteUser decides whether actor may delete target.
func CanDeleteUser(actor Actor, target models.User) *Denial {
	if target.ID == actor.ID {
		return badRequest("Cannot delete your own account!")
	}
	if adminProtected(actor, target) {
		return forbidden("Cannot delete another admin account!")
	}
	return nil
}

// CanUpdateUser decides whether actor may update target's profile fields.
// Admins may always update themselves.
func CanUpdateUser(actor Actor, target models.User) *Denial {
	if adminProtected(actor, target) {
		return forbidden("Cannot modify other admin accounts!")
	}
	return nil
}

// CanViewUser decides whether an actor with actorRole may view a user with
// targetRole. USER-role actors may only view other USER accounts.
func CanViewUser(actorRole, targetRole string) *Denial {
	if actorRole == models.RoleUser && targetRole != models.RoleUser {
		return forbidden("Unauthorized to view this user!")
	}
	return nil
}

// ValidateNewRole resolves the role supplied at account creation: empty
// defaults to USER, anything outside the enum is rejected.
func ValidateNewRole(role string) (string, *Denial) {
	if role == "" {
		return models.RoleUser, nil
	}
	if !IsValidRole(role) {
		return "", badRequest("Invalid role!")
	}
	return role, nil
}
