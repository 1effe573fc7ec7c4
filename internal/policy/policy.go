// Package policy decides who may do what. Every transport entry point goes
// through Can/CanAccess; nothing else compares roles.
package policy

import (
	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

type Action string

const (
	ActionRead         Action = "read"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionUpdateStatus Action = "update_status"
)

type Resource string

const (
	ResourceJob           Resource = "job"
	ResourceCompany       Resource = "company"
	ResourceLocation      Resource = "location"
	ResourceCategory      Resource = "category"
	ResourceApplication   Resource = "application"
	ResourceProfile       Resource = "profile"
	ResourceUserDirectory Resource = "user_directory"
)

// Actor is the caller of an operation. The zero value is anonymous.
type Actor struct {
	ID            uuid.UUID
	Role          models.Role
	Authenticated bool
}

func Anonymous() Actor {
	return Actor{}
}

// NewActor builds an authenticated actor from a resolved identity.
func NewActor(id uuid.UUID, role models.Role) Actor {
	return Actor{ID: id, Role: role, Authenticated: true}
}

// IsAdmin is the only admin predicate in the codebase.
func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Role == models.RoleAdmin
}

// Can answers the kind-level question: may this actor perform action on
// resources of this kind at all. Ownership is not considered.
func Can(actor Actor, action Action, resource Resource) bool {
	switch resource {
	case ResourceJob, ResourceCompany, ResourceLocation, ResourceCategory:
		if action == ActionRead {
			return true
		}
		return actor.IsAdmin()

	case ResourceApplication:
		if !actor.Authenticated {
			return false
		}
		switch action {
		case ActionCreate:
			return !actor.IsAdmin()
		case ActionRead:
			return true
		case ActionUpdate, ActionUpdateStatus, ActionDelete:
			return actor.IsAdmin()
		}
		return false

	case ResourceProfile:
		if !actor.Authenticated {
			return false
		}
		return action == ActionRead || action == ActionUpdate

	case ResourceUserDirectory:
		return actor.Authenticated && action == ActionRead
	}
	return false
}

// CanAccess applies the kind-level rule and then the ownership rule for a
// concrete instance owned by ownerID.
func CanAccess(actor Actor, action Action, resource Resource, ownerID uuid.UUID) bool {
	if !Can(actor, action, resource) {
		return false
	}
	switch resource {
	case ResourceApplication:
		if actor.IsAdmin() {
			return true
		}
		// Non-admins only ever reach read here; create is checked kind-level.
		return actor.ID == ownerID
	case ResourceProfile:
		// Admins do not bypass profile ownership.
		return actor.ID == ownerID
	}
	return true
}
