// Package authz holds the single authorization decision function every
// entry point consults before mutating plans, follows or subscriptions.
package authz

import (
	"github.com/google/uuid"

	"fitmarket/internal/models/db_models"
	"fitmarket/pkg/utils"
)

type Action int

const (
	ActionCreatePlan Action = iota
	ActionManagePlan
	ActionFollow
	ActionSubscribe
)

// Actor is the resolved identity of the caller. The zero value is an
// unauthenticated viewer.
type Actor struct {
	ID            uuid.UUID
	Role          db_models.Role
	Authenticated bool
}

// Target carries the owning side of the acted-on entity: the plan's
// trainer for ActionManagePlan, the followed trainer for ActionFollow,
// the plan's trainer for ActionSubscribe. Unused for ActionCreatePlan.
type Target struct {
	OwnerID uuid.UUID
}

// Authorize decides allow/deny. Checks run in fixed priority order:
// authentication, then role, then ownership/self checks. The role gate
// fails closed before any ownership comparison.
func Authorize(actor Actor, action Action, target Target) error {
	if !actor.Authenticated {
		return utils.ErrUnauthenticated
	}

	switch action {
	case ActionCreatePlan:
		if actor.Role != db_models.RoleTrainer {
			return utils.ErrForbidden
		}
	case ActionManagePlan:
		if actor.Role != db_models.RoleTrainer {
			return utils.ErrForbidden
		}
		if actor.ID != target.OwnerID {
			return utils.ErrNotOwner
		}
	case ActionFollow:
		if actor.Role != db_models.RoleUser {
			return utils.ErrForbidden
		}
		if actor.ID == target.OwnerID {
			return utils.ErrSelfAction
		}
	case ActionSubscribe:
		// Trainers cannot subscribe, not even to their own plans.
		if actor.Role != db_models.RoleUser {
			return utils.ErrForbidden
		}
		if actor.ID == target.OwnerID {
			return utils.ErrSelfAction
		}
	default:
		return utils.ErrForbidden
	}

	return nil
}
