package service

import "campusconnect/internal/model"

// CanMutate is the single ownership-or-role predicate every mutating
// handler path composes instead of re-deriving its own check: the actor
// may touch the resource when they own it or when their store-resolved
// role is ADMIN.
func CanMutate(actorID uint64, actorRole string, ownerID uint64) bool {
	return actorID == ownerID || actorRole == model.RoleAdmin
}
