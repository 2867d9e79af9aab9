package policy

import (
	"studyboard/internal/domain/entity"
	"studyboard/internal/utils/apierror"
)

// ContentPolicy encapsulates the ownership rules for posts and replies.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type ContentPolicy struct{}

func NewContentPolicy() *ContentPolicy {
	return &ContentPolicy{}
}

// CanMutate decides whether 'actor' may delete or otherwise mutate a
// resource authored by ownerID. Only the owner and admins qualify.
//
// A nil actor yields 401, a present-but-unprivileged actor yields 403;
// the two outcomes stay distinguishable all the way to the client.
func (p *ContentPolicy) CanMutate(actor *entity.User, ownerID int64) apierror.ErrorResponse {
	if actor == nil {
		return apierror.UnauthorizedError
	}

	if actor.ID == ownerID || actor.IsAdmin {
		return nil
	}
	return apierror.NewForbiddenError("only the author or an admin may modify this resource")
}

// RequireAdmin gates admin-only operations. Fails closed.
func (p *ContentPolicy) RequireAdmin(actor *entity.User) apierror.ErrorResponse {
	if actor == nil {
		return apierror.UnauthorizedError
	}

	if !actor.IsAdmin {
		return apierror.NewForbiddenError("admin privileges required")
	}
	return nil
}
