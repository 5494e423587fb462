// Package policy decides whether an identity may perform an action on a
// resource. It is a pure decision layer consulted by the controllers;
// route middleware additionally rejects unauthenticated requests before
// they reach a handler.
package policy

import "recipebox/internal/domain"

type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// Identity is the requester as seen by the core logic. UserID is only
// meaningful when Authenticated is true.
type Identity struct {
	UserID        uint
	Authenticated bool
}

// AuthorizeOwned governs authored resources (recipes, comments): reads are
// public, creation needs authentication, update and delete need ownership.
func AuthorizeOwned(action Action, authorID uint, id Identity) error {
	switch action {
	case ActionRead:
		return nil
	case ActionCreate:
		if !id.Authenticated {
			return domain.ErrUnauthenticated
		}
		return nil
	default:
		if !id.Authenticated {
			return domain.ErrUnauthenticated
		}
		if id.UserID != authorID {
			return domain.ErrForbidden
		}
		return nil
	}
}

// AuthorizeCatalog governs shared lookup data (tags, ingredients): reads
// are public, any mutation needs authentication but not ownership.
func AuthorizeCatalog(action Action, id Identity) error {
	if action == ActionRead {
		return nil
	}
	if !id.Authenticated {
		return domain.ErrUnauthenticated
	}
	return nil
}
