package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipebox/internal/domain"
	"recipebox/internal/policy"
)

func TestAuthorizeOwned(t *testing.T) {
	author := policy.Identity{UserID: 1, Authenticated: true}
	other := policy.Identity{UserID: 2, Authenticated: true}
	anonymous := policy.Identity{}

	tests := []struct {
		name     string
		action   policy.Action
		authorID uint
		identity policy.Identity
		wantErr  error
	}{
		{"anyone can read", policy.ActionRead, 1, anonymous, nil},
		{"authenticated can create", policy.ActionCreate, 0, author, nil},
		{"anonymous cannot create", policy.ActionCreate, 0, anonymous, domain.ErrUnauthenticated},
		{"author can update", policy.ActionUpdate, 1, author, nil},
		{"non-author cannot update", policy.ActionUpdate, 1, other, domain.ErrForbidden},
		{"anonymous cannot update", policy.ActionUpdate, 1, anonymous, domain.ErrUnauthenticated},
		{"author can delete", policy.ActionDelete, 1, author, nil},
		{"non-author cannot delete", policy.ActionDelete, 1, other, domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.AuthorizeOwned(tt.action, tt.authorID, tt.identity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeCatalog(t *testing.T) {
	user := policy.Identity{UserID: 1, Authenticated: true}
	anonymous := policy.Identity{}

	assert.NoError(t, policy.AuthorizeCatalog(policy.ActionRead, anonymous))
	assert.NoError(t, policy.AuthorizeCatalog(policy.ActionCreate, user))
	assert.NoError(t, policy.AuthorizeCatalog(policy.ActionDelete, user))
	assert.ErrorIs(t, policy.AuthorizeCatalog(policy.ActionCreate, anonymous), domain.ErrUnauthenticated)
	assert.ErrorIs(t, policy.AuthorizeCatalog(policy.ActionDelete, anonymous), domain.ErrUnauthenticated)
}
