package authz_test

import (
	"testing"

	"ticketbari/internal/pkg/authz"
	"ticketbari/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	vendor := authz.Identity{Email: "vendor@test.com", Role: authz.RoleVendor}

	testCases := []struct {
		name     string
		identity authz.Identity
		rules    []authz.Rule
		kind     errors.Kind
	}{
		{
			name:     "vendor owns booking",
			identity: vendor,
			rules:    []authz.Rule{authz.RequireRole(authz.RoleVendor), authz.RequireOwner("VENDOR@test.com")},
		},
		{
			name:     "vendor does not own booking",
			identity: vendor,
			rules:    []authz.Rule{authz.RequireRole(authz.RoleVendor), authz.RequireOwner("other@test.com")},
			kind:     errors.KindForbidden,
		},
		{
			name:     "user cannot act as vendor",
			identity: authz.Identity{Email: "user@test.com", Role: authz.RoleUser},
			rules:    []authz.Rule{authz.RequireRole(authz.RoleVendor)},
			kind:     errors.KindForbidden,
		},
		{
			name:     "fraud vendor",
			identity: authz.Identity{Email: "vendor@test.com", Role: authz.RoleVendor, IsFraud: true},
			rules:    []authz.Rule{authz.RequireRole(authz.RoleVendor)},
			kind:     errors.KindForbidden,
		},
		{
			name:     "anonymous",
			identity: authz.Identity{},
			kind:     errors.KindUnauthorized,
		},
		{
			name:     "empty owner never matches",
			identity: vendor,
			rules:    []authz.Rule{authz.RequireOwner("")},
			kind:     errors.KindForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := authz.Check(tc.identity, tc.rules...)
			if tc.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)
		})
	}
}
