// Package authz is the single capability check applied before every
// mutating booking or payment operation.
package authz

import (
	"fmt"
	"strings"

	"ticketbari/internal/pkg/errors"
)

const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

// Identity is the authenticated caller resolved by the token middleware.
type Identity struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsFraud bool   `json:"is_fraud"`
}

// Rule is one requirement an identity must satisfy.
type Rule func(Identity) error

func RequireRole(roles ...string) Rule {
	return func(id Identity) error {
		for _, r := range roles {
			if id.Role == r {
				return nil
			}
		}
		return errors.ForbiddenError(fmt.Sprintf("role %q is not allowed, need one of %s", id.Role, strings.Join(roles, ",")))
	}
}

// RequireOwner passes when the identity's email matches ownerEmail.
func RequireOwner(ownerEmail string) Rule {
	return func(id Identity) error {
		if ownerEmail == "" || !strings.EqualFold(id.Email, ownerEmail) {
			return errors.ForbiddenError("identity does not own this resource")
		}
		return nil
	}
}

// Check fails with a Forbidden error on the first unmet rule. Fraud-flagged
// and anonymous identities never pass.
func Check(id Identity, rules ...Rule) error {
	if id.Email == "" {
		return errors.UnauthorizedError("missing identity")
	}
	if id.IsFraud {
		return errors.ForbiddenError("account is flagged as fraud")
	}
	for _, rule := range rules {
		if err := rule(id); err != nil {
			return err
		}
	}
	return nil
}
