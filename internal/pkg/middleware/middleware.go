package middleware

import (
	"fmt"
	"strings"

	"ticketbari/internal/module/booking/repositories"
	"ticketbari/internal/pkg/authz"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const IdentityKey = "identity"

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

// ValidateToken resolves the bearer token into an authz.Identity stored in
// the request locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get(fiber.HeaderAuthorization)
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing authorization header"))
	}

	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error parse bearer token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("malformed authorization header"))
	}

	resp, err := m.Repo.ValidateToken(ctx.UserContext(), strings.TrimSpace(token))
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	user, err := m.Repo.FindUserByEmail(ctx.UserContext(), resp.Email)
	if errors.Is(err, errors.KindNotFound) {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("token subject %s has no account", resp.Email))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("unknown user"))
	}
	if err != nil {
		return helpers.RespError(ctx, m.Log, err)
	}

	ctx.Locals(IdentityKey, authz.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		IsFraud: user.IsFraud,
	})

	return ctx.Next()
}

// Identity returns the caller resolved by ValidateToken, or the zero
// identity, which authz.Check rejects.
func Identity(ctx *fiber.Ctx) authz.Identity {
	id, _ := ctx.Locals(IdentityKey).(authz.Identity)
	return id
}
