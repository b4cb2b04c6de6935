package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/auth"
	"github.com/party-model/backend/internal/http/dto"
	"github.com/party-model/backend/internal/logging"
	"github.com/party-model/backend/internal/rbac"
)

const CtxPrincipal = "principal"

// AuthMiddleware turns the bearer token into an rbac.Principal. The role
// is not checked here; unknown roles are denied by policy.
func AuthMiddleware(secret string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing authorization header")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return unauthorized(c, "invalid authorization format")
		}

		claims, err := auth.ParseJWT(secret, tokenStr)
		if err != nil {
			logging.FromContext(c.UserContext(), log).Debug("jwt parse error", zap.Error(err))
			return unauthorized(c, "invalid or expired token")
		}

		p := rbac.Principal{ID: claims.UserID, Role: claims.Role}
		c.Locals(CtxPrincipal, p)

		reqLog := logging.FromContext(c.UserContext(), log).With(
			zap.Int64("user_id", p.ID),
			zap.String("role", p.Role),
		)
		c.SetUserContext(logging.WithLogger(c.UserContext(), reqLog))

		return c.Next()
	}
}

func GetPrincipal(c *fiber.Ctx) rbac.Principal {
	p, _ := c.Locals(CtxPrincipal).(rbac.Principal)
	return p
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg, RequestID: GetRequestID(c)})
}
