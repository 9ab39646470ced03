package auth

import (
	"errors"
	"strings"

	"casting-agency/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const claimsLocalsKey = "auth.claims"

// Claims is the decoded access token payload.
type Claims struct {
	jwt.RegisteredClaims
	Permissions []string `json:"permissions"`
}

func (c *Claims) HasPermission(scope string) bool {
	for _, p := range c.Permissions {
		if p == scope {
			return true
		}
	}
	return false
}

// Guard verifies RS256 bearer tokens against the identity provider's key set
// and enforces per-route permission scopes.
type Guard struct {
	keys   KeyProvider
	parser *jwt.Parser
	logger *logrus.Logger
}

func NewGuard(cfg config.AuthConfig, keys KeyProvider, logger *logrus.Logger) *Guard {
	return &Guard{
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithAudience(cfg.Audience),
			jwt.WithIssuer(cfg.Issuer()),
			jwt.WithExpirationRequired(),
		),
		logger: logger,
	}
}

// Require rejects the request unless it carries a valid token granting scope.
func (g *Guard) Require(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := BearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		claims, err := g.Verify(c, raw)
		if err != nil {
			return err
		}

		if err := CheckPermission(claims, scope); err != nil {
			g.logger.WithFields(logrus.Fields{
				"subject": claims.Subject,
				"scope":   scope,
				"path":    c.Path(),
			}).Warn("Permission denied")
			return err
		}

		c.Locals(claimsLocalsKey, claims)
		return c.Next()
	}
}

// Verify decodes raw, checks its signature against the key named by its kid
// and validates expiry, audience and issuer.
func (g *Guard) Verify(c *fiber.Ctx, raw string) (*Claims, error) {
	unverified, _, err := g.parser.ParseUnverified(raw, &Claims{})
	if err != nil {
		return nil, errTokenUnparseable
	}

	kid, ok := unverified.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, errKidMissing
	}

	key, err := g.keys.Key(c.UserContext(), kid)
	if err != nil {
		g.logger.WithError(err).WithField("kid", kid).Warn("Signing key lookup failed")
		return nil, errNoMatchingKey
	}

	claims := &Claims{}
	_, err = g.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	return claims, nil
}

func classifyTokenError(err error) *AuthError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return errIncorrectClaims
	default:
		return errTokenUnparseable
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errHeaderMissing
	}

	parts := strings.Fields(header)
	switch {
	case !strings.EqualFold(parts[0], "bearer"):
		return "", errHeaderNotBearer
	case len(parts) == 1:
		return "", errTokenNotFound
	case len(parts) > 2:
		return "", errHeaderMalformed
	}
	return parts[1], nil
}

// CheckPermission fails when the permissions claim is absent or lacks scope.
func CheckPermission(claims *Claims, scope string) error {
	if claims.Permissions == nil {
		return errPermissionsAbsent
	}
	if !claims.HasPermission(scope) {
		return errPermissionMissing
	}
	return nil
}

// ClaimsFromContext returns the claims stored by Require.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsLocalsKey).(*Claims)
	return claims, ok
}
