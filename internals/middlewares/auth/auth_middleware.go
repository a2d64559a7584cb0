// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"uniberg_backend/internals/configs"
	helper "uniberg_backend/internals/helpers"
)

// StaffClaims is the shape of a staff token issued by the identity side.
// This service does not mint or refresh tokens; it only trusts the
// privilege label a verified token carries.
type StaffClaims struct {
	StaffID        string `json:"staff_id"`
	PrivilegeLevel string `json:"privilege_level"`
	jwt.RegisteredClaims
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("missing Authorization header")
}

func parseStaffClaims(tokenString string) (*StaffClaims, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, errors.New("missing JWT secret")
	}
	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// AuthRequired rejects requests without a valid staff token and stores
// staff_id + privilege_level in locals.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		claims, err := parseStaffClaims(tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		setLocals(c, claims)
		return c.Next()
	}
}

// AuthOptional parses a staff token when present but lets anonymous
// requests through; grade views are reachable by students without a token
// and fall back to the balance check.
func AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		if claims, err := parseStaffClaims(tokenString); err == nil {
			setLocals(c, claims)
		}
		return c.Next()
	}
}

func setLocals(c *fiber.Ctx, claims *StaffClaims) {
	if id, err := uuid.Parse(claims.StaffID); err == nil {
		c.Locals(helper.LocalsStaffID, id)
	}
	c.Locals(helper.LocalsPrivilege, claims.PrivilegeLevel)
}
