package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// signingKey reads BYTE_KEY on every use so a key loaded from .env after
// package init is still picked up.
func signingKey() []byte {
	return []byte(os.Getenv("BYTE_KEY"))
}

const (
	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims bind a token to exactly one principal record of one kind.
type Claims struct {
	PrincipalID int    `json:"principal_id"`
	Kind        string `json:"kind"`
	TokenType   string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateTokenPair issues a short-lived access token and a longer-lived
// refresh token for the given principal.
func GenerateTokenPair(principalID int, kind string) (access string, refresh string, err error) {
	access, err = signToken(principalID, kind, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return "", "", err
	}

	refresh, err = signToken(principalID, kind, tokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func signToken(principalID int, kind, tokenType string, ttl time.Duration) (string, error) {
	claims := &Claims{
		PrincipalID: principalID,
		Kind:        kind,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func VerifyJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// VerifyRefreshToken validates a refresh token and returns the principal it
// was issued for.
func VerifyRefreshToken(tokenString string) (*domain.Principal, error) {
	claims, err := VerifyJWT(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, fmt.Errorf("not a refresh token")
	}
	return &domain.Principal{ID: claims.PrincipalID, Kind: claims.Kind}, nil
}

// AuthRequired resolves the bearer token to a principal and stores it in
// the request locals. Requests failing resolution never reach a handler.
func AuthRequired(c *fiber.Ctx) error {
	token := c.Get("Authorization")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No token provided",
		})
	}
	token = strings.TrimPrefix(token, "Bearer ")

	claims, err := VerifyJWT(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	if claims.TokenType != tokenTypeAccess {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	c.Locals("principal", &domain.Principal{
		ID:   claims.PrincipalID,
		Kind: claims.Kind,
	})

	return c.Next()
}

// KindRequired rejects any authenticated principal that is not of the
// required kind.
func KindRequired(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := c.Locals("principal").(*domain.Principal)
		if !ok || principal.Kind != kind {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": domain.ErrForbidden.Error(),
			})
		}
		return c.Next()
	}
}

// GetPrincipal pulls the authenticated principal out of the request locals.
func GetPrincipal(c *fiber.Ctx) (*domain.Principal, error) {
	principal, ok := c.Locals("principal").(*domain.Principal)
	if !ok {
		return nil, fmt.Errorf("no authenticated principal")
	}
	return principal, nil
}
