package serverutils

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const adminClaimsKey = "admin_claims"

type AdminClaims struct {
	AdminId     string   `json:"admin_id"`
	Email       string   `json:"email"`
	RoleId      string   `json:"role_id"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

func (c *AdminClaims) AdminUUID() uuid.UUID {
	id, _ := uuid.Parse(c.AdminId)
	return id
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(adminId uuid.UUID, email string, roleId uuid.UUID, permissions []string) (string, *AdminClaims, error) {
	now := time.Now().UTC()
	claims := &AdminClaims{
		AdminId:     adminId.String(),
		Email:       email,
		RoleId:      roleId.String(),
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminId.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (t *TokenIssuer) Parse(tokenStr string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// AdminStatusChecker reports whether the admin behind a token is still active.
type AdminStatusChecker interface {
	IsActive(ctx context.Context, adminId uuid.UUID) bool
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	// browsers cannot set headers on a websocket handshake
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Query("token")
	}
	return ""
}

// JwtMiddleware authenticates the request. revocations and admins may be nil.
func JwtMiddleware(issuer *TokenIssuer, revocations RevocationChecker, admins AdminStatusChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
		}

		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}
		if revocations != nil && revocations.IsRevoked(ctx.UserContext(), claims.ID) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Token has been revoked"))
		}
		if admins != nil && !admins.IsActive(ctx.UserContext(), claims.AdminUUID()) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Account is suspended or deleted"))
		}

		ctx.Locals(adminClaimsKey, claims)
		return ctx.Next()
	}
}

// CurrentAdmin returns the claims stored by JwtMiddleware, or nil.
func CurrentAdmin(ctx *fiber.Ctx) *AdminClaims {
	claims, _ := ctx.Locals(adminClaimsKey).(*AdminClaims)
	return claims
}
