package serverutils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"casino-admin-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type revokedSet map[string]bool

func (r revokedSet) IsRevoked(_ context.Context, jti string) bool { return r[jti] }

type inactiveSet map[uuid.UUID]bool

func (s inactiveSet) IsActive(_ context.Context, adminId uuid.UUID) bool { return !s[adminId] }

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	adminId, roleId := uuid.New(), uuid.New()

	token, claims, err := issuer.Issue(adminId, "ops@example.com", roleId, []string{"bonuses:read"})
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, adminId, parsed.AdminUUID())
	assert.Equal(t, roleId.String(), parsed.RoleId)

	_, err = NewTokenIssuer("other", time.Hour).Parse(token)
	assert.Error(t, err)

	expired, _, err := NewTokenIssuer("secret", -time.Minute).Issue(adminId, "x@example.com", roleId, nil)
	require.NoError(t, err)
	_, err = issuer.Parse(expired)
	assert.Error(t, err)
}

func TestJwtMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	adminId := uuid.New()
	token, claims, err := issuer.Issue(adminId, "ops@example.com", uuid.New(), nil)
	require.NoError(t, err)

	revoked := revokedSet{}
	inactive := inactiveSet{}
	app := fiber.New()
	app.Get("/me", JwtMiddleware(issuer, revoked, inactive), func(c *fiber.Ctx) error {
		return c.SendString(CurrentAdmin(c).Email)
	})

	req := httptest.NewRequest("GET", "/me", nil)
	resp, _ := app.Test(req, -1)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	// query tokens are only read on a websocket handshake
	req = httptest.NewRequest("GET", "/me?token="+token, nil)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me?token="+token, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	inactive[adminId] = true
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 401, resp.StatusCode)
	delete(inactive, adminId)

	revoked[claims.ID] = true
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 401, resp.StatusCode)
}

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Amount int    `json:"amount" validate:"gt=0"`
}

func TestValidateUsesJSONNames(t *testing.T) {
	err := Validate(&sampleRequest{Email: "nope"})
	require.Error(t, err)
	fields := apperror.Fields(err)
	assert.Equal(t, "must be a valid email", fields["email"])
	assert.Equal(t, "must be greater than 0", fields["amount"])

	assert.NoError(t, Validate(&sampleRequest{Email: "a@b.co", Amount: 1}))
}

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperror.NotFound("bonus"), 404},
		{fmt.Errorf("wrap: %w", apperror.Conflict("dup")), 409},
		{apperror.Field("code", "bad"), 422},
		{apperror.BadRequest("bad"), 400},
		{apperror.Forbidden("no"), 403},
		{apperror.TooManyRequests("slow down"), 429},
		{fmt.Errorf("db exploded"), 500},
		{fiber.ErrMethodNotAllowed, 405},
	}
	for _, tc := range cases {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
		err := tc.err
		app.Get("/", func(c *fiber.Ctx) error { return err })
		resp, _ := app.Test(httptest.NewRequest("GET", "/", nil), -1)
		assert.Equal(t, tc.status, resp.StatusCode, tc.err.Error())

		var body BaseResponse[any]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		if tc.status == 500 {
			assert.Equal(t, "Internal server error", body.Message)
		}
	}
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/", func(c *fiber.Ctx) error {
		var req sampleRequest
		if err := BindAndValidate(c, &req); err != nil {
			return err
		}
		return c.JSON(SuccessResponse("ok", req))
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","amount":3}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"email":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req, -1)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10}, NormalizePage(0, 0))
	assert.Equal(t, Page{Page: 3, Limit: 100}, NormalizePage(3, 500))
	assert.Equal(t, 40, NormalizePage(3, 20).Offset())
}
