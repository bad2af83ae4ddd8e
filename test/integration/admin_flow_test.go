package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"casino-admin-be/internal/bootstrap"
	"casino-admin-be/internal/config"
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/server"
	"casino-admin-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// TestAdminFlow runs login and an RBAC guarded route against a real postgres.
func TestAdminFlow(t *testing.T) {
	// tests run in the package dir
	_ = godotenv.Load("../../.env")
	t.Setenv("STORAGE_BUCKET_URL", "mem://")
	t.Setenv("REDIS_URL", "")
	t.Setenv("NATS_URL", "")

	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	hash, err := bcrypt.GenerateFromPassword([]byte("support123"), bcrypt.MinCost)
	require.NoError(t, err)

	suffix := uuid.NewString()[:8]
	role := &model.Role{Name: "Support " + suffix, Permissions: datatypes.NewJSONSlice([]string{"users:read"})}
	require.NoError(t, db.Create(role).Error)
	admin := &model.Admin{
		Email:        "support-" + suffix + "@example.com",
		FullName:     "Support Agent",
		PasswordHash: string(hash),
		RoleId:       role.Id,
		Status:       "active",
	}
	require.NoError(t, db.Create(admin).Error)
	defer func() {
		db.Unscoped().Delete(&model.Admin{}, "id = ?", admin.Id)
		db.Unscoped().Delete(&model.Role{}, "id = ?", role.Id)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the policy is loaded at startup, so the container comes after seeding
	container, err := bootstrap.NewContainer(ctx, db, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	container.Start(ctx)
	defer container.Close()

	app := server.New(cfg, container).GetApp()

	var token string
	t.Run("Login succeeds", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{Email: admin.Email, Password: "support123"})
		req := httptest.NewRequest("POST", "/api/admin/auth/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[dto.LoginResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Data.AccessToken)
		token = result.Data.AccessToken
	})

	t.Run("Wrong password is rejected", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{Email: admin.Email, Password: "wrong-password"})
		req := httptest.NewRequest("POST", "/api/admin/auth/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Role permissions are enforced", func(t *testing.T) {
		require.NotEmpty(t, token)

		req := httptest.NewRequest("GET", "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		req = httptest.NewRequest("GET", "/api/admin/bonuses", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err = app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})
}
