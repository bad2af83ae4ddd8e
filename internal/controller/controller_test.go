package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/mailer"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"
	"casino-admin-be/internal/testutil"
	"casino-admin-be/pkg/admin/account"
	"casino-admin-be/pkg/admin/apikey"
	"casino-admin-be/pkg/admin/banner"
	"casino-admin-be/pkg/admin/bonus"
	"casino-admin-be/pkg/admin/cashback"
	adminEvents "casino-admin-be/pkg/admin/events"
	"casino-admin-be/pkg/admin/promotion"
	"casino-admin-be/pkg/admin/role"
	"casino-admin-be/pkg/admin/utm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type nopAudit struct{}

func (nopAudit) Record(context.Context, dto.Actor, string, string, string, map[string]interface{}) {}

func (nopAudit) GetAuditLogs(context.Context, dto.AuditLogListRequest) (*serverutils.PaginatedData[dto.AuditLogResponse], error) {
	return nil, nil
}

type testApp struct {
	app       *fiber.App
	db        *gorm.DB
	issuer    *serverutils.TokenIssuer
	apiKeys   service.IApiKeyService
	marketing uuid.UUID
	support   uuid.UUID
	owner     uuid.UUID
	analyst   uuid.UUID
	bonusDesk uuid.UUID
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	factory, db := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	events := adminEvents.NewNatsPublisher(nil, log)

	var roles []*entity.Role
	for _, r := range []*model.Role{
		testutil.CreateRole(t, db, "Marketing", "banners:write"),
		testutil.CreateRole(t, db, "Support", "users:read"),
		testutil.CreateRole(t, db, "Owner", "admins:write"),
		testutil.CreateRole(t, db, "Analyst", "bonuses:read", "cashback:read"),
		testutil.CreateRole(t, db, "Bonus desk", "bonuses:write", "cashback:write"),
	} {
		roles = append(roles, &entity.Role{Id: r.Id, Name: r.Name, Permissions: r.Permissions})
	}
	enforcer, err := rbac.NewEnforcer(log)
	require.NoError(t, err)
	require.NoError(t, enforcer.Load(roles))

	statuses := account.NewStatusCache(factory, time.Minute)
	accountManager := account.NewManager(log, events).WithCost(bcrypt.MinCost).WithStatusCache(statuses)
	adminService := service.NewAdminService(factory, log, accountManager, role.NewManager(log), enforcer,
		mailer.NewEmailService("", 0, "", "", "", "", log), nopAudit{})

	bannerService := service.NewBannerService(factory, log, banner.NewManager(log), nopAudit{})
	apiKeyService := service.NewApiKeyService(factory, log, apikey.NewManager(log, events), nopAudit{})
	promotionService := service.NewPromotionService(factory, log, promotion.NewManager(log, events), nopAudit{})
	utmService := service.NewUtmService(factory, log, utm.NewReporter())

	issuer := serverutils.NewTokenIssuer("test-secret", time.Hour)
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler})
	secured := app.Group("/api/admin", serverutils.JwtMiddleware(issuer, nil, statuses))
	NewBannerController(bannerService, enforcer).RegisterRoutes(secured)
	NewAdminController(adminService, enforcer).RegisterRoutes(secured)
	NewBonusController(service.NewBonusService(factory, log, bonus.NewManager(log, events), nopAudit{}), enforcer).RegisterRoutes(secured)
	NewCashbackController(service.NewCashbackService(factory, log, cashback.NewManager(log), nopAudit{}), enforcer).RegisterRoutes(secured)
	NewPublicController(apiKeyService, bannerService, promotionService, utmService).RegisterRoutes(app.Group("/api/v1"))

	return &testApp{
		app:       app,
		db:        db,
		issuer:    issuer,
		apiKeys:   apiKeyService,
		marketing: roles[0].Id,
		support:   roles[1].Id,
		owner:     roles[2].Id,
		analyst:   roles[3].Id,
		bonusDesk: roles[4].Id,
	}
}

// tokenFor issues a token for an existing admin row.
func (a *testApp) tokenFor(t *testing.T, admin *model.Admin) string {
	t.Helper()
	tok, _, err := a.issuer.Issue(admin.Id, admin.Email, admin.RoleId, nil)
	require.NoError(t, err)
	return tok
}

// token creates a fresh active admin with roleId and signs a token for it.
func (a *testApp) token(t *testing.T, roleId uuid.UUID) string {
	t.Helper()
	admin := testutil.CreateAdmin(t, a.db, uuid.NewString()+"@example.com", "password1", roleId)
	return a.tokenFor(t, admin)
}

func (a *testApp) do(t *testing.T, req *http.Request) (int, serverutils.BaseResponse[json.RawMessage]) {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out serverutils.BaseResponse[json.RawMessage]
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

const bannerBody = `{"title":"Welcome","image_url":"https://cdn.example.com/w.png","placement":"home","is_active":true}`

func TestAdminRoutesRequireToken(t *testing.T) {
	a := newTestApp(t)

	status, res := a.do(t, httptest.NewRequest(http.MethodGet, "/api/admin/banners", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, res.Success)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/banners", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	status, _ = a.do(t, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestBannerRoutesEnforcePermissions(t *testing.T) {
	a := newTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/admin/banners", bannerBody)
	req.Header.Set("Authorization", "Bearer "+a.token(t, a.support))
	status, res := a.do(t, req)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Missing permission banners:write", res.Message)

	req = jsonRequest(http.MethodPost, "/api/admin/banners", bannerBody)
	req.Header.Set("Authorization", "Bearer "+a.token(t, a.marketing))
	status, res = a.do(t, req)
	require.Equal(t, fiber.StatusCreated, status)
	assert.True(t, res.Success)

	// write implies read
	req = httptest.NewRequest(http.MethodGet, "/api/admin/banners?placement=home", nil)
	req.Header.Set("Authorization", "Bearer "+a.token(t, a.marketing))
	status, res = a.do(t, req)
	require.Equal(t, fiber.StatusOK, status)
	var page serverutils.PaginatedData[dto.BannerResponse]
	require.NoError(t, json.Unmarshal(res.Data, &page))
	assert.EqualValues(t, 1, page.Total)
}

func TestBannerValidationErrors(t *testing.T) {
	a := newTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/admin/banners", `{"title":"","image_url":"nope","placement":"moon"}`)
	req.Header.Set("Authorization", "Bearer "+a.token(t, a.marketing))
	status, res := a.do(t, req)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, res.Errors, "placement")

	req = httptest.NewRequest(http.MethodGet, "/api/admin/banners/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+a.token(t, a.marketing))
	status, _ = a.do(t, req)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestPublicRoutesRequireScopedApiKey(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	key, err := a.apiKeys.CreateApiKey(ctx, dto.Actor{}, dto.ApiKeyRequest{Name: "site", Scopes: []string{entity.ScopeUtmWrite}})
	require.NoError(t, err)

	status, _ := a.do(t, jsonRequest(http.MethodPost, "/api/v1/tracking/utm", `{"event":"visit"}`))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req := jsonRequest(http.MethodPost, "/api/v1/tracking/utm", `{"event":"visit","utm_source":"google"}`)
	req.Header.Set(ApiKeyHeader, key.Key)
	status, res := a.do(t, req)
	require.Equal(t, fiber.StatusCreated, status)
	assert.True(t, res.Success)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/banners", nil)
	req.Header.Set(ApiKeyHeader, key.Key)
	status, _ = a.do(t, req)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestSuspendedOrDeletedAdminLosesAccess(t *testing.T) {
	a := newTestApp(t)
	owner := a.token(t, a.owner)
	suspended := testutil.CreateAdmin(t, a.db, "suspended@example.com", "password1", a.marketing)
	deleted := testutil.CreateAdmin(t, a.db, "deleted@example.com", "password1", a.marketing)

	createBanner := func(token string) int {
		req := jsonRequest(http.MethodPost, "/api/admin/banners", bannerBody)
		req.Header.Set("Authorization", "Bearer "+token)
		status, _ := a.do(t, req)
		return status
	}
	suspendedToken := a.tokenFor(t, suspended)
	deletedToken := a.tokenFor(t, deleted)
	require.Equal(t, fiber.StatusCreated, createBanner(suspendedToken))
	require.Equal(t, fiber.StatusCreated, createBanner(deletedToken))

	req := jsonRequest(http.MethodPut, "/api/admin/admins/"+suspended.Id.String()+"/status", `{"status":"suspended"}`)
	req.Header.Set("Authorization", "Bearer "+owner)
	status, _ := a.do(t, req)
	require.Equal(t, fiber.StatusOK, status)

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/admins/"+deleted.Id.String(), nil)
	req.Header.Set("Authorization", "Bearer "+owner)
	status, _ = a.do(t, req)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, fiber.StatusUnauthorized, createBanner(suspendedToken))
	assert.Equal(t, fiber.StatusUnauthorized, createBanner(deletedToken))

	// a valid signature for an admin that never existed
	ghost, _, err := a.issuer.Issue(uuid.New(), "ghost@example.com", a.marketing, nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, createBanner(ghost))
}

func TestBonusStatusAndEstimateRoutes(t *testing.T) {
	a := newTestApp(t)
	desk := a.token(t, a.bonusDesk)
	analyst := a.token(t, a.analyst)

	body := `{"code":"welcome100","name":"Welcome","type":"deposit_match","reward":{"percentage":100,"max_amount":200},` +
		`"wagering_multiplier":30,"min_deposit":20,"max_claims_per_user":1,"starts_at":"2020-01-01T00:00:00Z"}`
	req := jsonRequest(http.MethodPost, "/api/admin/bonuses", body)
	req.Header.Set("Authorization", "Bearer "+desk)
	status, res := a.do(t, req)
	require.Equal(t, fiber.StatusCreated, status, res.Message)
	var created dto.BonusResponse
	require.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Equal(t, "WELCOME100", created.Code)
	assert.Equal(t, "draft", created.Status)

	setStatus := func(to string) int {
		req := jsonRequest(http.MethodPut, "/api/admin/bonuses/"+created.Id.String()+"/status", `{"status":"`+to+`"}`)
		req.Header.Set("Authorization", "Bearer "+desk)
		status, _ := a.do(t, req)
		return status
	}
	assert.Equal(t, fiber.StatusOK, setStatus("active"))
	assert.Equal(t, fiber.StatusOK, setStatus("expired"))
	assert.Equal(t, fiber.StatusConflict, setStatus("active"), "expired is terminal")

	// estimate is a read even though it is a POST
	req = jsonRequest(http.MethodPost, "/api/admin/bonuses/"+created.Id.String()+"/estimate", `{"deposit":500}`)
	req.Header.Set("Authorization", "Bearer "+analyst)
	status, res = a.do(t, req)
	require.Equal(t, fiber.StatusOK, status, res.Message)
	var estimate dto.BonusEstimateResponse
	require.NoError(t, json.Unmarshal(res.Data, &estimate))
	assert.True(t, estimate.Eligible)
	assert.Equal(t, 200.0, estimate.Credited)

	req = jsonRequest(http.MethodPut, "/api/admin/bonuses/"+created.Id.String()+"/status", `{"status":"paused"}`)
	req.Header.Set("Authorization", "Bearer "+analyst)
	status, _ = a.do(t, req)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestCashbackPreviewRoute(t *testing.T) {
	a := newTestApp(t)
	desk := a.token(t, a.bonusDesk)
	analyst := a.token(t, a.analyst)

	body := `{"name":"Weekly","period":"weekly","tiers":[` +
		`{"min_loss":0,"max_loss":100,"percentage":5,"max_payout":0},` +
		`{"min_loss":100,"percentage":10,"max_payout":50}]}`
	req := jsonRequest(http.MethodPost, "/api/admin/cashback", body)
	req.Header.Set("Authorization", "Bearer "+desk)
	status, res := a.do(t, req)
	require.Equal(t, fiber.StatusCreated, status, res.Message)
	var program dto.CashbackResponse
	require.NoError(t, json.Unmarshal(res.Data, &program))

	preview := func(netLoss string) dto.CashbackPreviewResponse {
		req := jsonRequest(http.MethodPost, "/api/admin/cashback/"+program.Id.String()+"/preview", `{"net_loss":`+netLoss+`}`)
		req.Header.Set("Authorization", "Bearer "+analyst)
		status, res := a.do(t, req)
		require.Equal(t, fiber.StatusOK, status, res.Message)
		var out dto.CashbackPreviewResponse
		require.NoError(t, json.Unmarshal(res.Data, &out))
		return out
	}
	low := preview("40")
	assert.Equal(t, 0, low.TierIndex)
	assert.Equal(t, 2.0, low.Cashback)

	high := preview("900")
	assert.Equal(t, 1, high.TierIndex)
	assert.Equal(t, 50.0, high.Cashback, "capped by max_payout")

	none := preview("-10")
	assert.Equal(t, -1, none.TierIndex)

	req = jsonRequest(http.MethodPost, "/api/admin/cashback/"+uuid.NewString()+"/preview", `{"net_loss":10}`)
	req.Header.Set("Authorization", "Bearer "+analyst)
	status, _ = a.do(t, req)
	assert.Equal(t, fiber.StatusNotFound, status)
}
