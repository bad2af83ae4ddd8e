package service

import (
	"context"
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/testutil"
	"casino-admin-be/pkg/admin/account"
	adminEvents "casino-admin-be/pkg/admin/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authFixture struct {
	svc    IAuthService
	guard  *fakeGuard
	audit  *fakeAudit
	issuer *serverutils.TokenIssuer
	db     *gorm.DB
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	factory, db := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	f := &authFixture{
		guard:  &fakeGuard{},
		audit:  &fakeAudit{},
		issuer: serverutils.NewTokenIssuer("test-secret", time.Hour),
		db:     db,
	}
	manager := account.NewManager(log, adminEvents.NewNatsPublisher(nil, log)).WithCost(bcrypt.MinCost)
	f.svc = NewAuthService(factory, manager, f.issuer, f.guard, f.audit, log)
	return f
}

func TestLoginIssuesTokenWithRolePermissions(t *testing.T) {
	f := newAuthFixture(t)
	role := testutil.CreateRole(t, f.db, "Support", "users:read", "transactions:read")
	admin := testutil.CreateAdmin(t, f.db, "support@example.com", "s3cret-pass", role.Id)

	res, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: " Support@Example.com ", Password: "s3cret-pass"}, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, admin.Id, res.Admin.Id)

	claims, err := f.issuer.Parse(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.Id.String(), claims.AdminId)
	assert.Equal(t, role.Id.String(), claims.RoleId)
	assert.ElementsMatch(t, []string{"users:read", "transactions:read"}, claims.Permissions)
	assert.NotEmpty(t, claims.ID)

	assert.Equal(t, 1, f.guard.resets)
	assert.Contains(t, f.audit.Actions(), "auth.login")
}

func TestLoginFailures(t *testing.T) {
	f := newAuthFixture(t)
	role := testutil.CreateRole(t, f.db, "Support", "users:read")
	testutil.CreateAdmin(t, f.db, "support@example.com", "s3cret-pass", role.Id)
	suspended := testutil.CreateAdmin(t, f.db, "gone@example.com", "s3cret-pass", role.Id)
	require.NoError(t, f.db.Model(suspended).Update("status", "suspended").Error)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, dto.LoginRequest{Email: "support@example.com", Password: "wrong"}, "")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = f.svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"}, "")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Equal(t, 2, f.guard.failures)

	_, err = f.svc.Login(ctx, dto.LoginRequest{Email: "gone@example.com", Password: "s3cret-pass"}, "")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Equal(t, 2, f.guard.failures, "suspended accounts do not count as failed attempts")

	f.guard.blocked = true
	_, err = f.svc.Login(ctx, dto.LoginRequest{Email: "support@example.com", Password: "s3cret-pass"}, "")
	assert.ErrorIs(t, err, apperror.ErrTooManyRequests)
}

func TestLogoutRevokesTokenId(t *testing.T) {
	f := newAuthFixture(t)
	role := testutil.CreateRole(t, f.db, "Support", "users:read")
	admin := testutil.CreateAdmin(t, f.db, "support@example.com", "s3cret-pass", role.Id)

	_, claims, err := f.issuer.Issue(admin.Id, admin.Email, role.Id, nil)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), claims))
	assert.Equal(t, []string{claims.ID}, f.guard.revoked)

	assert.ErrorIs(t, f.svc.Logout(context.Background(), nil), apperror.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	role := testutil.CreateRole(t, f.db, "Support", "users:read")
	admin := testutil.CreateAdmin(t, f.db, "support@example.com", "old-password", role.Id)
	ctx := context.Background()
	actor := dto.Actor{AdminId: admin.Id, Email: admin.Email}

	err := f.svc.ChangePassword(ctx, actor, dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "new-password"})
	require.Error(t, err)
	assert.Contains(t, apperror.Fields(err), "current_password")

	require.NoError(t, f.svc.ChangePassword(ctx, actor, dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}))

	_, err = f.svc.Login(ctx, dto.LoginRequest{Email: admin.Email, Password: "new-password"}, "")
	assert.NoError(t, err)
}
