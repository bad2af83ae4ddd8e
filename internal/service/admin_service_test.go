package service

import (
	"context"
	"testing"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/mailer"
	"casino-admin-be/internal/testutil"
	"casino-admin-be/pkg/admin/account"
	adminEvents "casino-admin-be/pkg/admin/events"
	"casino-admin-be/pkg/admin/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAdminService(t *testing.T) (IAdminService, *fakePolicy, *fakeAudit, *gorm.DB) {
	t.Helper()
	factory, db := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	policy := &fakePolicy{}
	audit := &fakeAudit{}
	accounts := account.NewManager(log, adminEvents.NewNatsPublisher(nil, log)).WithCost(bcrypt.MinCost)
	emails := mailer.NewEmailService("", 0, "", "", "", "", log)
	svc := NewAdminService(factory, log, accounts, role.NewManager(log), policy, emails, audit)
	return svc, policy, audit, db
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	svc, _, audit, db := newAdminService(t)
	r := testutil.CreateRole(t, db, "Support", "users:read")
	ctx := context.Background()

	req := dto.CreateAdminRequest{Email: "New@Example.com", FullName: "New Admin", Password: "long-enough", RoleId: r.Id}
	created, err := svc.CreateAdmin(ctx, dto.Actor{}, req)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", created.Email)
	require.NotNil(t, created.Role)
	assert.Equal(t, "Support", created.Role.Name)

	_, err = svc.CreateAdmin(ctx, dto.Actor{}, req)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	req.Email = "other@example.com"
	req.RoleId = uuid.New()
	_, err = svc.CreateAdmin(ctx, dto.Actor{}, req)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Fields(err), "role_id")

	assert.Equal(t, []string{"admin.create"}, audit.Actions())
}

func TestAdminCannotSuspendOrDeleteSelf(t *testing.T) {
	svc, _, _, db := newAdminService(t)
	r := testutil.CreateRole(t, db, "Support", "users:read")
	me := testutil.CreateAdmin(t, db, "me@example.com", "password1", r.Id)
	other := testutil.CreateAdmin(t, db, "other@example.com", "password1", r.Id)
	ctx := context.Background()
	actor := dto.Actor{AdminId: me.Id, Email: me.Email}

	_, err := svc.ChangeAdminStatus(ctx, actor, me.Id, dto.UpdateAdminStatusRequest{Status: "suspended"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.ErrorIs(t, svc.DeleteAdmin(ctx, actor, me.Id), apperror.ErrBadRequest)

	res, err := svc.ChangeAdminStatus(ctx, actor, other.Id, dto.UpdateAdminStatusRequest{Status: "suspended"})
	require.NoError(t, err)
	assert.Equal(t, "suspended", res.Status)

	require.NoError(t, svc.DeleteAdmin(ctx, actor, other.Id))
	_, err = svc.GetAdmin(ctx, other.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRoleChangesReloadPolicy(t *testing.T) {
	svc, policy, _, db := newAdminService(t)
	ctx := context.Background()

	created, err := svc.CreateRole(ctx, dto.Actor{}, dto.RoleRequest{Name: "Marketing", Permissions: []string{"banners:write"}})
	require.NoError(t, err)
	assert.Equal(t, 1, policy.loads)
	require.Len(t, policy.last, 1)
	assert.Equal(t, "Marketing", policy.last[0].Name)

	_, err = svc.UpdateRole(ctx, dto.Actor{}, created.Id, dto.RoleRequest{Name: "Marketing", Permissions: []string{"banners:write", "utm:read"}})
	require.NoError(t, err)
	assert.Equal(t, 2, policy.loads)
	assert.ElementsMatch(t, []string{"banners:write", "utm:read"}, policy.last[0].Permissions)

	_, err = svc.CreateRole(ctx, dto.Actor{}, dto.RoleRequest{Name: "marketing", Permissions: []string{"banners:read"}})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, 2, policy.loads, "a failed change leaves the policy alone")

	testutil.CreateAdmin(t, db, "m@example.com", "password1", created.Id)
	assert.ErrorIs(t, svc.DeleteRole(ctx, dto.Actor{}, created.Id), apperror.ErrConflict)
}

func TestSystemRoleCannotBeDeleted(t *testing.T) {
	svc, _, _, db := newAdminService(t)
	r := testutil.CreateRole(t, db, "Super Admin", "*")
	require.NoError(t, db.Model(r).Update("is_system", true).Error)

	assert.ErrorIs(t, svc.DeleteRole(context.Background(), dto.Actor{}, r.Id), apperror.ErrConflict)
}

func TestPermissionCatalogListsEveryResource(t *testing.T) {
	svc, _, _, _ := newAdminService(t)
	catalog := svc.GetPermissionCatalog()

	assert.Contains(t, catalog.Permissions, "*")
	assert.Contains(t, catalog.Permissions, "bonuses:write")
	assert.Contains(t, catalog.Resources, "utm")
}
