package service

import (
	"context"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/mailer"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/account"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/role"

	"github.com/google/uuid"
)

// PolicyLoader rebuilds the permission policy from the full role list.
type PolicyLoader interface {
	Load(roles []*entity.Role) error
}

type IAdminService interface {
	// Admin accounts
	GetAdmins(ctx context.Context, req dto.AdminListRequest) (*serverutils.PaginatedData[dto.AdminResponse], error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error)
	CreateAdmin(ctx context.Context, actor dto.Actor, req dto.CreateAdminRequest) (*dto.AdminResponse, error)
	UpdateAdmin(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateAdminRequest) (*dto.AdminResponse, error)
	ChangeAdminStatus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateAdminStatusRequest) (*dto.AdminResponse, error)
	DeleteAdmin(ctx context.Context, actor dto.Actor, id uuid.UUID) error

	// Roles
	GetRoles(ctx context.Context) ([]dto.RoleResponse, error)
	GetRole(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error)
	CreateRole(ctx context.Context, actor dto.Actor, req dto.RoleRequest) (*dto.RoleResponse, error)
	UpdateRole(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.RoleRequest) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, actor dto.Actor, id uuid.UUID) error
	GetPermissionCatalog() dto.PermissionCatalogResponse

	// ReloadPolicy loads the role table into the enforcer, used at startup.
	ReloadPolicy(ctx context.Context) error
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	accountManager *account.Manager
	roleManager    *role.Manager
	policy         PolicyLoader
	emailService   mailer.IEmailService
	audit          IAuditService
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	accountManager *account.Manager,
	roleManager *role.Manager,
	policy PolicyLoader,
	emailService mailer.IEmailService,
	audit IAuditService,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		logger:         logger,
		accountManager: accountManager,
		roleManager:    roleManager,
		policy:         policy,
		emailService:   emailService,
		audit:          audit,
	}
}

// ============================================================================
// Admin accounts
// ============================================================================

func (s *adminService) GetAdmins(ctx context.Context, req dto.AdminListRequest) (*serverutils.PaginatedData[dto.AdminResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admins, total, err := s.accountManager.FindAll(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.AdminsToResponse(admins), page.Page, page.Limit, total)
	return &result, nil
}

func (s *adminService) GetAdmin(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := s.accountManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.AdminToResponse(admin)
	return &resp, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, actor dto.Actor, req dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := s.accountManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	roleName := ""
	if admin.Role != nil {
		roleName = admin.Role.Name
	}
	// mail delivery must not hold up the response
	go func(email, name string) {
		_ = s.emailService.SendWelcome(email, name, roleName)
	}(admin.Email, admin.FullName)

	s.audit.Record(ctx, actor, "admin.create", "admin", admin.Id.String(), map[string]interface{}{"email": admin.Email, "role": roleName})
	resp := mapper.AdminToResponse(admin)
	return &resp, nil
}

func (s *adminService) UpdateAdmin(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := s.accountManager.Update(ctx, uow, actor.AdminId, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "admin.update", "admin", id.String(), nil)
	resp := mapper.AdminToResponse(admin)
	return &resp, nil
}

func (s *adminService) ChangeAdminStatus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateAdminStatusRequest) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := s.accountManager.ChangeStatus(ctx, uow, actor.AdminId, id, req.Status)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "admin.status", "admin", id.String(), map[string]interface{}{"status": req.Status})
	resp := mapper.AdminToResponse(admin)
	return &resp, nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := s.accountManager.Delete(ctx, uow, actor.AdminId, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "admin.delete", "admin", id.String(), map[string]interface{}{"email": admin.Email})
	return nil
}

// ============================================================================
// Roles
// ============================================================================

func (s *adminService) GetRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	roles, counts, err := s.roleManager.FindAll(ctx, uow)
	if err != nil {
		return nil, err
	}
	res := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, mapper.RoleToResponse(r, counts[r.Id]))
	}
	return res, nil
}

func (s *adminService) GetRole(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	r, err := s.roleManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.RoleToResponse(r, 0)
	return &resp, nil
}

// mutateRole runs a role change and the role reload in one transaction, then
// swaps the enforcer policy once the change is committed.
func (s *adminService) mutateRole(ctx context.Context, fn func(uow unitofwork.UnitOfWork) (*entity.Role, error)) (*entity.Role, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	var (
		changed *entity.Role
		roles   []*entity.Role
	)
	err := inTx(ctx, uow, func() error {
		var err error
		if changed, err = fn(uow); err != nil {
			return err
		}
		roles, err = uow.RoleRepository().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.policy.Load(roles); err != nil {
		s.logger.Error("RBAC", "Failed to reload policy after role change", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return changed, nil
}

func (s *adminService) CreateRole(ctx context.Context, actor dto.Actor, req dto.RoleRequest) (*dto.RoleResponse, error) {
	r, err := s.mutateRole(ctx, func(uow unitofwork.UnitOfWork) (*entity.Role, error) {
		return s.roleManager.Create(ctx, uow, req)
	})
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "role.create", "role", r.Id.String(), map[string]interface{}{"name": r.Name, "permissions": r.Permissions})
	resp := mapper.RoleToResponse(r, 0)
	return &resp, nil
}

func (s *adminService) UpdateRole(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.RoleRequest) (*dto.RoleResponse, error) {
	r, err := s.mutateRole(ctx, func(uow unitofwork.UnitOfWork) (*entity.Role, error) {
		return s.roleManager.Update(ctx, uow, id, req)
	})
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "role.update", "role", id.String(), map[string]interface{}{"name": r.Name, "permissions": r.Permissions})
	resp := mapper.RoleToResponse(r, 0)
	return &resp, nil
}

func (s *adminService) DeleteRole(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	r, err := s.mutateRole(ctx, func(uow unitofwork.UnitOfWork) (*entity.Role, error) {
		return s.roleManager.Delete(ctx, uow, id)
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "role.delete", "role", id.String(), map[string]interface{}{"name": r.Name})
	return nil
}

func (s *adminService) GetPermissionCatalog() dto.PermissionCatalogResponse {
	return dto.PermissionCatalogResponse{
		Resources:   rbac.Resources,
		Permissions: rbac.Catalog(),
	}
}

func (s *adminService) ReloadPolicy(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	roles, err := uow.RoleRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	return s.policy.Load(roles)
}
