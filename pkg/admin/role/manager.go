package role

import (
	"context"
	"strings"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Manager struct {
	logger logger.ILogger
}

func NewManager(logger logger.ILogger) *Manager {
	return &Manager{logger: logger}
}

func ValidatePermissions(perms []string) error {
	if unknown := rbac.Unknown(perms); len(unknown) > 0 {
		return apperror.Field("permissions", "unknown permissions: "+strings.Join(unknown, ", "))
	}
	return nil
}

// FindAll returns every role with its admin count. Roles are few, so there is
// no pagination.
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Role, map[uuid.UUID]int64, error) {
	roles, err := uow.RoleRepository().FindAll(ctx, specification.Scope(scope.OrderByCreatedAsc))
	if err != nil {
		return nil, nil, err
	}
	counts := make(map[uuid.UUID]int64, len(roles))
	for _, r := range roles {
		n, err := uow.AdminRepository().Count(ctx, specification.ByRole{RoleID: r.Id})
		if err != nil {
			return nil, nil, err
		}
		counts[r.Id] = n
	}
	return roles, counts, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Role, error) {
	r, err := uow.RoleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperror.NotFound("role")
	}
	return r, nil
}

func (m *Manager) checkName(ctx context.Context, uow unitofwork.UnitOfWork, name string, excludeId uuid.UUID) error {
	specs := []specification.Specification{
		specification.IncludeDeleted{},
		specification.ByName{Name: name},
	}
	if excludeId != uuid.Nil {
		specs = append(specs, specification.ExcludeID{ID: excludeId})
	}
	taken, err := uow.RoleRepository().Count(ctx, specs...)
	if err != nil {
		return err
	}
	if taken > 0 {
		return apperror.Conflict("role %s already exists", name)
	}
	return nil
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.RoleRequest) (*entity.Role, error) {
	name := strings.TrimSpace(req.Name)
	if err := ValidatePermissions(req.Permissions); err != nil {
		return nil, err
	}
	if err := m.checkName(ctx, uow, name, uuid.Nil); err != nil {
		return nil, err
	}

	r := &entity.Role{Name: name, Description: req.Description, Permissions: req.Permissions}
	if err := uow.RoleRepository().Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update edits a role. System roles keep their name.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.RoleRequest) (*entity.Role, error) {
	if err := ValidatePermissions(req.Permissions); err != nil {
		return nil, err
	}
	r, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != r.Name {
		if r.IsSystem {
			return nil, apperror.Conflict("system role %s cannot be renamed", r.Name)
		}
		if err := m.checkName(ctx, uow, name, r.Id); err != nil {
			return nil, err
		}
	}

	r.Name = name
	r.Description = req.Description
	r.Permissions = req.Permissions
	if err := uow.RoleRepository().Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Role, error) {
	r, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if r.IsSystem {
		return nil, apperror.Conflict("system role %s cannot be deleted", r.Name)
	}
	assigned, err := uow.AdminRepository().Count(ctx, specification.ByRole{RoleID: id})
	if err != nil {
		return nil, err
	}
	if assigned > 0 {
		return nil, apperror.Conflict("role %s is assigned to %d admins", r.Name, assigned)
	}
	if err := uow.RoleRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return r, nil
}
