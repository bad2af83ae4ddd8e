package account

import (
	"context"
	"strings"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	adminEvents "casino-admin-be/pkg/admin/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Manager handles back-office admin accounts
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
	statuses  *StatusCache
	cost      int
}

func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
		cost:      bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost, tests use bcrypt.MinCost.
func (m *Manager) WithCost(cost int) *Manager {
	m.cost = cost
	return m
}

// WithStatusCache makes status changes and deletes take effect on live tokens.
func (m *Manager) WithStatusCache(statuses *StatusCache) *Manager {
	m.statuses = statuses
	return m
}

func (m *Manager) forgetStatus(id uuid.UUID) {
	if m.statuses != nil {
		m.statuses.Forget(id)
	}
}

func (m *Manager) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminListRequest) ([]*entity.Admin, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	filters := []specification.Specification{
		specification.Search{Fields: []string{"email", "full_name"}, Query: req.Search},
	}
	if req.Status != "" {
		filters = append(filters, specification.Filter("status", req.Status))
	}
	if req.RoleId != "" {
		roleId, err := uuid.Parse(req.RoleId)
		if err != nil {
			return nil, 0, apperror.Field("role_id", "must be a valid UUID")
		}
		filters = append(filters, specification.ByRole{RoleID: roleId})
	}

	total, err := uow.AdminRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	admins, err := uow.AdminRepository().FindAll(ctx, append(filters,
		specification.WithRole{},
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Admin, error) {
	a, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id}, specification.WithRole{})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NotFound("admin")
	}
	return a, nil
}

func (m *Manager) findRole(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Role, error) {
	role, err := uow.RoleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.Field("role_id", "role does not exist")
	}
	return role, nil
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateAdminRequest) (*entity.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := uow.AdminRepository().Count(ctx, specification.IncludeDeleted{}, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Conflict("admin with email %s already exists", email)
	}

	role, err := m.findRole(ctx, uow, req.RoleId)
	if err != nil {
		return nil, err
	}

	hash, err := m.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		RoleId:       role.Id,
		Status:       entity.AdminStatusActive,
	}
	if err := uow.AdminRepository().Create(ctx, admin); err != nil {
		return nil, err
	}
	admin.Role = role

	m.publisher.PublishAdminCreated(ctx, admin.Id, admin.Email, role.Name)
	return admin, nil
}

// Update changes name, role and status. actorId may not suspend itself.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, actorId, id uuid.UUID, req dto.UpdateAdminRequest) (*entity.Admin, error) {
	admin, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		admin.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.RoleId != nil && *req.RoleId != admin.RoleId {
		role, err := m.findRole(ctx, uow, *req.RoleId)
		if err != nil {
			return nil, err
		}
		admin.RoleId = role.Id
		admin.Role = role
	}
	if req.Status != nil {
		if err := checkSelfStatus(actorId, id, entity.AdminStatus(*req.Status)); err != nil {
			return nil, err
		}
		admin.Status = entity.AdminStatus(*req.Status)
	}

	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		return nil, err
	}
	m.forgetStatus(id)
	return admin, nil
}

func checkSelfStatus(actorId, id uuid.UUID, status entity.AdminStatus) error {
	if actorId == id && status != entity.AdminStatusActive {
		return apperror.BadRequest("you cannot suspend your own account")
	}
	return nil
}

func (m *Manager) ChangeStatus(ctx context.Context, uow unitofwork.UnitOfWork, actorId, id uuid.UUID, status string) (*entity.Admin, error) {
	if err := checkSelfStatus(actorId, id, entity.AdminStatus(status)); err != nil {
		return nil, err
	}
	admin, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	admin.Status = entity.AdminStatus(status)
	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		return nil, err
	}
	m.forgetStatus(id)
	m.logger.Info("ADMIN", "Status changed", map[string]interface{}{"admin_id": id.String(), "status": status})
	return admin, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, actorId, id uuid.UUID) (*entity.Admin, error) {
	if actorId == id {
		return nil, apperror.BadRequest("you cannot delete your own account")
	}
	admin, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.AdminRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	m.forgetStatus(id)
	return admin, nil
}

// Authenticate verifies credentials. Unknown email and wrong password give
// the same error.
func (m *Manager) Authenticate(ctx context.Context, uow unitofwork.UnitOfWork, email, password string) (*entity.Admin, error) {
	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: email}, specification.WithRole{})
	if err != nil {
		return nil, err
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}
	if admin.Status != entity.AdminStatusActive {
		return nil, apperror.Forbidden("account is suspended")
	}
	if err := uow.AdminRepository().TouchLastLogin(ctx, admin.Id); err != nil {
		m.logger.Warn("ADMIN", "Failed to record login", map[string]interface{}{"admin_id": admin.Id.String(), "error": err.Error()})
	}
	return admin, nil
}

func (m *Manager) ChangePassword(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.ChangePasswordRequest) error {
	admin, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return apperror.Field("current_password", "is incorrect")
	}
	hash, err := m.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	return uow.AdminRepository().Update(ctx, admin)
}
