package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/account"
	"casino-admin-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

// LoginGuard throttles failed logins and revokes tokens on logout.
type LoginGuard interface {
	LoginBlocked(ctx context.Context, email string) bool
	RecordFailure(ctx context.Context, email string)
	ResetFailures(ctx context.Context, email string)
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

type IAuthService interface {
	Login(ctx context.Context, req dto.LoginRequest, ip string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, claims *serverutils.AdminClaims) error
	Me(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error)
	ChangePassword(ctx context.Context, actor dto.Actor, req dto.ChangePasswordRequest) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	accountManager *account.Manager
	issuer         *serverutils.TokenIssuer
	guard          LoginGuard
	audit          IAuditService
	logger         logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	accountManager *account.Manager,
	issuer *serverutils.TokenIssuer,
	guard LoginGuard,
	audit IAuditService,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		accountManager: accountManager,
		issuer:         issuer,
		guard:          guard,
		audit:          audit,
		logger:         log,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if s.guard.LoginBlocked(ctx, email) {
		return nil, apperror.TooManyRequests("too many failed login attempts, try again later")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := s.accountManager.Authenticate(ctx, uow, email, req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			s.guard.RecordFailure(ctx, email)
			s.logger.Warn("AUTH", "Failed login", map[string]interface{}{"email": email, "ip": ip})
		}
		return nil, err
	}
	s.guard.ResetFailures(ctx, email)

	var permissions []string
	if admin.Role != nil {
		permissions = admin.Role.Permissions
	}
	token, claims, err := s.issuer.Issue(admin.Id, admin.Email, admin.RoleId, permissions)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, dto.Actor{AdminId: admin.Id, Email: admin.Email, IpAddress: ip}, "auth.login", "admin", admin.Id.String(), nil)

	resp := mapper.AdminToResponse(admin)
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
		Admin:       &resp,
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *serverutils.AdminClaims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return apperror.Unauthorized("missing token")
	}
	if err := s.guard.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	s.audit.Record(ctx, dto.Actor{AdminId: claims.AdminUUID(), Email: claims.Email}, "auth.logout", "admin", claims.AdminId, nil)
	return nil
}

func (s *authService) Me(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := s.accountManager.FindOne(ctx, uow, adminId)
	if err != nil {
		return nil, err
	}
	resp := mapper.AdminToResponse(admin)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, actor dto.Actor, req dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.accountManager.ChangePassword(ctx, uow, actor.AdminId, req); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "auth.password_change", "admin", actor.AdminId.String(), nil)
	return nil
}
