package service

import (
	"context"
	"io"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/transaction"
	"casino-admin-be/pkg/admin/user"

	"github.com/google/uuid"
)

type IUserService interface {
	GetUsers(ctx context.Context, req dto.UserListRequest) (*serverutils.PaginatedData[dto.UserListResponse], error)
	GetUserDetail(ctx context.Context, id uuid.UUID) (*dto.UserDetailResponse, error)
	UpdateUserStatus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateUserStatusRequest) (*dto.UserListResponse, error)
	AssignTier(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateUserTierRequest) (*dto.UserListResponse, error)
	GetUserTransactions(ctx context.Context, id uuid.UUID, page serverutils.Page) (*serverutils.PaginatedData[dto.TransactionResponse], error)

	GetTransactions(ctx context.Context, req dto.TransactionListRequest) (*serverutils.PaginatedData[dto.TransactionResponse], error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	ExportTransactions(ctx context.Context, actor dto.Actor, req dto.TransactionListRequest, w io.Writer) error
}

type userService struct {
	uowFactory         unitofwork.RepositoryFactory
	logger             logger.ILogger
	userManager        *user.Manager
	transactionManager *transaction.Manager
	audit              IAuditService
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	userManager *user.Manager,
	transactionManager *transaction.Manager,
	audit IAuditService,
) IUserService {
	return &userService{
		uowFactory:         uowFactory,
		logger:             logger,
		userManager:        userManager,
		transactionManager: transactionManager,
		audit:              audit,
	}
}

func (s *userService) GetUsers(ctx context.Context, req dto.UserListRequest) (*serverutils.PaginatedData[dto.UserListResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	players, total, err := s.userManager.FindAll(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.UsersToListResponse(players), page.Page, page.Limit, total)
	return &result, nil
}

func (s *userService) GetUserDetail(ctx context.Context, id uuid.UUID) (*dto.UserDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	player, tier, totals, err := s.userManager.Detail(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.UserToDetailResponse(player, tier, totals)
	return &resp, nil
}

func (s *userService) UpdateUserStatus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateUserStatusRequest) (*dto.UserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	player, from, err := s.userManager.UpdateStatus(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "user.status", "user", id.String(), map[string]interface{}{
		"from":   from,
		"to":     req.Status,
		"reason": req.Reason,
	})
	resp := mapper.UserToListResponse(player)
	return &resp, nil
}

func (s *userService) AssignTier(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateUserTierRequest) (*dto.UserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	player, err := s.userManager.AssignTier(ctx, uow, id, req.TierId)
	if err != nil {
		return nil, err
	}
	var tierId interface{}
	if req.TierId != nil {
		tierId = req.TierId.String()
	}
	s.audit.Record(ctx, actor, "user.tier", "user", id.String(), map[string]interface{}{"tier_id": tierId})
	resp := mapper.UserToListResponse(player)
	return &resp, nil
}

func (s *userService) GetUserTransactions(ctx context.Context, id uuid.UUID, page serverutils.Page) (*serverutils.PaginatedData[dto.TransactionResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, total, err := s.userManager.Transactions(ctx, uow, id, page)
	if err != nil {
		return nil, err
	}
	result := serverutils.Paginated(mapper.TransactionsToResponse(txs), page.Page, page.Limit, total)
	return &result, nil
}

func (s *userService) GetTransactions(ctx context.Context, req dto.TransactionListRequest) (*serverutils.PaginatedData[dto.TransactionResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, total, err := s.transactionManager.FindAll(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.TransactionsToResponse(txs), page.Page, page.Limit, total)
	return &result, nil
}

func (s *userService) GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tx, err := s.transactionManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.TransactionToResponse(tx)
	return &resp, nil
}

func (s *userService) ExportTransactions(ctx context.Context, actor dto.Actor, req dto.TransactionListRequest, w io.Writer) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := s.transactionManager.Export(ctx, uow, req, w)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "transaction.export", "transaction", "", map[string]interface{}{
		"rows":    rows,
		"user_id": req.UserId,
		"type":    req.Type,
		"status":  req.Status,
		"from":    req.From,
		"to":      req.To,
	})
	return nil
}
