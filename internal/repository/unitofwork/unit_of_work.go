package unitofwork

import (
	"context"

	"casino-admin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RoleRepository() contract.RoleRepository
	AdminRepository() contract.AdminRepository
	AuditLogRepository() contract.AuditLogRepository
	UploadRepository() contract.UploadRepository
	ApiKeyRepository() contract.ApiKeyRepository

	PlayerRepository() contract.PlayerRepository
	TransactionRepository() contract.TransactionRepository

	BonusRepository() contract.BonusRepository
	CashbackRepository() contract.CashbackRepository
	TierRepository() contract.TierRepository
	PromotionRepository() contract.PromotionRepository
	BannerRepository() contract.BannerRepository
	WagerRaceRepository() contract.WagerRaceRepository
	TriviaRepository() contract.TriviaRepository
	UtmEventRepository() contract.UtmEventRepository
}
