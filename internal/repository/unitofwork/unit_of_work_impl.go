package unitofwork

import (
	"context"
	"fmt"

	"casino-admin-be/internal/repository/contract"
	"casino-admin-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) RoleRepository() contract.RoleRepository {
	return implementation.NewRoleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminRepository() contract.AdminRepository {
	return implementation.NewAdminRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AuditLogRepository() contract.AuditLogRepository {
	return implementation.NewAuditLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UploadRepository() contract.UploadRepository {
	return implementation.NewUploadRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ApiKeyRepository() contract.ApiKeyRepository {
	return implementation.NewApiKeyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlayerRepository() contract.PlayerRepository {
	return implementation.NewPlayerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TransactionRepository() contract.TransactionRepository {
	return implementation.NewTransactionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BonusRepository() contract.BonusRepository {
	return implementation.NewBonusRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CashbackRepository() contract.CashbackRepository {
	return implementation.NewCashbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TierRepository() contract.TierRepository {
	return implementation.NewTierRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PromotionRepository() contract.PromotionRepository {
	return implementation.NewPromotionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BannerRepository() contract.BannerRepository {
	return implementation.NewBannerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WagerRaceRepository() contract.WagerRaceRepository {
	return implementation.NewWagerRaceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TriviaRepository() contract.TriviaRepository {
	return implementation.NewTriviaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UtmEventRepository() contract.UtmEventRepository {
	return implementation.NewUtmEventRepository(u.getDB())
}
