package implementation

import (
	"context"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/mapper"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BonusRepositoryImpl struct {
	crudRepository[entity.Bonus, model.Bonus]
}

func NewBonusRepository(db *gorm.DB) contract.BonusRepository {
	return &BonusRepositoryImpl{newCrudRepository[entity.Bonus, model.Bonus](db, mapper.NewBonusMapper())}
}

type CashbackRepositoryImpl struct {
	crudRepository[entity.CashbackProgram, model.CashbackProgram]
}

func NewCashbackRepository(db *gorm.DB) contract.CashbackRepository {
	return &CashbackRepositoryImpl{
		newCrudRepository[entity.CashbackProgram, model.CashbackProgram](db, mapper.NewCashbackMapper()),
	}
}

type TierRepositoryImpl struct {
	crudRepository[entity.Tier, model.Tier]
}

func NewTierRepository(db *gorm.DB) contract.TierRepository {
	return &TierRepositoryImpl{newCrudRepository[entity.Tier, model.Tier](db, mapper.NewTierMapper())}
}

type PromotionRepositoryImpl struct {
	crudRepository[entity.Promotion, model.Promotion]
}

func NewPromotionRepository(db *gorm.DB) contract.PromotionRepository {
	return &PromotionRepositoryImpl{newCrudRepository[entity.Promotion, model.Promotion](db, mapper.NewPromotionMapper())}
}

type BannerRepositoryImpl struct {
	crudRepository[entity.Banner, model.Banner]
}

func NewBannerRepository(db *gorm.DB) contract.BannerRepository {
	return &BannerRepositoryImpl{newCrudRepository[entity.Banner, model.Banner](db, mapper.NewBannerMapper())}
}

func (r *BannerRepositoryImpl) UpdateSortOrder(ctx context.Context, id uuid.UUID, order int) error {
	return r.db.WithContext(ctx).Model(&model.Banner{}).
		Where("id = ?", id).
		Update("sort_order", order).Error
}

type WagerRaceRepositoryImpl struct {
	crudRepository[entity.WagerRace, model.WagerRace]
}

func NewWagerRaceRepository(db *gorm.DB) contract.WagerRaceRepository {
	return &WagerRaceRepositoryImpl{newCrudRepository[entity.WagerRace, model.WagerRace](db, mapper.NewWagerRaceMapper())}
}

type TriviaRepositoryImpl struct {
	crudRepository[entity.TriviaQuestion, model.TriviaQuestion]
}

func NewTriviaRepository(db *gorm.DB) contract.TriviaRepository {
	return &TriviaRepositoryImpl{
		newCrudRepository[entity.TriviaQuestion, model.TriviaQuestion](db, mapper.NewTriviaMapper()),
	}
}
