package contract

import (
	"context"

	"casino-admin-be/internal/entity"

	"github.com/google/uuid"
)

type BonusRepository interface {
	CrudRepository[entity.Bonus]
}

type CashbackRepository interface {
	CrudRepository[entity.CashbackProgram]
}

type TierRepository interface {
	CrudRepository[entity.Tier]
}

type PromotionRepository interface {
	CrudRepository[entity.Promotion]
}

type BannerRepository interface {
	CrudRepository[entity.Banner]
	UpdateSortOrder(ctx context.Context, id uuid.UUID, order int) error
}

type WagerRaceRepository interface {
	CrudRepository[entity.WagerRace]
}

type TriviaRepository interface {
	CrudRepository[entity.TriviaQuestion]
}
