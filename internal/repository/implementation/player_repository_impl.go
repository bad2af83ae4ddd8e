package implementation

import (
	"context"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/mapper"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/repository/contract"
	"casino-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerRepositoryImpl struct {
	crudRepository[entity.Player, model.Player]
}

func NewPlayerRepository(db *gorm.DB) contract.PlayerRepository {
	return &PlayerRepositoryImpl{newCrudRepository[entity.Player, model.Player](db, mapper.NewPlayerMapper())}
}

func (r *PlayerRepositoryImpl) Totals(ctx context.Context, userId uuid.UUID) (*entity.PlayerTotals, error) {
	var rows []struct {
		Type  string
		Total float64
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND status = ?", userId, string(entity.TransactionCompleted)).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := &entity.PlayerTotals{}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionDeposit:
			totals.Deposits = row.Total
		case entity.TransactionWithdrawal:
			totals.Withdrawals = row.Total
		case entity.TransactionBet:
			totals.Bets = row.Total
		case entity.TransactionWin:
			totals.Wins = row.Total
		}
	}
	return totals, nil
}

type TransactionRepositoryImpl struct {
	crudRepository[entity.Transaction, model.Transaction]
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		newCrudRepository[entity.Transaction, model.Transaction](db, mapper.NewTransactionMapper(), "Player"),
	}
}

func (r *TransactionRepositoryImpl) Sum(ctx context.Context, txType entity.TransactionType, specs ...specification.Specification) (float64, error) {
	var total float64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Transaction{}), specs...)
	err := query.
		Where("type = ? AND status = ?", string(txType), string(entity.TransactionCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *TransactionRepositoryImpl) WagerTotals(ctx context.Context, from, to time.Time, games []string) ([]entity.WagerTotal, error) {
	var rows []struct {
		UserId   uuid.UUID
		Username string
		Total    float64
	}
	query := r.db.WithContext(ctx).Table("transactions").
		Select("transactions.user_id AS user_id, COALESCE(players.username, '') AS username, SUM(transactions.amount) AS total").
		Joins("LEFT JOIN players ON players.id = transactions.user_id").
		Where("transactions.type = ? AND transactions.status = ?", string(entity.TransactionBet), string(entity.TransactionCompleted)).
		Where("transactions.created_at >= ? AND transactions.created_at < ?", from.UTC(), to.UTC())
	if len(games) > 0 {
		query = query.Where("transactions.game IN ?", games)
	}
	if err := query.Group("transactions.user_id, players.username").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.WagerTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.WagerTotal{UserId: row.UserId, Username: row.Username, Total: row.Total})
	}
	return out, nil
}
