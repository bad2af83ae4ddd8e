package transaction

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const MaxExportRows = 10000

var csvHeader = []string{"id", "user_id", "username", "type", "amount", "currency", "status", "reference", "game", "created_at"}

type Manager struct {
	logger logger.ILogger
}

func NewManager(logger logger.ILogger) *Manager {
	return &Manager{logger: logger}
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.TransactionListRequest) ([]*entity.Transaction, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)
	filter, err := ParseFilter(req)
	if err != nil {
		return nil, 0, err
	}
	specs := Specs(filter)

	total, err := uow.TransactionRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}
	txs, err := uow.TransactionRepository().FindAll(ctx, append(specs,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NotFound("transaction")
	}
	return tx, nil
}

// Export writes the filtered transactions as CSV, newest first, capped at
// MaxExportRows. It returns the number of rows written.
func (m *Manager) Export(ctx context.Context, uow unitofwork.UnitOfWork, req dto.TransactionListRequest, w io.Writer) (int, error) {
	filter, err := ParseFilter(req)
	if err != nil {
		return 0, err
	}
	txs, err := uow.TransactionRepository().FindAll(ctx, append(Specs(filter),
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: MaxExportRows},
	)...)
	if err != nil {
		return 0, err
	}
	if err := WriteCSV(w, txs); err != nil {
		return 0, err
	}
	m.logger.Info("TRANSACTION", "Exported transactions", map[string]interface{}{"rows": len(txs)})
	return len(txs), nil
}

// safeCell keeps spreadsheet apps from evaluating player supplied text as a formula.
func safeCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

func WriteCSV(w io.Writer, txs []*entity.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range txs {
		record := []string{
			t.Id.String(),
			t.UserId.String(),
			safeCell(t.Username),
			string(t.Type),
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Currency,
			string(t.Status),
			safeCell(t.Reference),
			safeCell(t.Game),
			t.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
