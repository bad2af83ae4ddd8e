package transaction

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/specification"
)

var (
	validTypes = map[string]bool{
		string(entity.TransactionDeposit): true, string(entity.TransactionWithdrawal): true,
		string(entity.TransactionBet): true, string(entity.TransactionWin): true,
		string(entity.TransactionBonus): true, string(entity.TransactionCashback): true,
		string(entity.TransactionAdjustment): true,
	}
	validStatuses = map[string]bool{
		string(entity.TransactionPending): true, string(entity.TransactionCompleted): true,
		string(entity.TransactionFailed): true, string(entity.TransactionCancelled): true,
	}
)

// ParseFilter validates list query parameters. A date-only "to" includes the
// whole day.
func ParseFilter(req dto.TransactionListRequest) (*entity.TransactionFilter, error) {
	fields := map[string]string{}
	f := &entity.TransactionFilter{Type: req.Type, Status: req.Status}

	collect := func(err error) {
		for k, v := range apperror.Fields(err) {
			fields[k] = v
		}
	}

	var err error
	if f.UserId, err = serverutils.ParseUUIDParam("user_id", req.UserId); err != nil {
		collect(err)
	}
	if f.From, err = serverutils.ParseTimeBound("from", req.From, false); err != nil {
		collect(err)
	}
	if f.To, err = serverutils.ParseTimeBound("to", req.To, true); err != nil {
		collect(err)
	}
	if f.MinAmount, err = serverutils.ParseFloatParam("min_amount", req.MinAmount); err != nil {
		collect(err)
	}
	if f.MaxAmount, err = serverutils.ParseFloatParam("max_amount", req.MaxAmount); err != nil {
		collect(err)
	}

	if f.Type != "" && !validTypes[f.Type] {
		fields["type"] = "is not a transaction type"
	}
	if f.Status != "" && !validStatuses[f.Status] {
		fields["status"] = "is not a transaction status"
	}
	if f.From != nil && f.To != nil && !f.To.After(*f.From) {
		fields["to"] = "must be after from"
	}
	if f.MinAmount != nil && f.MaxAmount != nil && *f.MaxAmount < *f.MinAmount {
		fields["max_amount"] = "must be greater than or equal to min_amount"
	}

	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}
	return f, nil
}

// Specs turns a filter into repository specifications.
func Specs(f *entity.TransactionFilter) []specification.Specification {
	specs := []specification.Specification{
		specification.TimeRange{Field: "created_at", From: f.From, To: f.To},
	}
	if f.UserId != nil {
		specs = append(specs, specification.UserOwnedBy{UserID: *f.UserId})
	}
	if f.Type != "" {
		specs = append(specs, specification.Filter("type", f.Type))
	}
	if f.Status != "" {
		specs = append(specs, specification.Filter("status", f.Status))
	}
	if f.MinAmount != nil {
		specs = append(specs, specification.Compare{Field: "amount", Op: ">=", Value: *f.MinAmount})
	}
	if f.MaxAmount != nil {
		specs = append(specs, specification.Compare{Field: "amount", Op: "<=", Value: *f.MaxAmount})
	}
	return specs
}
