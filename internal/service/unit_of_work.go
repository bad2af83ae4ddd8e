package service

import (
	"context"

	"casino-admin-be/internal/repository/unitofwork"
)

// inTx runs fn inside a transaction on uow, rolling back when fn fails.
func inTx(ctx context.Context, uow unitofwork.UnitOfWork, fn func() error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := fn(); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}
