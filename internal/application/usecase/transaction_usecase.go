package usecase

import (
	"context"

	txdom "manchy/internal/domain/transaction"
)

// TransactionUsecase exposes transaction lookup and reconciliation.
type TransactionUsecase struct {
	txs txdom.Repository
}

func NewTransactionUsecase(txs txdom.Repository) *TransactionUsecase {
	return &TransactionUsecase{txs: txs}
}

func (uc *TransactionUsecase) GetByID(ctx context.Context, id string) (txdom.Transaction, error) {
	return uc.txs.GetByID(ctx, id)
}

// Update applies a reconciliation patch; last write wins, no versioning.
func (uc *TransactionUsecase) Update(ctx context.Context, id string, patch txdom.TransactionPatch) (txdom.Transaction, error) {
	return uc.txs.Update(ctx, id, patch)
}
