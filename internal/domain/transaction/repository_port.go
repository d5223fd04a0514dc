package transaction

import "context"

// TransactionPatch is a partial update used for status reconciliation;
// nil fields are left untouched. Last write wins.
type TransactionPatch struct {
	PaymentStatus    *PaymentStatus `json:"payment_status,omitempty"`
	PaymentReference *string        `json:"payment_reference,omitempty"`
}

// Repository is the transaction side of the remote record store.
type Repository interface {
	Create(ctx context.Context, t Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	Update(ctx context.Context, id string, patch TransactionPatch) (Transaction, error)
}
