package inquiry

import "context"

// Repository is the inquiry side of the remote record store.
// Inquiries are terminal on creation; there is no update operation.
type Repository interface {
	Create(ctx context.Context, in Inquiry) (Inquiry, error)
	GetByID(ctx context.Context, id string) (Inquiry, error)
}
