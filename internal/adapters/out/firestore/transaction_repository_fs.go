package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fscommon "manchy/internal/adapters/out/firestore/common"
	txdom "manchy/internal/domain/transaction"
)

// TransactionRepositoryFS implements transaction.Repository using Firestore.
type TransactionRepositoryFS struct {
	Client *firestore.Client
}

func NewTransactionRepositoryFS(client *firestore.Client) *TransactionRepositoryFS {
	return &TransactionRepositoryFS{Client: client}
}

func (r *TransactionRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("transactions")
}

// Compile-time check
var _ txdom.Repository = (*TransactionRepositoryFS)(nil)

func (r *TransactionRepositoryFS) Create(ctx context.Context, t txdom.Transaction) (txdom.Transaction, error) {
	if r.Client == nil {
		return txdom.Transaction{}, errors.New("firestore client is nil")
	}

	now := time.Now().UTC()

	var docRef *firestore.DocumentRef
	if strings.TrimSpace(t.ID) == "" {
		docRef = r.col().NewDoc()
		t.ID = docRef.ID
	} else {
		t.ID = strings.TrimSpace(t.ID)
		docRef = r.col().Doc(t.ID)
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	if _, err := docRef.Create(ctx, transactionToDocData(t)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return txdom.Transaction{}, txdom.ErrConflict
		}
		return txdom.Transaction{}, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		return txdom.Transaction{}, err
	}
	return docToTransaction(snap)
}

func (r *TransactionRepositoryFS) GetByID(ctx context.Context, id string) (txdom.Transaction, error) {
	if r.Client == nil {
		return txdom.Transaction{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return txdom.Transaction{}, txdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return txdom.Transaction{}, txdom.ErrNotFound
		}
		return txdom.Transaction{}, err
	}
	return docToTransaction(snap)
}

// Update applies a reconciliation patch, last write wins.
func (r *TransactionRepositoryFS) Update(ctx context.Context, id string, patch txdom.TransactionPatch) (txdom.Transaction, error) {
	if r.Client == nil {
		return txdom.Transaction{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return txdom.Transaction{}, txdom.ErrNotFound
	}

	docRef := r.col().Doc(id)

	var updates []firestore.Update
	if patch.PaymentStatus != nil {
		updates = append(updates, firestore.Update{Path: "paymentStatus", Value: string(*patch.PaymentStatus)})
	}
	if patch.PaymentReference != nil {
		updates = append(updates, firestore.Update{Path: "paymentReference", Value: strings.TrimSpace(*patch.PaymentReference)})
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return txdom.Transaction{}, txdom.ErrNotFound
		}
		return txdom.Transaction{}, err
	}

	return r.GetByID(ctx, id)
}

// =======================
// Mapping Helpers
// =======================

func transactionToDocData(t txdom.Transaction) map[string]any {
	return map[string]any{
		"id":               strings.TrimSpace(t.ID),
		"carId":            strings.TrimSpace(t.CarID),
		"customerName":     strings.TrimSpace(t.CustomerName),
		"customerEmail":    strings.TrimSpace(t.CustomerEmail),
		"customerPhone":    strings.TrimSpace(t.CustomerPhone),
		"amount":           t.Amount,
		"paymentReference": strings.TrimSpace(t.PaymentReference),
		"paymentStatus":    string(t.PaymentStatus),
		"createdAt":        t.CreatedAt.UTC(),
		"updatedAt":        t.UpdatedAt.UTC(),
	}
}

func docToTransaction(doc *firestore.DocumentSnapshot) (txdom.Transaction, error) {
	data := fscommon.Doc(doc.Data())
	if data == nil {
		return txdom.Transaction{}, fmt.Errorf("empty transaction document: %s", doc.Ref.ID)
	}

	var t txdom.Transaction

	t.ID = data.Str("id")
	if t.ID == "" {
		t.ID = doc.Ref.ID
	}
	t.CarID = data.Str("carId")
	t.CustomerName = data.Str("customerName")
	t.CustomerEmail = data.Str("customerEmail")
	t.CustomerPhone = data.Str("customerPhone")
	t.Amount = data.Int64("amount")
	t.PaymentReference = data.Str("paymentReference")
	t.PaymentStatus = txdom.PaymentStatus(data.Str("paymentStatus"))
	if ct, ok := data.Time("createdAt"); ok {
		t.CreatedAt = ct
	}
	if ut, ok := data.Time("updatedAt"); ok {
		t.UpdatedAt = ut
	}

	return t, nil
}
