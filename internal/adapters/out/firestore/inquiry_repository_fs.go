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
	idom "manchy/internal/domain/inquiry"
)

// InquiryRepositoryFS implements inquiry.Repository using Firestore.
type InquiryRepositoryFS struct {
	Client *firestore.Client
}

func NewInquiryRepositoryFS(client *firestore.Client) *InquiryRepositoryFS {
	return &InquiryRepositoryFS{Client: client}
}

func (r *InquiryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("inquiries")
}

// Compile-time check
var _ idom.Repository = (*InquiryRepositoryFS)(nil)

func (r *InquiryRepositoryFS) Create(ctx context.Context, in idom.Inquiry) (idom.Inquiry, error) {
	if r.Client == nil {
		return idom.Inquiry{}, errors.New("firestore client is nil")
	}

	now := time.Now().UTC()

	var docRef *firestore.DocumentRef
	if strings.TrimSpace(in.ID) == "" {
		docRef = r.col().NewDoc()
		in.ID = docRef.ID
	} else {
		in.ID = strings.TrimSpace(in.ID)
		docRef = r.col().Doc(in.ID)
	}

	if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}

	if _, err := docRef.Create(ctx, inquiryToDocData(in)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return idom.Inquiry{}, idom.ErrConflict
		}
		return idom.Inquiry{}, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		return idom.Inquiry{}, err
	}
	return docToInquiry(snap)
}

func (r *InquiryRepositoryFS) GetByID(ctx context.Context, id string) (idom.Inquiry, error) {
	if r.Client == nil {
		return idom.Inquiry{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return idom.Inquiry{}, idom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return idom.Inquiry{}, idom.ErrNotFound
		}
		return idom.Inquiry{}, err
	}
	return docToInquiry(snap)
}

// =======================
// Mapping Helpers
// =======================

func inquiryToDocData(in idom.Inquiry) map[string]any {
	m := map[string]any{
		"id":            strings.TrimSpace(in.ID),
		"customerName":  strings.TrimSpace(in.CustomerName),
		"customerEmail": strings.TrimSpace(in.CustomerEmail),
		"customerPhone": strings.TrimSpace(in.CustomerPhone),
		"inquiryType":   string(in.InquiryType),
		"message":       strings.TrimSpace(in.Message),
		"createdAt":     in.CreatedAt.UTC(),
	}

	// carId is written only for vehicle-specific inquiries; a general
	// inquiry stores no carId field at all.
	if v := fscommon.TrimPtr(in.CarID); v != nil {
		m["carId"] = *v
	}

	return m
}

func docToInquiry(doc *firestore.DocumentSnapshot) (idom.Inquiry, error) {
	data := fscommon.Doc(doc.Data())
	if data == nil {
		return idom.Inquiry{}, fmt.Errorf("empty inquiry document: %s", doc.Ref.ID)
	}

	var in idom.Inquiry

	in.ID = data.Str("id")
	if in.ID == "" {
		in.ID = doc.Ref.ID
	}
	in.CarID = data.StrPtr("carId")
	in.CustomerName = data.Str("customerName")
	in.CustomerEmail = data.Str("customerEmail")
	in.CustomerPhone = data.Str("customerPhone")
	in.InquiryType = idom.InquiryType(data.Str("inquiryType"))
	in.Message = data.Str("message")
	if t, ok := data.Time("createdAt"); ok {
		in.CreatedAt = t
	}

	return in, nil
}
