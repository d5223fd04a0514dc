package usecase

import (
	"context"
	"errors"
	"io"
	"strconv"

	cardom "manchy/internal/domain/car"
	inqdom "manchy/internal/domain/inquiry"
	txdom "manchy/internal/domain/transaction"
)

// fakeCarRepo serves a fixed slice and records nothing.
type fakeCarRepo struct {
	cars     []cardom.Car
	featured []cardom.Car
	listErr  error
}

func (f *fakeCarRepo) ListAvailable(ctx context.Context) ([]cardom.Car, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cars, nil
}

func (f *fakeCarRepo) ListFeatured(ctx context.Context, limit int) ([]cardom.Car, error) {
	out := f.featured
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCarRepo) GetByID(ctx context.Context, id string) (cardom.Car, error) {
	for _, c := range f.cars {
		if c.ID == id {
			return c, nil
		}
	}
	return cardom.Car{}, cardom.ErrNotFound
}

func (f *fakeCarRepo) ListBrands(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range f.cars {
		if !seen[c.Brand] {
			seen[c.Brand] = true
			out = append(out, c.Brand)
		}
	}
	return out, nil
}

func (f *fakeCarRepo) Create(ctx context.Context, c cardom.Car) (cardom.Car, error) {
	f.cars = append(f.cars, c)
	return c, nil
}

func (f *fakeCarRepo) Update(ctx context.Context, id string, patch cardom.CarPatch) (cardom.Car, error) {
	for i, c := range f.cars {
		if c.ID != id {
			continue
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Images != nil {
			c.Images = *patch.Images
		}
		f.cars[i] = c
		return c, nil
	}
	return cardom.Car{}, cardom.ErrNotFound
}

// fakeTxRepo stores transactions in memory; createErr forces write failures.
type fakeTxRepo struct {
	created   []txdom.Transaction
	createErr error
}

func (f *fakeTxRepo) Create(ctx context.Context, t txdom.Transaction) (txdom.Transaction, error) {
	if f.createErr != nil {
		return txdom.Transaction{}, f.createErr
	}
	if t.ID == "" {
		t.ID = "tx-" + strconv.Itoa(len(f.created)+1)
	}
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeTxRepo) GetByID(ctx context.Context, id string) (txdom.Transaction, error) {
	for _, t := range f.created {
		if t.ID == id {
			return t, nil
		}
	}
	return txdom.Transaction{}, txdom.ErrNotFound
}

func (f *fakeTxRepo) Update(ctx context.Context, id string, patch txdom.TransactionPatch) (txdom.Transaction, error) {
	for i, t := range f.created {
		if t.ID != id {
			continue
		}
		if patch.PaymentStatus != nil {
			t.PaymentStatus = *patch.PaymentStatus
		}
		if patch.PaymentReference != nil {
			t.PaymentReference = *patch.PaymentReference
		}
		f.created[i] = t
		return t, nil
	}
	return txdom.Transaction{}, txdom.ErrNotFound
}

// fakeInquiryRepo stores inquiries in memory.
type fakeInquiryRepo struct {
	created   []inqdom.Inquiry
	createErr error
}

func (f *fakeInquiryRepo) Create(ctx context.Context, in inqdom.Inquiry) (inqdom.Inquiry, error) {
	if f.createErr != nil {
		return inqdom.Inquiry{}, f.createErr
	}
	if in.ID == "" {
		in.ID = "inq-" + strconv.Itoa(len(f.created)+1)
	}
	f.created = append(f.created, in)
	return in, nil
}

func (f *fakeInquiryRepo) GetByID(ctx context.Context, id string) (inqdom.Inquiry, error) {
	for _, in := range f.created {
		if in.ID == id {
			return in, nil
		}
	}
	return inqdom.Inquiry{}, inqdom.ErrNotFound
}

// fakeGateway records initialize calls and returns a canned session.
type fakeGateway struct {
	calls   []PaymentInit
	failErr error
}

func (f *fakeGateway) Initialize(ctx context.Context, in PaymentInit) (PaymentSession, error) {
	f.calls = append(f.calls, in)
	if f.failErr != nil {
		return PaymentSession{}, f.failErr
	}
	return PaymentSession{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		AccessCode:       "abc",
		Reference:        in.Reference,
	}, nil
}

// fakeMailer records sends; sendErr forces failures.
type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

type sentMail struct {
	from, to, subject, body string
}

func (f *fakeMailer) Send(ctx context.Context, from, to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{from, to, subject, body})
	return nil
}

// fakePhotoStore returns deterministic URLs.
type fakePhotoStore struct {
	uploads   []string
	deleted   []string
	deleteErr error
}

func (f *fakePhotoStore) Upload(ctx context.Context, carID, fileName, contentType string, body io.Reader) (string, error) {
	url := "https://storage.example.com/cars/" + carID + "/" + fileName
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakePhotoStore) Delete(ctx context.Context, carID, fileName string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, carID+"/"+fileName)
	return nil
}

var errStoreDown = errors.New("store unavailable")
