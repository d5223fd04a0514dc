package firestore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fscommon "manchy/internal/adapters/out/firestore/common"
	cardom "manchy/internal/domain/car"
)

// CarRepositoryFS implements car.Repository using Firestore.
type CarRepositoryFS struct {
	Client *firestore.Client
}

func NewCarRepositoryFS(client *firestore.Client) *CarRepositoryFS {
	return &CarRepositoryFS{Client: client}
}

func (r *CarRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("cars")
}

// Compile-time check
var _ cardom.Repository = (*CarRepositoryFS)(nil)

// =======================
// Queries
// =======================

// ListAvailable returns available cars ordered newest first.
func (r *CarRepositoryFS) ListAvailable(ctx context.Context) ([]cardom.Car, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	q := r.col().
		Where("status", "==", string(cardom.StatusAvailable)).
		OrderBy("createdAt", firestore.Desc)

	it := q.Documents(ctx)
	defer it.Stop()

	cars := []cardom.Car{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		c, err := docToCar(doc)
		if err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, nil
}

// ListFeatured returns up to limit featured available cars.
func (r *CarRepositoryFS) ListFeatured(ctx context.Context, limit int) ([]cardom.Car, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}
	if limit <= 0 {
		limit = 6
	}

	q := r.col().
		Where("isFeatured", "==", true).
		Where("status", "==", string(cardom.StatusAvailable)).
		Limit(limit)

	it := q.Documents(ctx)
	defer it.Stop()

	cars := []cardom.Car{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		c, err := docToCar(doc)
		if err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, nil
}

func (r *CarRepositoryFS) GetByID(ctx context.Context, id string) (cardom.Car, error) {
	if r.Client == nil {
		return cardom.Car{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return cardom.Car{}, cardom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cardom.Car{}, cardom.ErrNotFound
		}
		return cardom.Car{}, err
	}
	return docToCar(snap)
}

// ListBrands returns the distinct brands of available cars, ascending.
func (r *CarRepositoryFS) ListBrands(ctx context.Context) ([]string, error) {
	cars, err := r.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	brands := []string{}
	for _, c := range cars {
		if _, ok := seen[c.Brand]; ok {
			continue
		}
		seen[c.Brand] = struct{}{}
		brands = append(brands, c.Brand)
	}
	sort.Strings(brands)
	return brands, nil
}

// =======================
// Mutations
// =======================

func (r *CarRepositoryFS) Create(ctx context.Context, c cardom.Car) (cardom.Car, error) {
	if r.Client == nil {
		return cardom.Car{}, errors.New("firestore client is nil")
	}

	now := time.Now().UTC()

	var docRef *firestore.DocumentRef
	if strings.TrimSpace(c.ID) == "" {
		docRef = r.col().NewDoc()
		c.ID = docRef.ID
	} else {
		c.ID = strings.TrimSpace(c.ID)
		docRef = r.col().Doc(c.ID)
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.Normalize()

	data := carToDocData(c)

	if _, err := docRef.Create(ctx, data); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return cardom.Car{}, cardom.ErrConflict
		}
		return cardom.Car{}, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		return cardom.Car{}, err
	}
	return docToCar(snap)
}

func (r *CarRepositoryFS) Update(ctx context.Context, id string, patch cardom.CarPatch) (cardom.Car, error) {
	if r.Client == nil {
		return cardom.Car{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return cardom.Car{}, cardom.ErrNotFound
	}

	docRef := r.col().Doc(id)

	var updates []firestore.Update
	if patch.Brand != nil {
		updates = append(updates, firestore.Update{Path: "brand", Value: strings.TrimSpace(*patch.Brand)})
	}
	if patch.Model != nil {
		updates = append(updates, firestore.Update{Path: "model", Value: strings.TrimSpace(*patch.Model)})
	}
	if patch.Year != nil {
		updates = append(updates, firestore.Update{Path: "year", Value: *patch.Year})
	}
	if patch.Mileage != nil {
		updates = append(updates, firestore.Update{Path: "mileage", Value: *patch.Mileage})
	}
	if patch.Transmission != nil {
		updates = append(updates, firestore.Update{Path: "transmission", Value: string(*patch.Transmission)})
	}
	if patch.FuelType != nil {
		updates = append(updates, firestore.Update{Path: "fuelType", Value: string(*patch.FuelType)})
	}
	if patch.Color != nil {
		updates = append(updates, firestore.Update{Path: "color", Value: strings.TrimSpace(*patch.Color)})
	}
	if patch.Condition != nil {
		updates = append(updates, firestore.Update{Path: "condition", Value: string(*patch.Condition)})
	}
	if patch.Price != nil {
		updates = append(updates, firestore.Update{Path: "price", Value: *patch.Price})
	}
	if patch.Images != nil {
		updates = append(updates, firestore.Update{Path: "images", Value: *patch.Images})
	}
	if patch.Features != nil {
		updates = append(updates, firestore.Update{Path: "features", Value: *patch.Features})
	}
	if patch.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: strings.TrimSpace(*patch.Description)})
	}
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: string(*patch.Status)})
	}
	if patch.IsFeatured != nil {
		updates = append(updates, firestore.Update{Path: "isFeatured", Value: *patch.IsFeatured})
	}

	if len(updates) == 0 {
		// no-op
		return r.GetByID(ctx, id)
	}

	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return cardom.Car{}, cardom.ErrNotFound
		}
		return cardom.Car{}, err
	}

	return r.GetByID(ctx, id)
}

// =======================
// Mapping Helpers
// =======================

func carToDocData(c cardom.Car) map[string]any {
	return map[string]any{
		"id":           strings.TrimSpace(c.ID),
		"brand":        strings.TrimSpace(c.Brand),
		"model":        strings.TrimSpace(c.Model),
		"year":         c.Year,
		"mileage":      c.Mileage,
		"transmission": string(c.Transmission),
		"fuelType":     string(c.FuelType),
		"color":        strings.TrimSpace(c.Color),
		"condition":    string(c.Condition),
		"price":        c.Price,
		"images":       c.Images,
		"features":     c.Features,
		"description":  strings.TrimSpace(c.Description),
		"status":       string(c.Status),
		"isFeatured":   c.IsFeatured,
		"createdAt":    c.CreatedAt.UTC(),
	}
}

func docToCar(doc *firestore.DocumentSnapshot) (cardom.Car, error) {
	data := fscommon.Doc(doc.Data())
	if data == nil {
		return cardom.Car{}, fmt.Errorf("empty car document: %s", doc.Ref.ID)
	}

	var c cardom.Car

	c.ID = data.Str("id")
	if c.ID == "" {
		c.ID = doc.Ref.ID
	}
	c.Brand = data.Str("brand")
	c.Model = data.Str("model")
	c.Year = data.Int("year")
	c.Mileage = data.Int("mileage")
	c.Transmission = cardom.Transmission(data.Str("transmission"))
	c.FuelType = cardom.FuelType(data.Str("fuelType"))
	c.Color = data.Str("color")
	c.Condition = cardom.Condition(data.Str("condition"))
	c.Price = data.Int64("price")
	c.Images = data.StrSlice("images")
	c.Features = data.StrSlice("features")
	c.Description = data.Str("description")
	c.Status = cardom.Status(data.Str("status"))
	c.IsFeatured = data.Bool("isFeatured")
	if t, ok := data.Time("createdAt"); ok {
		c.CreatedAt = t
	}

	c.Normalize()
	return c, nil
}
