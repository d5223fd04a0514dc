package car

import (
	"context"
)

// CarPatch is a partial update; nil fields are left untouched.
type CarPatch struct {
	Brand        *string       `json:"brand,omitempty"`
	Model        *string       `json:"model,omitempty"`
	Year         *int          `json:"year,omitempty"`
	Mileage      *int          `json:"mileage,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
	FuelType     *FuelType     `json:"fuel_type,omitempty"`
	Color        *string       `json:"color,omitempty"`
	Condition    *Condition    `json:"condition,omitempty"`
	Price        *int64        `json:"price,omitempty"`
	Images       *[]string     `json:"images,omitempty"`
	Features     *[]string     `json:"features,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Status       *Status       `json:"status,omitempty"`
	IsFeatured   *bool         `json:"is_featured,omitempty"`
}

// Repository is the catalog side of the remote record store.
// All entities are owned by the store; callers hold request-scoped copies.
type Repository interface {
	// ListAvailable returns available cars, newest first.
	ListAvailable(ctx context.Context) ([]Car, error)
	// ListFeatured returns up to limit featured available cars.
	ListFeatured(ctx context.Context, limit int) ([]Car, error)
	// GetByID returns the car or ErrNotFound.
	GetByID(ctx context.Context, id string) (Car, error)
	// ListBrands returns the distinct brands of available cars, ascending.
	ListBrands(ctx context.Context) ([]string, error)

	Create(ctx context.Context, c Car) (Car, error)
	Update(ctx context.Context, id string, patch CarPatch) (Car, error)
}
