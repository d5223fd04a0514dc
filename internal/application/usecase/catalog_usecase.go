package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	cardom "manchy/internal/domain/car"
)

// ErrPhotoStoreNotConfigured is returned when photo upload is attempted
// without an object store wired.
var ErrPhotoStoreNotConfigured = errors.New("catalog: photo store not configured")

// PhotoStore is the object-storage contract for vehicle photos.
type PhotoStore interface {
	Upload(ctx context.Context, carID, fileName, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, carID, fileName string) error
}

// CatalogUsecase serves the public vehicle catalog and the admin
// create/update operations.
type CatalogUsecase struct {
	cars   cardom.Repository
	photos PhotoStore
}

// NewCatalogUsecase initializes the usecase. photos may be nil when no
// object store is wired; photo upload then returns an error.
func NewCatalogUsecase(cars cardom.Repository, photos PhotoStore) *CatalogUsecase {
	return &CatalogUsecase{cars: cars, photos: photos}
}

// BrowseResult is one listing-page view: the filtered/sorted subset plus the
// total the count line is derived from.
type BrowseResult struct {
	Items []cardom.Car `json:"items"`
	Count int          `json:"count"`
	Total int          `json:"total"`
}

// Browse loads the available cars and applies the filter and sort stages.
// An empty Items is a valid outcome, distinct from a load failure.
func (uc *CatalogUsecase) Browse(ctx context.Context, criteria cardom.Criteria, key cardom.SortKey) (BrowseResult, error) {
	all, err := uc.cars.ListAvailable(ctx)
	if err != nil {
		return BrowseResult{}, err
	}

	items := cardom.Sort(cardom.Filter(all, criteria), key)
	return BrowseResult{
		Items: items,
		Count: len(items),
		Total: len(all),
	}, nil
}

// Featured returns up to limit featured cars, falling back to the newest
// available cars when nothing is flagged.
func (uc *CatalogUsecase) Featured(ctx context.Context, limit int) ([]cardom.Car, error) {
	if limit <= 0 {
		limit = 6
	}

	featured, err := uc.cars.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(featured) > 0 {
		return featured, nil
	}

	all, err := uc.cars.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// GetByID returns one car or car.ErrNotFound.
func (uc *CatalogUsecase) GetByID(ctx context.Context, id string) (cardom.Car, error) {
	return uc.cars.GetByID(ctx, id)
}

// Brands returns the distinct brands of available cars, ascending.
func (uc *CatalogUsecase) Brands(ctx context.Context) ([]string, error) {
	return uc.cars.ListBrands(ctx)
}

// Create persists a new vehicle record.
func (uc *CatalogUsecase) Create(ctx context.Context, c cardom.Car) (cardom.Car, error) {
	return uc.cars.Create(ctx, c)
}

// Update applies a partial update to a vehicle record.
func (uc *CatalogUsecase) Update(ctx context.Context, id string, patch cardom.CarPatch) (cardom.Car, error) {
	return uc.cars.Update(ctx, id, patch)
}

// AddPhoto uploads one photo to the object store and appends its public URL
// to the car's image list.
func (uc *CatalogUsecase) AddPhoto(ctx context.Context, carID, fileName, contentType string, body io.Reader) (cardom.Car, error) {
	if uc.photos == nil {
		return cardom.Car{}, ErrPhotoStoreNotConfigured
	}

	c, err := uc.cars.GetByID(ctx, carID)
	if err != nil {
		return cardom.Car{}, err
	}

	url, err := uc.photos.Upload(ctx, c.ID, fileName, contentType, body)
	if err != nil {
		return cardom.Car{}, err
	}

	images := append(append([]string{}, c.Images...), url)
	return uc.cars.Update(ctx, c.ID, cardom.CarPatch{Images: &images})
}

// RemovePhoto drops the named photo from the car's image list and cleans up
// the stored object. The image list is authoritative; a failed object delete
// is logged and the list update proceeds.
func (uc *CatalogUsecase) RemovePhoto(ctx context.Context, carID, fileName string) (cardom.Car, error) {
	if uc.photos == nil {
		return cardom.Car{}, ErrPhotoStoreNotConfigured
	}

	c, err := uc.cars.GetByID(ctx, carID)
	if err != nil {
		return cardom.Car{}, err
	}

	images := make([]string, 0, len(c.Images))
	for _, u := range c.Images {
		if strings.HasSuffix(u, "/"+fileName) {
			continue
		}
		images = append(images, u)
	}

	if err := uc.photos.Delete(ctx, c.ID, fileName); err != nil {
		log.Printf("[catalog] photo object delete failed car=%s file=%s err=%v", c.ID, fileName, err)
	}

	return uc.cars.Update(ctx, c.ID, cardom.CarPatch{Images: &images})
}
