package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	cardom "manchy/internal/domain/car"
)

func catalogFixture(t *testing.T) []cardom.Car {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mk := func(id, brand, model string, year int, price int64, featured bool, age time.Duration) cardom.Car {
		c, err := cardom.New(id, brand, model, year, price, cardom.ConditionUsed, cardom.StatusAvailable, base.Add(age))
		if err != nil {
			t.Fatalf("fixture %s: %v", id, err)
		}
		c.IsFeatured = featured
		return c
	}

	return []cardom.Car{
		mk("a", "Toyota", "Camry", 2015, 8_500_000, true, 0),
		mk("b", "Toyota", "Corolla", 2018, 11_200_000, false, time.Hour),
		mk("c", "Honda", "Accord", 2016, 7_800_000, false, 2*time.Hour),
	}
}

func TestBrowseFiltersAndSorts(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	uc := NewCatalogUsecase(repo, nil)

	res, err := uc.Browse(context.Background(), cardom.Criteria{Brand: "Toyota"}, cardom.SortPriceHigh)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("Total = %d", res.Total)
	}
	if res.Count != 2 || len(res.Items) != 2 {
		t.Fatalf("Count = %d, items = %d", res.Count, len(res.Items))
	}
	if res.Items[0].ID != "b" || res.Items[1].ID != "a" {
		t.Fatalf("order = [%s %s]", res.Items[0].ID, res.Items[1].ID)
	}
}

func TestBrowseEmptyResultIsNotAnError(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	uc := NewCatalogUsecase(repo, nil)

	res, err := uc.Browse(context.Background(), cardom.Criteria{Brand: "Mercedes"}, cardom.SortNewest)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if res.Items == nil || res.Count != 0 || res.Total != 3 {
		t.Fatalf("res = %+v", res)
	}
}

func TestBrowseLoadFailure(t *testing.T) {
	repo := &fakeCarRepo{listErr: errStoreDown}
	uc := NewCatalogUsecase(repo, nil)

	if _, err := uc.Browse(context.Background(), cardom.Criteria{}, cardom.SortNewest); !errors.Is(err, errStoreDown) {
		t.Fatalf("got %v", err)
	}
}

func TestFeaturedFallsBackToAvailable(t *testing.T) {
	cars := catalogFixture(t)

	// With flagged cars, they win.
	repo := &fakeCarRepo{cars: cars, featured: cars[:1]}
	uc := NewCatalogUsecase(repo, nil)
	got, err := uc.Featured(context.Background(), 6)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %d cars", len(got))
	}

	// With nothing flagged, fall back to the first available cars.
	repo = &fakeCarRepo{cars: cars}
	uc = NewCatalogUsecase(repo, nil)
	got, err = uc.Featured(context.Background(), 2)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fallback returned %d cars, want 2", len(got))
	}
}

func TestAddPhotoWithoutStore(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	uc := NewCatalogUsecase(repo, nil)

	_, err := uc.AddPhoto(context.Background(), "a", "front.jpg", "image/jpeg", strings.NewReader("x"))
	if !errors.Is(err, ErrPhotoStoreNotConfigured) {
		t.Fatalf("got %v", err)
	}
}

func TestAddPhotoAppendsURL(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	store := &fakePhotoStore{}
	uc := NewCatalogUsecase(repo, store)

	updated, err := uc.AddPhoto(context.Background(), "a", "front.jpg", "image/jpeg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	if len(updated.Images) != 1 || !strings.HasSuffix(updated.Images[0], "/cars/a/front.jpg") {
		t.Fatalf("images = %v", updated.Images)
	}
}

func TestRemovePhotoDropsURLAndDeletesObject(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	store := &fakePhotoStore{}
	uc := NewCatalogUsecase(repo, store)

	if _, err := uc.AddPhoto(context.Background(), "a", "front.jpg", "image/jpeg", strings.NewReader("x")); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	if _, err := uc.AddPhoto(context.Background(), "a", "rear.jpg", "image/jpeg", strings.NewReader("x")); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}

	updated, err := uc.RemovePhoto(context.Background(), "a", "front.jpg")
	if err != nil {
		t.Fatalf("RemovePhoto: %v", err)
	}
	if len(updated.Images) != 1 || !strings.HasSuffix(updated.Images[0], "/cars/a/rear.jpg") {
		t.Fatalf("images = %v", updated.Images)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "a/front.jpg" {
		t.Fatalf("deleted = %v", store.deleted)
	}
}

func TestRemovePhotoObjectDeleteFailureStillUpdatesList(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	store := &fakePhotoStore{}
	uc := NewCatalogUsecase(repo, store)

	if _, err := uc.AddPhoto(context.Background(), "a", "front.jpg", "image/jpeg", strings.NewReader("x")); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	store.deleteErr = errStoreDown

	updated, err := uc.RemovePhoto(context.Background(), "a", "front.jpg")
	if err != nil {
		t.Fatalf("RemovePhoto: %v", err)
	}
	if len(updated.Images) != 0 {
		t.Fatalf("images = %v", updated.Images)
	}
}

func TestRemovePhotoWithoutStore(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	uc := NewCatalogUsecase(repo, nil)

	if _, err := uc.RemovePhoto(context.Background(), "a", "front.jpg"); !errors.Is(err, ErrPhotoStoreNotConfigured) {
		t.Fatalf("got %v", err)
	}
}

func TestBrands(t *testing.T) {
	repo := &fakeCarRepo{cars: catalogFixture(t)}
	uc := NewCatalogUsecase(repo, nil)

	brands, err := uc.Brands(context.Background())
	if err != nil {
		t.Fatalf("Brands: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("brands = %v", brands)
	}
}
