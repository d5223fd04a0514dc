package car

import (
	"errors"
	"testing"
	"time"
)

func testCar(t *testing.T) Car {
	t.Helper()
	c, err := New("camry-1", "Toyota", "Camry", 2015, 3_500_000, ConditionUsed, StatusAvailable, time.Now())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewValidation(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		fn   func() (Car, error)
		want error
	}{
		{"empty id", func() (Car, error) {
			return New("", "Toyota", "Camry", 2015, 100, ConditionUsed, StatusAvailable, now)
		}, ErrInvalidID},
		{"empty brand", func() (Car, error) {
			return New("x", "  ", "Camry", 2015, 100, ConditionUsed, StatusAvailable, now)
		}, ErrInvalidBrand},
		{"empty model", func() (Car, error) {
			return New("x", "Toyota", "", 2015, 100, ConditionUsed, StatusAvailable, now)
		}, ErrInvalidModel},
		{"zero year", func() (Car, error) {
			return New("x", "Toyota", "Camry", 0, 100, ConditionUsed, StatusAvailable, now)
		}, ErrInvalidYear},
		{"negative price", func() (Car, error) {
			return New("x", "Toyota", "Camry", 2015, -1, ConditionUsed, StatusAvailable, now)
		}, ErrInvalidPrice},
		{"empty condition", func() (Car, error) {
			return New("x", "Toyota", "Camry", 2015, 100, "", StatusAvailable, now)
		}, ErrInvalidCondition},
		{"empty status", func() (Car, error) {
			return New("x", "Toyota", "Camry", 2015, 100, ConditionUsed, "", now)
		}, ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.fn(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewNormalizesSlices(t *testing.T) {
	c := testCar(t)
	if c.Images == nil || c.Features == nil {
		t.Fatal("Images/Features must never be nil")
	}
	if len(c.Images) != 0 || len(c.Features) != 0 {
		t.Fatalf("expected empty slices, got %v %v", c.Images, c.Features)
	}
}

func TestDisplayName(t *testing.T) {
	c := testCar(t)
	if got := c.DisplayName(); got != "Toyota Camry" {
		t.Fatalf("DisplayName = %q", got)
	}
}

func TestDisplayCondition(t *testing.T) {
	cases := []struct {
		cond Condition
		want string
	}{
		{ConditionNew, "Brand New"},
		{ConditionUsed, "Foreign Used"},
		{ConditionNigerianUsed, "Nigerian Used"},
		{"imported", "imported"}, // unknown values pass through
	}
	for _, tc := range cases {
		c := Car{Condition: tc.cond}
		if got := c.DisplayCondition(); got != tc.want {
			t.Errorf("DisplayCondition(%q) = %q, want %q", tc.cond, got, tc.want)
		}
	}
}

func TestAmountKobo(t *testing.T) {
	c := testCar(t)
	if got := c.AmountKobo(); got != 350_000_000 {
		t.Fatalf("AmountKobo = %d, want 350000000", got)
	}
}

func TestAvailable(t *testing.T) {
	c := testCar(t)
	if !c.Available() {
		t.Fatal("available car reported unavailable")
	}
	c.Status = StatusSold
	if c.Available() {
		t.Fatal("sold car reported available")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "₦0"},
		{999, "₦999"},
		{1000, "₦1,000"},
		{3_500_000, "₦3,500,000"},
		{28_500_000, "₦28,500,000"},
		{1_000_000_000, "₦1,000,000,000"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
