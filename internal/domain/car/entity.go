package car

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Types
type Condition string
type Transmission string
type FuelType string
type Status string

const (
	ConditionNew          Condition = "new"
	ConditionUsed         Condition = "used"
	ConditionNigerianUsed Condition = "nigerian-used"

	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"

	FuelPetrol FuelType = "petrol"
	FuelDiesel FuelType = "diesel"
	FuelHybrid FuelType = "hybrid"

	StatusAvailable Status = "Available"
	StatusSold      Status = "Sold"
	StatusReserved  Status = "Reserved"
)

// Car is a single catalog entry describing one vehicle for sale.
// Price is a whole-naira NGN amount; the gateway receives kobo (see AmountKobo).
type Car struct {
	ID           string       `json:"id"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Mileage      int          `json:"mileage"`
	Transmission Transmission `json:"transmission"`
	FuelType     FuelType     `json:"fuel_type"`
	Color        string       `json:"color,omitempty"`
	Condition    Condition    `json:"condition"`
	Price        int64        `json:"price"`
	Images       []string     `json:"images"`
	Features     []string     `json:"features"`
	Description  string       `json:"description,omitempty"`
	Status       Status       `json:"status"`
	IsFeatured   bool         `json:"is_featured"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Errors
var (
	ErrInvalidID        = errors.New("car: invalid id")
	ErrInvalidBrand     = errors.New("car: invalid brand")
	ErrInvalidModel     = errors.New("car: invalid model")
	ErrInvalidYear      = errors.New("car: invalid year")
	ErrInvalidPrice     = errors.New("car: invalid price")
	ErrInvalidCondition = errors.New("car: invalid condition")
	ErrInvalidStatus    = errors.New("car: invalid status")

	ErrNotFound = errors.New("car: not found")
	ErrConflict = errors.New("car: conflict")
)

// New constructs a Car with required fields. Images/Features are normalized
// to empty slices so consuming code never sees nil.
func New(
	id, brand, model string,
	year int,
	price int64,
	condition Condition,
	status Status,
	createdAt time.Time,
) (Car, error) {
	c := Car{
		ID:        strings.TrimSpace(id),
		Brand:     strings.TrimSpace(brand),
		Model:     strings.TrimSpace(model),
		Year:      year,
		Price:     price,
		Condition: condition,
		Status:    status,
		Images:    []string{},
		Features:  []string{},
		CreatedAt: createdAt.UTC(),
	}
	if err := c.validate(); err != nil {
		return Car{}, err
	}
	return c, nil
}

// Behavior

// DisplayName is the customer-facing vehicle name ("Toyota Camry").
func (c Car) DisplayName() string {
	return strings.TrimSpace(c.Brand + " " + c.Model)
}

// DisplayCondition maps the stored condition enum to its customer-facing
// label. The stored value is never rewritten.
func (c Car) DisplayCondition() string {
	switch c.Condition {
	case ConditionNew:
		return "Brand New"
	case ConditionUsed:
		return "Foreign Used"
	case ConditionNigerianUsed:
		return "Nigerian Used"
	default:
		return string(c.Condition)
	}
}

// AmountKobo is the vehicle price in minor currency units (kobo) as the
// payment gateway expects it.
func (c Car) AmountKobo() int64 {
	return c.Price * 100
}

// Available reports whether the car should appear in the public catalog.
func (c Car) Available() bool {
	return c.Status == StatusAvailable
}

// Normalize guarantees the slice invariants after a decode from the store.
func (c *Car) Normalize() {
	if c.Images == nil {
		c.Images = []string{}
	}
	if c.Features == nil {
		c.Features = []string{}
	}
}

// Validation

func (c Car) validate() error {
	if c.ID == "" {
		return ErrInvalidID
	}
	if c.Brand == "" {
		return ErrInvalidBrand
	}
	if c.Model == "" {
		return ErrInvalidModel
	}
	if c.Year <= 0 {
		return ErrInvalidYear
	}
	if c.Price < 0 {
		return ErrInvalidPrice
	}
	if strings.TrimSpace(string(c.Condition)) == "" {
		return ErrInvalidCondition
	}
	if strings.TrimSpace(string(c.Status)) == "" {
		return ErrInvalidStatus
	}
	return nil
}

// Helpers

// FormatPrice renders a whole-naira amount with thousands separators
// ("₦3,500,000") for notification texts and deep links.
func FormatPrice(price int64) string {
	neg := price < 0
	if neg {
		price = -price
	}
	s := strconv.FormatInt(price, 10)
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	out := "₦" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
