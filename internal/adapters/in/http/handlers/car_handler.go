package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	usecase "manchy/internal/application/usecase"
	cardom "manchy/internal/domain/car"
)

// CarHandler serves the vehicle catalog endpoints under /cars.
type CarHandler struct {
	uc             *usecase.CatalogUsecase
	whatsappNumber string
}

func NewCarHandler(uc *usecase.CatalogUsecase, whatsappNumber string) http.Handler {
	return &CarHandler{uc: uc, whatsappNumber: whatsappNumber}
}

func (h *CarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/cars/":
		h.list(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/cars/featured":
		h.featured(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/cars/brands":
		h.brands(w, r)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/photos"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/cars/"), "/photos")
		h.addPhoto(w, r, id)
	case r.Method == http.MethodDelete && strings.Contains(r.URL.Path, "/photos/"):
		rest := strings.TrimPrefix(r.URL.Path, "/cars/")
		id, fileName, _ := strings.Cut(rest, "/photos/")
		h.removePhoto(w, r, id, fileName)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/cars/"):
		id := strings.TrimPrefix(r.URL.Path, "/cars/")
		h.get(w, r, id)
	case r.Method == http.MethodPost && r.URL.Path == "/cars/":
		h.create(w, r)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/cars/"):
		id := strings.TrimPrefix(r.URL.Path, "/cars/")
		h.update(w, r, id)
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	}
}

// GET /cars/?brand=&condition=&transmission=&year=&price=min-max&sort=
func (h *CarHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	crit := cardom.ParseCriteria(r.URL.Query())
	sortKey := cardom.ParseSortKey(r.URL.Query().Get("sort"))

	res, err := h.uc.Browse(ctx, crit, sortKey)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// GET /cars/featured?limit=N
func (h *CarHandler) featured(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	cars, err := h.uc.Featured(ctx, limit)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"items": cars, "count": len(cars)})
}

// GET /cars/brands
func (h *CarHandler) brands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	brands, err := h.uc.Brands(ctx)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"brands": brands})
}

// carDetail decorates a catalog entry with its customer-facing labels and
// the WhatsApp contact link the detail page renders.
type carDetail struct {
	cardom.Car
	DisplayCondition string `json:"display_condition"`
	DisplayPrice     string `json:"display_price"`
	WhatsAppLink     string `json:"whatsapp_link"`
}

// GET /cars/{id}
func (h *CarHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	c, err := h.uc.GetByID(ctx, id)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(carDetail{
		Car:              c,
		DisplayCondition: c.DisplayCondition(),
		DisplayPrice:     cardom.FormatPrice(c.Price),
		WhatsAppLink:     cardom.WhatsAppLink(h.whatsappNumber, cardom.InterestMessage(c)),
	})
}

type carCreateRequest struct {
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Mileage      int      `json:"mileage"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Color        string   `json:"color"`
	Condition    string   `json:"condition"`
	Price        int64    `json:"price"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Description  string   `json:"description"`
	IsFeatured   bool     `json:"is_featured"`
}

// POST /cars/
func (h *CarHandler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req carCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	c, err := cardom.New(
		uuid.NewString(), req.Brand, req.Model, req.Year, req.Price,
		cardom.Condition(req.Condition), cardom.StatusAvailable, time.Now(),
	)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	c.Mileage = req.Mileage
	c.Transmission = cardom.Transmission(req.Transmission)
	c.FuelType = cardom.FuelType(req.FuelType)
	c.Color = strings.TrimSpace(req.Color)
	c.Description = strings.TrimSpace(req.Description)
	c.IsFeatured = req.IsFeatured
	if len(req.Images) > 0 {
		c.Images = req.Images
	}
	if len(req.Features) > 0 {
		c.Features = req.Features
	}
	c.Normalize()

	created, err := h.uc.Create(ctx, c)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// PUT /cars/{id}
func (h *CarHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	var patch cardom.CarPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	updated, err := h.uc.Update(ctx, id, patch)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(updated)
}

// POST /cars/{id}/photos (multipart form, field "photo")
func (h *CarHandler) addPhoto(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "photo file is required"})
		return
	}
	defer file.Close()

	updated, err := h.uc.AddPhoto(ctx, id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(updated)
}

// DELETE /cars/{id}/photos/{fileName}
func (h *CarHandler) removePhoto(w http.ResponseWriter, r *http.Request, id, fileName string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	fileName = strings.TrimSpace(fileName)
	if id == "" || fileName == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	updated, err := h.uc.RemovePhoto(ctx, id, fileName)
	if err != nil {
		writeCarErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(updated)
}

// Error mapping
func writeCarErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, cardom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, cardom.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, usecase.ErrPhotoStoreNotConfigured):
		code = http.StatusServiceUnavailable
	case errors.Is(err, cardom.ErrInvalidID),
		errors.Is(err, cardom.ErrInvalidBrand),
		errors.Is(err, cardom.ErrInvalidModel),
		errors.Is(err, cardom.ErrInvalidYear),
		errors.Is(err, cardom.ErrInvalidPrice),
		errors.Is(err, cardom.ErrInvalidCondition),
		errors.Is(err, cardom.ErrInvalidStatus):
		code = http.StatusBadRequest
	}
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
