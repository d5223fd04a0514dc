package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	usecase "manchy/internal/application/usecase"
	inqdom "manchy/internal/domain/inquiry"
)

// InquiryHandler serves the customer inquiry endpoints under /inquiries.
type InquiryHandler struct {
	uc *usecase.InquiryUsecase
}

func NewInquiryHandler(uc *usecase.InquiryUsecase) http.Handler {
	return &InquiryHandler{uc: uc}
}

func (h *InquiryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/inquiries/":
		h.submit(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/inquiries/"):
		id := strings.TrimPrefix(r.URL.Path, "/inquiries/")
		h.get(w, r, id)
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	}
}

// POST /inquiries/
func (h *InquiryHandler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in usecase.SubmitInquiryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	created, err := h.uc.Submit(ctx, in)
	if err != nil {
		writeInquiryErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "inquiry": created})
}

// GET /inquiries/{id}
func (h *InquiryHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	in, err := h.uc.GetByID(ctx, id)
	if err != nil {
		writeInquiryErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(in)
}

// Error mapping
func writeInquiryErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, inqdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, inqdom.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, inqdom.ErrInvalidName),
		errors.Is(err, inqdom.ErrInvalidEmail),
		errors.Is(err, inqdom.ErrInvalidType),
		errors.Is(err, inqdom.ErrInvalidMessage):
		code = http.StatusBadRequest
	}
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
