package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	usecase "manchy/internal/application/usecase"
	staffdom "manchy/internal/domain/staff"
)

// StaffHandler serves the team page endpoints under /staff.
type StaffHandler struct {
	uc *usecase.StaffUsecase
}

func NewStaffHandler(uc *usecase.StaffUsecase) http.Handler {
	return &StaffHandler{uc: uc}
}

func (h *StaffHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/staff/":
		h.list(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/staff/":
		h.create(w, r)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/staff/"):
		id := strings.TrimPrefix(r.URL.Path, "/staff/")
		h.update(w, r, id)
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	}
}

// staffView adds the initials the team page uses as a photo placeholder.
type staffView struct {
	staffdom.Staff
	Initials string `json:"initials"`
}

// GET /staff/
func (h *StaffHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.uc.List(ctx)
	if err != nil {
		writeStaffErr(w, err)
		return
	}

	views := make([]staffView, 0, len(members))
	for _, m := range members {
		views = append(views, staffView{Staff: m, Initials: m.Initials()})
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"items": views, "count": len(views)})
}

type staffCreateRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photo_url"`
	Email        string `json:"email"`
	DisplayOrder int    `json:"display_order"`
}

// POST /staff/
func (h *StaffHandler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req staffCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	s, err := staffdom.New(uuid.NewString(), req.Name, req.Role, req.Email, req.DisplayOrder)
	if err != nil {
		writeStaffErr(w, err)
		return
	}
	s.Bio = strings.TrimSpace(req.Bio)
	s.PhotoURL = strings.TrimSpace(req.PhotoURL)

	created, err := h.uc.Create(ctx, s)
	if err != nil {
		writeStaffErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// PUT /staff/{id}
func (h *StaffHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	id = strings.TrimSpace(id)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid id"})
		return
	}

	var patch staffdom.StaffPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	updated, err := h.uc.Update(ctx, id, patch)
	if err != nil {
		writeStaffErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(updated)
}

// Error mapping
func writeStaffErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, staffdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, staffdom.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, staffdom.ErrInvalidID),
		errors.Is(err, staffdom.ErrInvalidName),
		errors.Is(err, staffdom.ErrInvalidRole),
		errors.Is(err, staffdom.ErrInvalidEmail):
		code = http.StatusBadRequest
	}
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
