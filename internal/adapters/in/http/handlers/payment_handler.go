package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"manchy/internal/adapters/out/paystack"
	usecase "manchy/internal/application/usecase"
	cardom "manchy/internal/domain/car"
	txdom "manchy/internal/domain/transaction"
)

// PaymentHandler serves the checkout endpoints under /payments.
//
// /payments/initialize keeps the exact wire contract the storefront's
// payment form was built against: {status:false,message} on failure and
// the gateway body passed through verbatim on success.
type PaymentHandler struct {
	uc       *usecase.CheckoutUsecase
	paystack *paystack.Client
}

func NewPaymentHandler(uc *usecase.CheckoutUsecase, ps *paystack.Client) http.Handler {
	return &PaymentHandler{uc: uc, paystack: ps}
}

func (h *PaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/payments/initialize":
		h.initialize(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/payments/start":
		h.start(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/payments/record":
		h.record(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	}
}

type initializeRequest struct {
	Email     string         `json:"email"`
	Amount    json.Number    `json:"amount"`
	Reference string         `json:"reference"`
	Metadata  map[string]any `json:"metadata"`
}

// POST /payments/initialize
func (h *PaymentHandler) initialize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeGatewayErr(w, http.StatusBadRequest, "POST required")
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var req initializeRequest
	if err := dec.Decode(&req); err != nil {
		writeGatewayErr(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !strings.Contains(req.Email, "@") {
		writeGatewayErr(w, http.StatusBadRequest, "Valid email address is required")
		return
	}
	amount, err := req.Amount.Int64()
	if err != nil || amount <= 0 {
		writeGatewayErr(w, http.StatusBadRequest, "Valid amount in kobo is required")
		return
	}

	if !h.paystack.Configured() {
		log.Printf("[payment] initialize refused: secret key missing")
		writeGatewayErr(w, http.StatusInternalServerError, "Payment service not configured")
		return
	}

	res, err := h.paystack.Initialize(ctx, paystack.InitializeRequest{
		Email:     req.Email,
		Amount:    amount,
		Reference: strings.TrimSpace(req.Reference),
		Metadata:  req.Metadata,
	})
	if err != nil {
		if errors.Is(err, paystack.ErrRejected) && res != nil {
			msg := res.Message
			if msg == "" {
				msg = "Payment initialization failed"
			}
			writeGatewayErr(w, http.StatusBadRequest, msg)
			return
		}
		writeGatewayErr(w, http.StatusInternalServerError, "Payment initialization failed")
		return
	}

	// Success passes the gateway body through untouched.
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Raw)
}

type startRequest struct {
	CarID    string           `json:"car_id"`
	Customer usecase.Customer `json:"customer"`
}

// POST /payments/start
func (h *PaymentHandler) start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	res, err := h.uc.Start(ctx, strings.TrimSpace(req.CarID), req.Customer)
	if err != nil {
		writeCheckoutErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

type recordRequest struct {
	CarID     string           `json:"car_id"`
	Customer  usecase.Customer `json:"customer"`
	Reference string           `json:"reference"`
}

// POST /payments/record
func (h *PaymentHandler) record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	res, err := h.uc.RecordPayment(ctx, strings.TrimSpace(req.CarID), req.Customer, req.Reference)
	if err != nil {
		writeCheckoutErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeGatewayErr emits the edge contract's failure shape.
func writeGatewayErr(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "message": msg})
}

// Error mapping
func writeCheckoutErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, cardom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidCustomerEmail),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidCustomerPhone),
		errors.Is(err, txdom.ErrInvalidReference):
		code = http.StatusBadRequest
	case errors.Is(err, paystack.ErrNotConfigured):
		code = http.StatusServiceUnavailable
	case errors.Is(err, paystack.ErrRejected):
		code = http.StatusBadGateway
	}
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
