package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInitializeNotConfigured(t *testing.T) {
	c := NewClient("", "")
	if c.Configured() {
		t.Fatal("empty secret must not be configured")
	}
	if _, err := c.Initialize(context.Background(), InitializeRequest{Email: "a@b.com", Amount: 100}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v", err)
	}
}

func TestInitializeSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/xyz","access_code":"xyz","reference":"MA-1"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	res, err := c.Initialize(context.Background(), InitializeRequest{
		Email:     "jane@example.com",
		Amount:    850_000_000,
		Reference: "MA-1",
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if gotAuth != "Bearer sk_test_abc" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotBody["currency"] != "NGN" {
		t.Fatalf("currency = %v, must be pinned to NGN", gotBody["currency"])
	}
	if gotBody["amount"] != float64(850_000_000) {
		t.Fatalf("amount = %v", gotBody["amount"])
	}

	if !res.Status || res.Data.AuthorizationURL != "https://checkout.paystack.com/xyz" {
		t.Fatalf("res = %+v", res)
	}
	if len(res.Raw) == 0 {
		t.Fatal("raw body must be preserved")
	}
}

func TestInitializeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_bad")
	res, err := c.Initialize(context.Background(), InitializeRequest{Email: "a@b.com", Amount: 100})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("got %v", err)
	}
	if res == nil || res.Message != "Invalid key" {
		t.Fatalf("gateway message must be preserved: %+v", res)
	}
}

func TestInitializeFalsyStatusInOKBody(t *testing.T) {
	// HTTP 200 with status:false still counts as a rejection.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"Amount too low"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	res, err := c.Initialize(context.Background(), InitializeRequest{Email: "a@b.com", Amount: 1})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("got %v", err)
	}
	if res.Message != "Amount too low" {
		t.Fatalf("res = %+v", res)
	}
}

func TestInitializeMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	if _, err := c.Initialize(context.Background(), InitializeRequest{Email: "a@b.com", Amount: 100}); err == nil {
		t.Fatal("expected decode error")
	}
}
