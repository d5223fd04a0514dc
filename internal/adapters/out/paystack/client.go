package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// Errors
var (
	ErrNotConfigured = errors.New("paystack: secret key not configured")
	ErrRejected      = errors.New("paystack: initialization rejected")
)

// InitializeRequest is the transaction-initialize payload. Amount is in
// minor currency units (kobo); currency is pinned to NGN by the client.
type InitializeRequest struct {
	Email     string         `json:"email"`
	Amount    int64          `json:"amount"`
	Reference string         `json:"reference,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Currency  string         `json:"currency"`
}

// InitializeResponse mirrors Paystack's response body. Raw carries the
// verbatim body so the HTTP boundary can pass it through untouched.
type InitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`

	Raw json.RawMessage `json:"-"`
}

// Client calls Paystack's transaction initialization endpoint.
type Client struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewClient builds a Paystack client. baseURL is overridable for tests;
// empty means the production API.
func NewClient(baseURL, secretKey string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		secretKey: strings.TrimSpace(secretKey),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether a secret key is present. Callers must check
// this before Initialize so an unconfigured server never reaches the
// gateway.
func (c *Client) Configured() bool {
	return c != nil && c.secretKey != ""
}

// Initialize submits the payment to Paystack and returns its response.
// A non-2xx status or a falsy status field in the body maps to ErrRejected
// with the gateway's message preserved on the response.
func (c *Client) Initialize(ctx context.Context, reqBody InitializeRequest) (*InitializeResponse, error) {
	if c == nil {
		return nil, errors.New("paystack client is nil")
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	reqBody.Currency = "NGN"

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode initialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/transaction/initialize",
		bytes.NewReader(b),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		log.Printf("[paystack] initialize request FAILED err=%v", err)
		return nil, fmt.Errorf("initialize payment: %w", err)
	}
	defer res.Body.Close()

	bodyBytes, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))

	var out InitializeResponse
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		log.Printf("[paystack] decode response FAILED status=%d body=%s", res.StatusCode, string(bodyBytes))
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}
	out.Raw = json.RawMessage(bodyBytes)

	if res.StatusCode < 200 || res.StatusCode >= 300 || !out.Status {
		log.Printf("[paystack] initialize rejected status=%d message=%s", res.StatusCode, out.Message)
		return &out, ErrRejected
	}

	log.Printf("[paystack] initialize OK reference=%s", out.Data.Reference)
	return &out, nil
}
