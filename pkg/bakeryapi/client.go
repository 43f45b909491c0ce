// Package bakeryapi is a client for the bakery's order and catalog backend.
package bakeryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client interface {
	// ListProducts returns active products with sizes, specials included.
	// The backend already leaves out sold-out items.
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductTypes(ctx context.Context) ([]models.ProductType, error)
	ListSpecials(ctx context.Context) ([]models.Special, error)
	RegularTimeslots(ctx context.Context, daysOut int) (map[string]models.TimeslotAvailability, error)
	SpecialTimeslots(ctx context.Context, specialID int64) (map[string]models.TimeslotAvailability, error)
	CreatePaymentIntent(ctx context.Context, amount int64) (*models.PaymentIntentHandle, error)
	ProcessOrderAndPay(ctx context.Context, req *models.ProcessOrderRequest) (*models.OrderResult, error)
	Unsubscribe(ctx context.Context, email string) error
	Ping(ctx context.Context) error
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bakery api %s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// PaymentDeclined reports whether the backend refused the card rather than
// failing to process the order.
func (e *APIError) PaymentDeclined() bool {
	return e.StatusCode == http.StatusPaymentRequired || strings.Contains(strings.ToLower(e.Message), "declined")
}

func (e *APIError) DeclineMessage() string {
	return e.Message
}

type client struct {
	baseURL    string
	http       *http.Client
	maxRetries uint64
}

func New(cfg *config.Backend) Client {
	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxRetries: cfg.MaxRetries,
	}
}

func (c *client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	if err := c.get(ctx, "/activeProductsAndSizesIncludingSpecials", &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *client) ListProductTypes(ctx context.Context) ([]models.ProductType, error) {
	var types []models.ProductType

	if err := c.get(ctx, "/products/types", &types); err != nil {
		return nil, err
	}

	return types, nil
}

func (c *client) ListSpecials(ctx context.Context) ([]models.Special, error) {
	var specials []models.Special

	if err := c.get(ctx, "/activeSpecials?activeOnly=true", &specials); err != nil {
		return nil, err
	}

	return specials, nil
}

func (c *client) RegularTimeslots(ctx context.Context, daysOut int) (map[string]models.TimeslotAvailability, error) {
	slots := map[string]models.TimeslotAvailability{}

	if err := c.get(ctx, "/orders/availableTimes/"+strconv.Itoa(daysOut), &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

func (c *client) SpecialTimeslots(ctx context.Context, specialID int64) (map[string]models.TimeslotAvailability, error) {
	slots := map[string]models.TimeslotAvailability{}

	if err := c.get(ctx, "/orders/availableSpecialTimes/"+strconv.FormatInt(specialID, 10), &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

// intentResponse accepts both spellings of the client secret.
type intentResponse struct {
	ID                string `json:"id"`
	ClientSecret      string `json:"client_secret"`
	ClientSecretCamel string `json:"clientSecret"`
	Amount            int64  `json:"amount"`
}

func (c *client) CreatePaymentIntent(ctx context.Context, amount int64) (*models.PaymentIntentHandle, error) {
	var resp intentResponse

	if err := c.post(ctx, "/stripe/intent", models.CreatePaymentIntentRequest{Amount: amount}, &resp); err != nil {
		return nil, err
	}

	secret := resp.ClientSecret
	if secret == "" {
		secret = resp.ClientSecretCamel
	}

	if secret == "" {
		return nil, errors.New("bakery api POST /stripe/intent: response has no client secret")
	}

	return &models.PaymentIntentHandle{ID: resp.ID, ClientSecret: secret, Amount: resp.Amount}, nil
}

func (c *client) ProcessOrderAndPay(ctx context.Context, req *models.ProcessOrderRequest) (*models.OrderResult, error) {
	result := &models.OrderResult{}

	if err := c.post(ctx, "/processOrderAndPay", req, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *client) Unsubscribe(ctx context.Context, email string) error {
	return c.post(ctx, "/unsubscribe", models.UnsubscribeRequest{Email: email}, nil)
}

func (c *client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/products/types", nil, nil)
}

// get retries transient failures. Client errors are final.
func (c *client) get(ctx context.Context, path string, out any) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(200*time.Millisecond),
		backoff.WithMaxElapsedTime(10*time.Second),
	), c.maxRetries), ctx)

	op := func() error {
		err := c.do(ctx, http.MethodGet, path, nil, out)

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}

		return err
	}

	notify := func(err error, wait time.Duration) {
		slog.WarnContext(ctx, "Retrying bakery api call", slog.String("path", path), slog.Duration("wait", wait), slog.Any("error", err))
	}

	return backoff.RetryNotify(op, policy, notify)
}

// post is never retried; the backend may already have acted on it.
func (c *client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("bakery api %s %s: encode request: %w", method, path, err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("bakery api %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bakery api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("bakery api %s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Method: method, Path: pathOnly(path), StatusCode: resp.StatusCode, Message: errorMessage(data, resp.Status)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("bakery api %s %s: decode response: %w", method, path, err)
	}

	return nil
}

// errorMessage pulls {"error": "..."} or {"message": "..."} out of a body,
// falling back to the HTTP status text.
func errorMessage(data []byte, status string) string {
	var body struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}

	if json.Unmarshal(data, &body) == nil {
		var s string
		if json.Unmarshal(body.Error, &s) == nil && s != "" {
			return s
		}

		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}

		if body.Message != "" {
			return body.Message
		}
	}

	return status
}

func pathOnly(path string) string {
	if u, err := url.Parse(path); err == nil {
		return u.Path
	}

	return path
}
