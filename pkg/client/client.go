// Package client - типизированный HTTP клиент для SwiftConnect API.
// Используется консольным фронтендом и интеграционными тестами.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
)

// APIError - ошибка, возвращенная сервером
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound сообщает, что сервер ответил 404
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New создает клиент для baseURL вида http://host:port/api/v1.
// Таймаут не задается: дедлайны контролирует вызывающая сторона через ctx.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// SetToken устанавливает JWT для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login аутентифицирует сотрудника и запоминает токен
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// --- Customers ---

func (c *Client) ListCustomers(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	path := "/customers"
	if search != "" {
		path += "?q=" + url.QueryEscape(search)
	}
	var customers []dto.CustomerResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	var customer dto.CustomerResponse
	if err := c.do(ctx, http.MethodGet, "/customers/"+id, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	var customer dto.CustomerResponse
	if err := c.do(ctx, http.MethodPost, "/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}

// --- Packages ---

func (c *Client) ListPackages(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package
	if err := c.do(ctx, http.MethodGet, "/packages", nil, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *Client) CreatePackage(ctx context.Context, req *dto.CreatePackageRequest) (*models.Package, error) {
	var pkg models.Package
	if err := c.do(ctx, http.MethodPost, "/packages", req, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (c *Client) UpdatePackage(ctx context.Context, id string, req *dto.UpdatePackageRequest) (*models.Package, error) {
	var pkg models.Package
	if err := c.do(ctx, http.MethodPatch, "/packages/"+id, req, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (c *Client) DeletePackage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/packages/"+id, nil, nil)
}

// --- Subscriptions ---

func (c *Client) CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) UpdateSubscription(ctx context.Context, id string, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.do(ctx, http.MethodPatch, "/subscriptions/"+id, req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) DeleteSubscription(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/subscriptions/"+id, nil, nil)
}

// --- Payments ---

func (c *Client) RecordPayment(ctx context.Context, id string, amount float64) (*models.Payment, error) {
	var payment models.Payment
	req := dto.RecordPaymentRequest{Amount: amount}
	if err := c.do(ctx, http.MethodPatch, "/payments/"+id+"/pay", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkPaymentPaid закрывает платеж целиком.
// Deprecated: используйте RecordPayment с точной суммой.
func (c *Client) MarkPaymentPaid(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := c.do(ctx, http.MethodPatch, "/payments/"+id+"/mark-paid", nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// do выполняет запрос и декодирует ответ либо ошибку сервера
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError разбирает тело ошибки в формате apperrors.ErrorResponse
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Code: "UNKNOWN"}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr.Message = resp.Status
		return apiErr
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		return apiErr
	}

	// Middleware отвечает плоским {"error": "..."}
	var flat struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &flat); err == nil && flat.Error != "" {
		apiErr.Message = flat.Error
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}
