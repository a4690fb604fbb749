package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"swiftconnect_backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@example.com", req.Email)

		json.NewEncoder(w).Encode(map[string]interface{}{"token": "jwt-123"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", resp.Token)
	assert.Equal(t, "jwt-123", c.token)
}

func TestClient_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-123", r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("jwt-123")

	_, err := c.ListCustomers(context.Background(), "")
	require.NoError(t, err)
}

func TestClient_SearchIsQueryEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ali khan", r.URL.Query().Get("q"))
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCustomers(context.Background(), "ali khan")
	require.NoError(t, err)
}

func TestClient_DecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"customer not found"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetCustomer(context.Background(), "missing")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "customer not found", apiErr.Message)
}

func TestClient_DecodesFlatMiddlewareError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid token"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListPackages(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid token", apiErr.Message)
}

func TestClient_DeleteAcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/customers/c1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	assert.NoError(t, c.DeleteCustomer(context.Background(), "c1"))
}

func TestClient_RecordPaymentHitsPayRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/payments/pay-1/pay", r.URL.Path)

		var req dto.RecordPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 25.5, req.Amount, 1e-9)

		w.Write([]byte(`{"id":"pay-1","status":"partially_paid","pendingAmount":10}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	payment, err := c.RecordPayment(context.Background(), "pay-1", 25.5)
	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ID)
	assert.InDelta(t, 10.0, payment.PendingAmount, 1e-9)
}

func TestClient_MarkPaidHitsDeprecatedRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/pay-1/mark-paid", r.URL.Path)
		w.Write([]byte(`{"id":"pay-1","status":"paid","pendingAmount":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	payment, err := c.MarkPaymentPaid(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, "paid", string(payment.Status))
}
