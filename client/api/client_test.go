package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanjeevika-shop/models"
)

func TestLoginDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "priya@example.com", req.Email)

		json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			Message: "Login successful",
			User:    &models.User{ID: "u1", Name: "Priya", Email: req.Email},
			Token:   "jwt-token",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.Login(context.Background(), "priya@example.com", "secret")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "jwt-token", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Priya", resp.User.Name)
}

func TestLoginErrorStatusStillDecodesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.AuthResponse{Success: false, Message: "invalid email or password"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.Login(context.Background(), "priya@example.com", "wrong")
	require.NoError(t, err, "a rejected login is a value, not an error")

	assert.False(t, resp.Success)
	assert.Equal(t, "invalid email or password", resp.Message)
}

func TestLoginTransportErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Login(context.Background(), "priya@example.com", "secret")
	assert.Error(t, err)
}

func TestBearerTokenInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []models.Product{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, func() string { return "stored-token" })
	_, err := client.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuth)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []models.Product{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, func() string { return "" })
	_, err := client.Products(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestLogoutIgnoresErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	assert.NoError(t, client.Logout(context.Background()), "non-5xx logout responses are not errors")
}

func TestLogoutServerErrorIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	assert.Error(t, client.Logout(context.Background()))
}

func TestProductByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/PROD001", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    models.Product{ID: "PROD001", Title: "Ashwagandha Capsules", Price: 106},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	product, err := client.ProductByID(context.Background(), "PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Ashwagandha Capsules", product.Title)
}

func TestProductByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "product not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ProductByID(context.Background(), "PROD404")
	assert.ErrorContains(t, err, "product not found")
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)

		var req models.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    models.Order{OrderNumber: "ORD-20260829-120000", TotalAmount: 133.08},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	order, err := client.CreateOrder(context.Background(), models.CheckoutRequest{
		Items:   []models.CartLine{{ProductID: "PROD001", Title: "Ashwagandha Capsules", Price: 106, Quantity: 1}},
		Address: models.Address{Line1: "12 MG Road", City: "Kochi", State: "Kerala", PinCode: "682001", Country: "India"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260829-120000", order.OrderNumber)
}
