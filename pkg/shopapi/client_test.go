package shopapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kthsports/storefront/internal/models"
)

func orderFixture() models.Order {
	return models.Order{
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		DeliveryAddress: "12 Stadium Road",
		Quantity:        30,
		ProductID:       "p1",
		ProductName:     "Tee",
		ProductPrice:    499,
		TotalAmount:     14970,
	}
}

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/product/all", r.URL.Path)
		fmt.Fprint(w, `{"products":[{"_id":"p1","name":"Tee"},{"_id":"p2","name":"Shoe"}]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Shoe", products[1].Name)
}

func TestListOrders_DataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/allorder", r.URL.Path)
		fmt.Fprint(w, `{"data":[{"_id":"o1","status":"pending"}]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestAPIError_CarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"Product name already exists"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListProducts(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "Product name already exists", apiErr.Message)
	assert.Equal(t, "Product name already exists", ErrorMessage(err, "fallback"))
}

func TestErrorMessage_Fallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	// No {message} in the body, so the caller's fallback wins.
	assert.Equal(t, "Failed to add product", ErrorMessage(err, "Failed to add product"))

	// Transport errors are not APIErrors; fallback wins there too.
	assert.Equal(t, "generic", ErrorMessage(errors.New("boom"), "generic"))
}

func TestDeleteProduct_NoBodyRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/product/p9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	assert.NoError(t, client.DeleteProduct(context.Background(), "p9"))
}

func TestCreateOrder_PostsJSONAndDecodesData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order/add", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		fmt.Fprint(w, `{"data":{"_id":"o7","quantity":30,"status":"pending"}}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	order, err := client.CreateOrder(context.Background(), orderFixture())
	require.NoError(t, err)
	assert.Equal(t, "o7", order.ID)
	assert.Equal(t, 30, order.Quantity)
}
