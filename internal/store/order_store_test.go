package store

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kthsports/storefront/internal/models"
)

func seedOrders(t *testing.T, backend *fakeBackend) *OrderStore {
	t.Helper()
	backend.mux.HandleFunc("GET /order/allorder", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"_id":"o1","email":"asha@example.com","status":"pending"},
			{"_id":"o2","email":"ASHA@example.com","status":"shipped"},
			{"_id":"o3","email":"ben@example.com","status":"pending"}
		]}`)
	})
	s := NewOrderStore(backend.client())
	require.NoError(t, s.FetchAll(context.Background()))
	return s
}

func TestOrderStore_FetchAllReplacesWholesale(t *testing.T) {
	backend := newFakeBackend(t)
	s := seedOrders(t, backend)
	assert.Len(t, s.Orders(), 3)

	backend.failing.Store(true)
	require.Error(t, s.FetchAll(context.Background()))
	assert.Len(t, s.Orders(), 3)
	assert.Equal(t, "Failed to fetch orders", s.Err())
}

func TestOrderStore_ByStatus(t *testing.T) {
	backend := newFakeBackend(t)
	s := seedOrders(t, backend)
	before := backend.requests.Load()

	pending := s.ByStatus(models.OrderStatusPending)
	assert.Len(t, pending, 2)
	assert.Empty(t, s.ByStatus(models.OrderStatusCancelled))

	// Derived lookups are local-only.
	assert.Equal(t, before, backend.requests.Load())
}

func TestOrderStore_ByEmailCaseInsensitive(t *testing.T) {
	backend := newFakeBackend(t)
	s := seedOrders(t, backend)
	before := backend.requests.Load()

	matches := s.ByEmail("asha@EXAMPLE.com")
	assert.Len(t, matches, 2)
	assert.Empty(t, s.ByEmail("nobody@example.com"))
	assert.Equal(t, before, backend.requests.Load())
}

func TestOrderStore_CreateAppends(t *testing.T) {
	backend := newFakeBackend(t)
	backend.mux.HandleFunc("POST /order/add", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"_id":"o9","status":"pending","quantity":30}}`)
	})

	s := NewOrderStore(backend.client())
	created, err := s.Create(context.Background(), models.Order{Quantity: 30})
	require.NoError(t, err)
	assert.Equal(t, "o9", created.ID)

	o, ok := s.GetByID("o9")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, o.Status)
}

func TestOrderStore_UpdateReplacesStatus(t *testing.T) {
	backend := newFakeBackend(t)
	s := seedOrders(t, backend)
	backend.mux.HandleFunc("PUT /order/o1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"_id":"o1","email":"asha@example.com","status":"processing"}}`)
	})

	_, err := s.Update(context.Background(), "o1", map[string]any{"status": models.OrderStatusProcessing})
	require.NoError(t, err)

	o, ok := s.GetByID("o1")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusProcessing, o.Status)
	assert.Len(t, s.Orders(), 3)
}

func TestOrderStore_DeleteRemoves(t *testing.T) {
	backend := newFakeBackend(t)
	s := seedOrders(t, backend)
	backend.mux.HandleFunc("DELETE /order/o2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, s.Delete(context.Background(), "o2"))
	assert.Len(t, s.Orders(), 2)
	_, ok := s.GetByID("o2")
	assert.False(t, ok)
}

func TestOrderStore_MutationFailureLeavesCacheUntouched(t *testing.T) {
	backend := newFakeBackend(t)
	s := seedOrders(t, backend)
	backend.failing.Store(true)

	_, err := s.Update(context.Background(), "o1", map[string]any{"status": "shipped"})
	require.Error(t, err)
	o, _ := s.GetByID("o1")
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, "backend unavailable", s.Err())

	require.Error(t, s.Delete(context.Background(), "o1"))
	assert.Len(t, s.Orders(), 3)
}
