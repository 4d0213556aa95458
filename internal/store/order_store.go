package store

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kthsports/storefront/internal/models"
	"github.com/kthsports/storefront/pkg/shopapi"
)

// OrderStore caches order requests and forwards mutations to the backend.
// Cache semantics mirror ProductStore; on top of the shared capability set it
// offers local lookups by status and by customer email.
type OrderStore struct {
	client *shopapi.Client

	mu      sync.RWMutex
	orders  []models.Order
	loading bool
	errMsg  string
}

// NewOrderStore constructs an empty OrderStore.
func NewOrderStore(client *shopapi.Client) *OrderStore {
	return &OrderStore{client: client}
}

// FetchAll replaces the cached list with the backend's current orders.
func (s *OrderStore) FetchAll(ctx context.Context) error {
	s.begin()
	defer s.end()

	orders, err := s.client.ListOrders(ctx)
	if err != nil {
		s.fail("Failed to fetch orders")
		log.Error().Err(err).Msg("Error fetching orders")
		return err
	}
	if orders == nil {
		orders = []models.Order{}
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// FetchByID fetches a single order without touching the cached list.
func (s *OrderStore) FetchByID(ctx context.Context, id string) (*models.Order, error) {
	s.begin()
	defer s.end()

	order, err := s.client.GetOrder(ctx, id)
	if err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to fetch order"))
		log.Error().Err(err).Str("id", id).Msg("Error fetching order by ID")
		return nil, err
	}
	return order, nil
}

// GetByID scans the cached list; it never issues a network request.
func (s *OrderStore) GetByID(id string) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, true
		}
	}
	return nil, false
}

// Create submits a new order request and appends the server's canonical
// record to the cached list.
func (s *OrderStore) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	s.begin()
	defer s.end()

	created, err := s.client.CreateOrder(ctx, order)
	if err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to add order"))
		log.Error().Err(err).Msg("Error adding order")
		return nil, err
	}

	s.mu.Lock()
	s.orders = append(s.orders, *created)
	s.mu.Unlock()
	return created, nil
}

// Update submits changed order fields (typically the status) and replaces the
// matching cached record with the server's canonical response.
func (s *OrderStore) Update(ctx context.Context, id string, payload any) (*models.Order, error) {
	s.begin()
	defer s.end()

	updated, err := s.client.UpdateOrder(ctx, id, payload)
	if err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to update order"))
		log.Error().Err(err).Str("id", id).Msg("Error updating order")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes an order on the backend and drops it from the cached list.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.client.DeleteOrder(ctx, id); err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to delete order"))
		log.Error().Err(err).Str("id", id).Msg("Error deleting order")
		return err
	}

	s.mu.Lock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	s.mu.Unlock()
	return nil
}

// ByStatus returns the cached orders in the given state. Local only.
func (s *OrderStore) ByStatus(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// ByEmail returns the cached orders for a customer, matched case-insensitively.
// Local only.
func (s *OrderStore) ByEmail(email string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if strings.EqualFold(o.Email, email) {
			out = append(out, o)
		}
	}
	return out
}

// Orders returns a snapshot copy of the cached list.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Loading reports whether any operation is in flight.
func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the shared error message, empty when the last operation succeeded.
func (s *OrderStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// ClearError resets the shared error message.
func (s *OrderStore) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *OrderStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *OrderStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *OrderStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}
