// Package store holds the client-side synchronization containers. Each
// container mirrors backend state in an in-memory list: fetch-all replaces the
// list wholesale, mutations patch it from the server's canonical response, and
// failures leave it untouched. The backend stays authoritative throughout.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kthsports/storefront/internal/models"
	"github.com/kthsports/storefront/pkg/shopapi"
)

// ProductStore caches the product catalog and forwards mutations to the
// backend. One loading flag and one error string cover all operations;
// concurrent calls on the same store share them.
type ProductStore struct {
	client *shopapi.Client

	mu       sync.RWMutex
	products []models.Product
	loading  bool
	errMsg   string
}

// NewProductStore constructs an empty ProductStore.
func NewProductStore(client *shopapi.Client) *ProductStore {
	return &ProductStore{client: client}
}

// FetchAll replaces the cached list with the backend's current catalog.
// On failure the previous list is kept and the shared error is set.
func (s *ProductStore) FetchAll(ctx context.Context) error {
	s.begin()
	defer s.end()

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		s.fail("Failed to fetch products")
		log.Error().Err(err).Msg("Error fetching products")
		return err
	}
	if products == nil {
		products = []models.Product{}
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

// FetchByID fetches a single product from the backend without touching the
// cached list. It is the fallback when GetByID misses.
func (s *ProductStore) FetchByID(ctx context.Context, id string) (*models.Product, error) {
	s.begin()
	defer s.end()

	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to fetch product"))
		log.Error().Err(err).Str("id", id).Msg("Error fetching product by ID")
		return nil, err
	}
	return product, nil
}

// GetByID scans the cached list for a product. It never issues a network
// request; a miss returns false and the caller decides whether to fall back
// to FetchByID.
func (s *ProductStore) GetByID(id string) (*models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

// Create submits a new product and appends the server's canonical record to
// the cached list.
func (s *ProductStore) Create(ctx context.Context, form *shopapi.ProductForm) (*models.Product, error) {
	s.begin()
	defer s.end()

	product, err := s.client.CreateProduct(ctx, form)
	if err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to add product"))
		log.Error().Err(err).Msg("Error adding product")
		return nil, err
	}

	s.mu.Lock()
	s.products = append(s.products, *product)
	s.mu.Unlock()
	return product, nil
}

// Update submits edited product fields and replaces the matching cached
// record with the server's canonical response.
func (s *ProductStore) Update(ctx context.Context, id string, form *shopapi.ProductForm) (*models.Product, error) {
	s.begin()
	defer s.end()

	product, err := s.client.UpdateProduct(ctx, id, form)
	if err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to update product"))
		log.Error().Err(err).Str("id", id).Msg("Error updating product")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = *product
			break
		}
	}
	s.mu.Unlock()
	return product, nil
}

// Delete removes a product on the backend and drops it from the cached list.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.client.DeleteProduct(ctx, id); err != nil {
		s.fail(shopapi.ErrorMessage(err, "Failed to delete product"))
		log.Error().Err(err).Str("id", id).Msg("Error deleting product")
		return err
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()
	return nil
}

// Products returns a snapshot copy of the cached list.
func (s *ProductStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Loading reports whether any operation is in flight.
func (s *ProductStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the shared error message, empty when the last operation succeeded.
func (s *ProductStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// ClearError resets the shared error message. In-flight operations are not
// affected.
func (s *ProductStore) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *ProductStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *ProductStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *ProductStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}
