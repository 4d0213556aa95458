package shopapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/kthsports/storefront/internal/models"
)

type productWrapper struct {
	Product models.Product `json:"product"`
}

type productListWrapper struct {
	Products []models.Product `json:"products"`
}

// ListProducts retrieves the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var wrapper productListWrapper
	if err := c.doJSON(ctx, http.MethodGet, "/product/all", nil, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Products, nil
}

// GetProduct retrieves a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var wrapper productWrapper
	if err := c.doJSON(ctx, http.MethodGet, "/product/"+id, nil, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Product, nil
}

// CreateProduct submits a new product as a multipart form carrying both the
// JSON-encoded fields and the raw image binaries.
func (c *Client) CreateProduct(ctx context.Context, form *ProductForm) (*models.Product, error) {
	return c.sendProductForm(ctx, http.MethodPost, "/product/add", form)
}

// UpdateProduct replaces the mutable fields of an existing product. Images
// kept from the previous revision travel as URLs, new ones as binaries.
func (c *Client) UpdateProduct(ctx context.Context, id string, form *ProductForm) (*models.Product, error) {
	return c.sendProductForm(ctx, http.MethodPut, "/product/"+id, form)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/product/"+id, nil, nil)
}

func (c *Client) sendProductForm(ctx context.Context, method, endpoint string, form *ProductForm) (*models.Product, error) {
	var buf bytes.Buffer
	contentType, err := form.encode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var wrapper productWrapper
	if err := c.do(req, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Product, nil
}
