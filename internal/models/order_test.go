package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validOrderRequest() OrderRequest {
	return OrderRequest{
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		DeliveryAddress: "12 Stadium Road",
		Quantity:        30,
	}
}

func TestOrderRequestValidate_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*OrderRequest)
		wantField string
		wantMsg   string
	}{
		{"valid", func(r *OrderRequest) {}, "", ""},
		{"missing name", func(r *OrderRequest) { r.Name = "  " }, "name", "Name is required"},
		{"missing email", func(r *OrderRequest) { r.Email = "" }, "email", "Email is required"},
		{"malformed email", func(r *OrderRequest) { r.Email = "not-an-email" }, "email", "Please enter a valid email address"},
		{"email with spaces", func(r *OrderRequest) { r.Email = "a b@c.com" }, "email", "Please enter a valid email address"},
		{"missing phone", func(r *OrderRequest) { r.Phone = "" }, "phone", "Phone number is required"},
		{"short phone", func(r *OrderRequest) { r.Phone = "12345" }, "phone", "Please enter a valid phone number"},
		{"missing address", func(r *OrderRequest) { r.DeliveryAddress = "" }, "deliveryAddress", "Delivery address is required"},
		{"quantity below minimum", func(r *OrderRequest) { r.Quantity = 29 }, "quantity", "Minimum quantity is 30"},
		{"zero quantity", func(r *OrderRequest) { r.Quantity = 0 }, "quantity", "Minimum quantity is 30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validOrderRequest()
			tc.mutate(&req)
			errs := req.Validate()
			if tc.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tc.wantMsg, errs[tc.wantField])
		})
	}
}

func TestOrderRequestValidate_QuantityBoundary(t *testing.T) {
	req := validOrderRequest()

	req.Quantity = 29
	assert.Contains(t, req.Validate(), "quantity")

	req.Quantity = 30
	assert.Empty(t, req.Validate())
}

func TestBuildOrder_SnapshotAndTotal(t *testing.T) {
	req := validOrderRequest()
	req.Quantity = 40
	req.Description = "bulk order for club"

	product := Product{
		ID:    "prod-1",
		Name:  "Performance Tee",
		Brand: "KTH",
		Price: 499.5,
	}

	order := req.BuildOrder(&product, "Red", "L")

	assert.Equal(t, "prod-1", order.ProductID)
	assert.Equal(t, "Performance Tee", order.ProductName)
	assert.Equal(t, "KTH", order.ProductBrand)
	assert.Equal(t, "Red", order.ProductVariant)
	assert.Equal(t, "L", order.ProductSize)
	assert.Equal(t, 499.5, order.ProductPrice)
	assert.Equal(t, 499.5*40, order.TotalAmount)
	assert.Equal(t, "bulk order for club", order.Description)
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, OrderStatus("returned").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
