package models

import (
	"regexp"
	"strings"
	"time"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status is one of the fixed enumeration values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// MinOrderQuantity is the business minimum for a wholesale order request.
const MinOrderQuantity = 30

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Order represents an order request as returned by the backend, including the
// denormalized product snapshot taken at submission time.
type Order struct {
	ID              string      `json:"_id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Quantity        int         `json:"quantity"`
	Description     string      `json:"description,omitempty"`
	ProductID       string      `json:"productId"`
	ProductName     string      `json:"productName"`
	ProductBrand    string      `json:"productBrand"`
	ProductVariant  string      `json:"productVariant"`
	ProductSize     string      `json:"productSize"`
	ProductPrice    float64     `json:"productPrice"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
}

// OrderRequest is the storefront order form. Description is the only optional
// field; everything else is required before the request leaves the client.
type OrderRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"deliveryAddress"`
	Quantity        int    `json:"quantity"`
	Description     string `json:"description,omitempty"`
}

// Validate runs the local form checks and returns per-field error messages.
// An empty map means the form may be submitted; validation failures never
// reach the network.
func (r *OrderRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(r.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(r.Phone) < 10 {
		errs["phone"] = "Please enter a valid phone number"
	}
	if strings.TrimSpace(r.DeliveryAddress) == "" {
		errs["deliveryAddress"] = "Delivery address is required"
	}
	if r.Quantity < MinOrderQuantity {
		errs["quantity"] = "Minimum quantity is 30"
	}

	return errs
}

// BuildOrder combines the validated form with the product snapshot taken at
// submission time. The total is computed client-side: price times quantity.
func (r *OrderRequest) BuildOrder(p *Product, variantColor, size string) Order {
	return Order{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		DeliveryAddress: r.DeliveryAddress,
		Quantity:        r.Quantity,
		Description:     r.Description,
		ProductID:       p.ID,
		ProductName:     p.Name,
		ProductBrand:    p.Brand,
		ProductVariant:  variantColor,
		ProductSize:     size,
		ProductPrice:    p.Price,
		TotalAmount:     p.Price * float64(r.Quantity),
	}
}
