package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/models"
	"github.com/kthsports/storefront/internal/store"
	"github.com/kthsports/storefront/internal/utils"
	"github.com/kthsports/storefront/pkg/shopapi"
)

// AdminProductHandler serves the admin dashboard's product management
// endpoints. Requests arrive in the same multipart layout the dashboard form
// produces and are forwarded to the backend through the product container.
type AdminProductHandler struct {
	products *store.ProductStore
}

// NewAdminProductHandler constructs an AdminProductHandler.
func NewAdminProductHandler(products *store.ProductStore) *AdminProductHandler {
	return &AdminProductHandler{products: products}
}

// CreateProduct submits a new product.
func (h *AdminProductHandler) CreateProduct(c *gin.Context) {
	form, err := h.parseForm(c)
	if err != nil {
		utils.Error(c, 400, "INVALID_FORM", err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), form)
	if err != nil {
		utils.Error(c, 502, "CREATE_FAILED", shopapi.ErrorMessage(err, "Failed to add product"))
		return
	}
	utils.Success(c, 201, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct replaces a product's mutable fields.
func (h *AdminProductHandler) UpdateProduct(c *gin.Context) {
	form, err := h.parseForm(c)
	if err != nil {
		utils.Error(c, 400, "INVALID_FORM", err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		utils.Error(c, 502, "UPDATE_FAILED", shopapi.ErrorMessage(err, "Failed to update product"))
		return
	}
	utils.Success(c, 200, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct removes a product.
func (h *AdminProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.Error(c, 502, "DELETE_FAILED", shopapi.ErrorMessage(err, "Failed to delete product"))
		return
	}
	utils.Success(c, 200, "Product deleted successfully", nil)
}

// wireVariantIn mirrors the dashboard's JSON-encoded variants field: image
// entries are either retained URLs or the field names of uploads in the same
// multipart body.
type wireVariantIn struct {
	Color          string   `json:"color"`
	AvailableSizes []string `json:"availableSizes"`
	Images         []string `json:"images"`
}

func (h *AdminProductHandler) parseForm(c *gin.Context) (*shopapi.ProductForm, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	field := func(name string) string {
		if vals := mf.Value[name]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	form := &shopapi.ProductForm{
		Name:        field("name"),
		Brand:       field("brand"),
		Type:        models.ProductType(field("type")),
		Category:    field("category"),
		Description: field("description"),
	}
	if raw := field("price"); raw != "" {
		if form.Price, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, err
		}
	}
	if raw := field("inStock"); raw != "" {
		if form.InStock, err = strconv.ParseBool(raw); err != nil {
			return nil, err
		}
	}
	if raw := field("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.Sizes); err != nil {
			return nil, err
		}
	}
	if raw := field("availableSizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.AvailableSizes); err != nil {
			return nil, err
		}
	}

	var wire []wireVariantIn
	if raw := field("variants"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &wire); err != nil {
			return nil, err
		}
	}

	for _, wv := range wire {
		variant := shopapi.VariantForm{
			Color:          wv.Color,
			AvailableSizes: wv.AvailableSizes,
		}
		for _, img := range wv.Images {
			if strings.HasPrefix(img, "http") {
				variant.Images = append(variant.Images, shopapi.VariantImage{URL: img})
				continue
			}
			files := mf.File[img]
			if len(files) == 0 {
				return nil, errMissingImage(img)
			}
			f, err := files[0].Open()
			if err != nil {
				return nil, err
			}
			// Closed when the request body is released; the upload is
			// consumed before this handler returns.
			variant.Images = append(variant.Images, shopapi.VariantImage{
				Upload: &shopapi.ImageUpload{Filename: files[0].Filename, Data: f},
			})
		}
		form.Variants = append(form.Variants, variant)
	}

	return form, nil
}

type missingImageError string

func errMissingImage(field string) error { return missingImageError(field) }

func (e missingImageError) Error() string {
	return "variant references missing upload field " + string(e)
}
