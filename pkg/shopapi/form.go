package shopapi

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/kthsports/storefront/internal/models"
)

// ImageUpload is a new image binary to attach to a product submission.
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

// VariantImage is one entry of a variant's image list: either a URL already
// hosted by the backend (kept untouched on edit) or a fresh upload.
type VariantImage struct {
	URL    string
	Upload *ImageUpload
}

// VariantForm is a colorway being submitted.
type VariantForm struct {
	Color          string
	AvailableSizes []string
	Images         []VariantImage
}

// ProductForm is the admin product submission. Required fields are the
// scalars plus at least one variant; Description is free text and may be
// empty. The same form serves create and edit.
type ProductForm struct {
	Name           string
	Brand          string
	Type           models.ProductType
	Category       string
	Price          float64
	Description    string
	InStock        bool
	Sizes          []string
	AvailableSizes []string
	Variants       []VariantForm
}

// Validate mirrors the admin form guardrails. It runs before any bytes are
// written to the wire.
func (f *ProductForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if f.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	if len(f.Variants) == 0 {
		return fmt.Errorf("please add at least one variant")
	}
	for i, v := range f.Variants {
		if strings.TrimSpace(v.Color) == "" {
			return fmt.Errorf("variant %d: please specify a color", i+1)
		}
		if len(v.Images) == 0 {
			return fmt.Errorf("variant %d: please add at least one image", i+1)
		}
		if len(v.AvailableSizes) == 0 {
			return fmt.Errorf("variant %d: please select available sizes", i+1)
		}
	}
	return nil
}

// wireVariant is the JSON shape of one variant inside the "variants" field.
// Images carries either retained URLs or the field names of uploads included
// in the same multipart body.
type wireVariant struct {
	Color          string   `json:"color"`
	AvailableSizes []string `json:"availableSizes"`
	Images         []string `json:"images"`
}

// encode writes the multipart body the backend expects: scalar fields
// verbatim, sizes/availableSizes/variants JSON-encoded, and each new image
// binary under an "image-N" field with a counter shared across variants.
// It returns the Content-Type header value carrying the boundary.
func (f *ProductForm) encode(w io.Writer) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	mw := multipart.NewWriter(w)

	fields := map[string]string{
		"name":        f.Name,
		"brand":       f.Brand,
		"type":        string(f.Type),
		"category":    f.Category,
		"price":       strconv.FormatFloat(f.Price, 'f', -1, 64),
		"description": f.Description,
		"inStock":     strconv.FormatBool(f.InStock),
	}
	for _, key := range []string{"name", "brand", "type", "category", "price", "description", "inStock"} {
		if err := mw.WriteField(key, fields[key]); err != nil {
			return "", err
		}
	}

	for _, key := range []string{"sizes", "availableSizes"} {
		val := f.Sizes
		if key == "availableSizes" {
			val = f.AvailableSizes
		}
		encoded, err := json.Marshal(emptyAsList(val))
		if err != nil {
			return "", err
		}
		if err := mw.WriteField(key, string(encoded)); err != nil {
			return "", err
		}
	}

	variants := make([]wireVariant, 0, len(f.Variants))
	imageCounter := 0
	for _, v := range f.Variants {
		wire := wireVariant{
			Color:          v.Color,
			AvailableSizes: emptyAsList(v.AvailableSizes),
			Images:         []string{},
		}
		for _, img := range v.Images {
			if img.Upload == nil {
				// Existing image URL from a previous revision; passed through.
				wire.Images = append(wire.Images, img.URL)
				continue
			}
			fieldName := fmt.Sprintf("image-%d", imageCounter)
			imageCounter++
			part, err := mw.CreateFormFile(fieldName, img.Upload.Filename)
			if err != nil {
				return "", err
			}
			if _, err := io.Copy(part, img.Upload.Data); err != nil {
				return "", fmt.Errorf("failed to write %s: %w", fieldName, err)
			}
			wire.Images = append(wire.Images, fieldName)
		}
		variants = append(variants, wire)
	}

	encodedVariants, err := json.Marshal(variants)
	if err != nil {
		return "", err
	}
	if err := mw.WriteField("variants", string(encodedVariants)); err != nil {
		return "", err
	}

	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}

// emptyAsList keeps nil slices encoding as [] rather than null.
func emptyAsList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
