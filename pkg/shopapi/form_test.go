package shopapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kthsports/storefront/internal/models"
)

func sampleForm() *ProductForm {
	return &ProductForm{
		Name:           "Trail Shoe",
		Brand:          "KTH",
		Type:           models.ProductTypeMen,
		Category:       "shoes",
		Price:          2999.5,
		Description:    "All-terrain runner",
		InStock:        true,
		Sizes:          []string{"M", "L", "XL"},
		AvailableSizes: []string{"M", "L"},
		Variants: []VariantForm{
			{
				Color:          "Black",
				AvailableSizes: []string{"M"},
				Images: []VariantImage{
					{Upload: &ImageUpload{Filename: "black-front.jpg", Data: strings.NewReader("jpeg-bytes-1")}},
					{URL: "https://cdn.example.com/black-side.jpg"},
				},
			},
			{
				Color:          "Red",
				AvailableSizes: []string{"M", "L"},
				Images: []VariantImage{
					{Upload: &ImageUpload{Filename: "red-front.jpg", Data: strings.NewReader("jpeg-bytes-2")}},
				},
			},
		},
	}
}

// parseMultipart decodes an encoded form back into field values and file
// contents keyed by field name.
func parseMultipart(t *testing.T, contentType string, body []byte) (map[string]string, map[string]string) {
	t.Helper()

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])

	fields := make(map[string]string)
	files := make(map[string]string)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			files[part.FormName()] = string(data)
		} else {
			fields[part.FormName()] = string(data)
		}
	}
	return fields, files
}

func TestProductFormEncode(t *testing.T) {
	var buf bytes.Buffer
	contentType, err := sampleForm().encode(&buf)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(contentType, "multipart/form-data"))

	fields, files := parseMultipart(t, contentType, buf.Bytes())

	assert.Equal(t, "Trail Shoe", fields["name"])
	assert.Equal(t, "KTH", fields["brand"])
	assert.Equal(t, "men", fields["type"])
	assert.Equal(t, "shoes", fields["category"])
	assert.Equal(t, "2999.5", fields["price"])
	assert.Equal(t, "All-terrain runner", fields["description"])
	assert.Equal(t, "true", fields["inStock"])

	var sizes []string
	require.NoError(t, json.Unmarshal([]byte(fields["sizes"]), &sizes))
	assert.Equal(t, []string{"M", "L", "XL"}, sizes)

	var available []string
	require.NoError(t, json.Unmarshal([]byte(fields["availableSizes"]), &available))
	assert.Equal(t, []string{"M", "L"}, available)

	// New binaries take sequential image-N field names shared across
	// variants; kept URLs pass through verbatim.
	var variants []wireVariant
	require.NoError(t, json.Unmarshal([]byte(fields["variants"]), &variants))
	require.Len(t, variants, 2)
	assert.Equal(t, []string{"image-0", "https://cdn.example.com/black-side.jpg"}, variants[0].Images)
	assert.Equal(t, []string{"image-1"}, variants[1].Images)
	assert.Equal(t, "Black", variants[0].Color)
	assert.Equal(t, []string{"M", "L"}, variants[1].AvailableSizes)

	assert.Equal(t, "jpeg-bytes-1", files["image-0"])
	assert.Equal(t, "jpeg-bytes-2", files["image-1"])
	assert.Len(t, files, 2)
}

func TestProductFormEncode_EmptySizesEncodeAsEmptyLists(t *testing.T) {
	form := sampleForm()
	form.Sizes = nil
	form.AvailableSizes = nil

	var buf bytes.Buffer
	contentType, err := form.encode(&buf)
	require.NoError(t, err)

	fields, _ := parseMultipart(t, contentType, buf.Bytes())
	assert.Equal(t, "[]", fields["sizes"])
	assert.Equal(t, "[]", fields["availableSizes"])
}

func TestProductFormValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ProductForm)
		wantErr string
	}{
		{"valid", func(f *ProductForm) {}, ""},
		{"no name", func(f *ProductForm) { f.Name = " " }, "name is required"},
		{"negative price", func(f *ProductForm) { f.Price = -5 }, "non-negative"},
		{"no variants", func(f *ProductForm) { f.Variants = nil }, "at least one variant"},
		{"variant without color", func(f *ProductForm) { f.Variants[0].Color = "" }, "specify a color"},
		{"variant without images", func(f *ProductForm) { f.Variants[0].Images = nil }, "at least one image"},
		{"variant without sizes", func(f *ProductForm) { f.Variants[0].AvailableSizes = nil }, "available sizes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := sampleForm()
			tc.mutate(form)
			err := form.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
