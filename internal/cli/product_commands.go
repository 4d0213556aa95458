package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kthsports/storefront/internal/models"
	"github.com/kthsports/storefront/internal/utils"
	"github.com/kthsports/storefront/pkg/shopapi"
)

func addProductCommands() {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products (admin)",
	}

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Local cache first, backend fallback on a miss.
			if p, ok := products.GetByID(args[0]); ok {
				printJSON(p)
				return nil
			}
			p, err := products.FetchByID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", utils.ErrProductNotFound, products.Err())
			}
			printJSON(p)
			return nil
		},
	}
	productCmd.AddCommand(getCmd)

	// add
	addFlags := newProductFlags()
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			form, err := addFlags.toForm()
			if err != nil {
				return err
			}
			p, err := products.Create(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("failed to save product: %s", products.Err())
			}
			printJSON(p)
			return nil
		},
	}
	addFlags.register(addCmd)
	productCmd.AddCommand(addCmd)

	// update
	updateFlags := newProductFlags()
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product (full replace of mutable fields)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			form, err := updateFlags.toForm()
			if err != nil {
				return err
			}
			p, err := products.Update(cmd.Context(), args[0], form)
			if err != nil {
				return fmt.Errorf("failed to save product: %s", products.Err())
			}
			printJSON(p)
			return nil
		},
	}
	updateFlags.register(updateCmd)
	productCmd.AddCommand(updateCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if err := products.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", products.Err())
			}
			fmt.Println("Product deleted")
			return nil
		},
	}
	productCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(productCmd)
}

// productFlags collects the admin product form flags shared by add and update.
type productFlags struct {
	name, brand, typ, category, description string
	price                                   float64
	inStock                                 bool
	sizes, availableSizes, variants         []string
}

func newProductFlags() *productFlags { return &productFlags{} }

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.brand, "brand", "", "brand")
	cmd.Flags().StringVar(&f.typ, "type", "", "type: men, women, kids, unisex")
	cmd.Flags().StringVar(&f.category, "category", "", "category")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().BoolVar(&f.inStock, "in-stock", true, "in stock")
	cmd.Flags().StringSliceVar(&f.sizes, "sizes", nil, "full size run, e.g. XS,S,M")
	cmd.Flags().StringSliceVar(&f.availableSizes, "available-sizes", nil, "purchasable subset of sizes")
	cmd.Flags().StringArrayVar(&f.variants, "variant", nil,
		`variant spec "color=Red;sizes=M,L;images=red.jpg,https://host/kept.png" (repeatable)`)
}

func (f *productFlags) toForm() (*shopapi.ProductForm, error) {
	form := &shopapi.ProductForm{
		Name:           f.name,
		Brand:          f.brand,
		Type:           models.ProductType(f.typ),
		Category:       f.category,
		Price:          f.price,
		Description:    f.description,
		InStock:        f.inStock,
		Sizes:          f.sizes,
		AvailableSizes: f.availableSizes,
	}
	for _, spec := range f.variants {
		variant, err := parseVariantSpec(spec)
		if err != nil {
			return nil, err
		}
		form.Variants = append(form.Variants, variant)
	}
	return form, nil
}

// parseVariantSpec parses "color=Red;sizes=M,L;images=red.jpg,https://...".
// Image entries starting with http are retained backend URLs; anything else
// is read from disk and uploaded.
func parseVariantSpec(spec string) (shopapi.VariantForm, error) {
	var variant shopapi.VariantForm
	for _, part := range strings.Split(spec, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return variant, fmt.Errorf("invalid variant field %q", part)
		}
		switch key {
		case "color":
			variant.Color = value
		case "sizes":
			variant.AvailableSizes = strings.Split(value, ",")
		case "images":
			for _, img := range strings.Split(value, ",") {
				if strings.HasPrefix(img, "http") {
					variant.Images = append(variant.Images, shopapi.VariantImage{URL: img})
					continue
				}
				file, err := os.Open(img)
				if err != nil {
					return variant, fmt.Errorf("failed to open image %s: %w", img, err)
				}
				variant.Images = append(variant.Images, shopapi.VariantImage{
					Upload: &shopapi.ImageUpload{Filename: file.Name(), Data: file},
				})
			}
		default:
			return variant, fmt.Errorf("unknown variant field %q", key)
		}
	}
	return variant, nil
}
