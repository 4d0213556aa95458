package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kthsports/storefront/internal/models"
	"github.com/kthsports/storefront/internal/utils"
)

func addOrderCommands() {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Manage order requests (admin)",
	}

	// list
	var status, email, output string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List order requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if err := orders.FetchAll(cmd.Context()); err != nil {
				return fmt.Errorf("%s", orders.Err())
			}

			list := orders.Orders()
			if status != "" {
				s := models.OrderStatus(status)
				if !s.IsValid() {
					return fmt.Errorf("%w: %q", utils.ErrInvalidStatus, status)
				}
				list = orders.ByStatus(s)
			} else if email != "" {
				list = orders.ByEmail(email)
			}

			if output == "json" {
				printJSON(list)
				return nil
			}
			for _, o := range list {
				fmt.Printf("%s | %s | %s | %s x%d | %.2f | %s\n",
					o.ID, o.Name, o.Email, o.ProductName, o.Quantity, o.TotalAmount, o.Status)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&status, "status", "", "filter by status")
	listCmd.Flags().StringVar(&email, "email", "", "filter by customer email")
	listCmd.Flags().StringVar(&output, "output", "table", "output format: table or json")
	orderCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if o, ok := orders.GetByID(args[0]); ok {
				printJSON(o)
				return nil
			}
			o, err := orders.FetchByID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", utils.ErrOrderNotFound, orders.Err())
			}
			printJSON(o)
			return nil
		},
	}
	orderCmd.AddCommand(getCmd)

	// status
	statusCmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			s := models.OrderStatus(args[1])
			if !s.IsValid() {
				return fmt.Errorf("%w: %q", utils.ErrInvalidStatus, args[1])
			}
			o, err := orders.Update(cmd.Context(), args[0], map[string]any{"status": s})
			if err != nil {
				return fmt.Errorf("%s", orders.Err())
			}
			printJSON(o)
			return nil
		},
	}
	orderCmd.AddCommand(statusCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if err := orders.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", orders.Err())
			}
			fmt.Println("Order deleted")
			return nil
		},
	}
	orderCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(orderCmd)
}
