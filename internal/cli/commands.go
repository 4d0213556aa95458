// Package cli provides the Cobra-based console for the storefront client:
// browsing the catalog, managing products and orders as admin, and running
// the local UI server.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kthsports/storefront/internal/auth"
	"github.com/kthsports/storefront/internal/catalog"
	"github.com/kthsports/storefront/internal/config"
	"github.com/kthsports/storefront/internal/handler"
	"github.com/kthsports/storefront/internal/state"
	"github.com/kthsports/storefront/internal/store"
	"github.com/kthsports/storefront/internal/theme"
	"github.com/kthsports/storefront/internal/worker"
	"github.com/kthsports/storefront/pkg/shopapi"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "KTH Sportswear storefront client and admin console",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject stores
			if products != nil {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if v := viper.GetString("base-url"); v != "" {
				cfg.BaseURL = strings.TrimRight(v, "/")
			}
			if v := viper.GetString("state-path"); v != "" {
				cfg.State.Path = v
			}

			setupLogger(cfg.Env)

			st, err := state.Open(cfg.State.Path)
			if err != nil {
				return fmt.Errorf("failed to open state file: %w", err)
			}

			client := shopapi.NewClient(cfg.BaseURL, cfg.HTTPTimeout)

			appConfig = cfg
			stateFile = st
			products = store.NewProductStore(client)
			orders = store.NewOrderStore(client)
			themes = theme.NewManager(st)
			authenticator = auth.New(cfg, st)
			return nil
		},
	}

	appConfig     *config.Config
	stateFile     *state.File
	products      *store.ProductStore
	orders        *store.OrderStore
	themes        *theme.Manager
	authenticator *auth.Authenticator
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("base-url", "", "storefront API base URL")
	rootCmd.PersistentFlags().String("state-path", "", "path of the persisted client state file")
	viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("state-path", rootCmd.PersistentFlags().Lookup("state-path"))
	viper.SetEnvPrefix("STOREFRONT")
	viper.AutomaticEnv()

	addServeCommand()
	addCatalogCommand()
	addProductCommands()
	addOrderCommands()
	addAuthCommands()
	addThemeCommand()
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// requireSession guards admin commands on the persisted session token.
func requireSession() error {
	if _, err := authenticator.Session(); err != nil {
		return errors.New("not logged in: run `storefront login` first")
	}
	return nil
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func addServeCommand() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local storefront UI server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if appConfig.Refresh.Enabled {
				go worker.NewRefreshWorker(products, orders, appConfig.Refresh.Interval).Start(ctx)
			} else if err := products.FetchAll(ctx); err != nil {
				log.Error().Err(err).Msg("Initial catalog fetch failed")
			}

			router := handler.NewRouter(handler.Deps{
				Products:      products,
				Orders:        orders,
				Themes:        themes,
				Authenticator: authenticator,
				Env:           appConfig.Env,
			})

			srv := &http.Server{
				Addr:    ":" + appConfig.Port,
				Handler: router,
			}

			go func() {
				log.Info().Str("port", appConfig.Port).Msg("Starting server")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server failed")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Info().Msg("Shutting down server...")
			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Server forced to shutdown")
			}
			log.Info().Msg("Server exited")
			return nil
		},
	}
	rootCmd.AddCommand(serveCmd)
}

func addCatalogCommand() {
	var categories, types, sizes []string
	var output string
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the product catalog with filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := products.FetchAll(cmd.Context()); err != nil {
				return fmt.Errorf("%s", products.Err())
			}

			sel := catalog.Selection{Categories: categories, Types: types}
			for _, entry := range sizes {
				typ, size, ok := strings.Cut(entry, ":")
				if !ok {
					return fmt.Errorf("size filter %q must be type:size", entry)
				}
				sel.ToggleSize(typ, size)
			}

			filtered := catalog.Filter(products.Products(), sel)
			if output == "json" {
				printJSON(filtered)
				return nil
			}
			for _, p := range filtered {
				stock := "in stock"
				if !p.InStock {
					stock = "out of stock"
				}
				fmt.Printf("%s | %s | %s | %s | %.2f | %s\n",
					p.ID, p.Name, p.Category, p.Type, p.Price, stock)
			}
			return nil
		},
	}
	catalogCmd.Flags().StringSliceVar(&categories, "category", nil, "filter by category (repeatable)")
	catalogCmd.Flags().StringSliceVar(&types, "type", nil, "filter by type (repeatable)")
	catalogCmd.Flags().StringSliceVar(&sizes, "size", nil, "filter by size as type:size (repeatable)")
	catalogCmd.Flags().StringVar(&output, "output", "table", "output format: table or json")
	rootCmd.AddCommand(catalogCmd)
}

func addAuthCommands() {
	var email, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as admin and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := authenticator.Login(email, password); err != nil {
				return errors.New("invalid email or password")
			}
			fmt.Println("Logged in")
			return nil
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "admin email")
	loginCmd.Flags().StringVar(&password, "password", "", "admin password")
	rootCmd.AddCommand(loginCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authenticator.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
	rootCmd.AddCommand(logoutCmd)
}

func addThemeCommand() {
	themeCmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or change the active visual theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, ok := theme.Lookup(args[0]); !ok {
					return fmt.Errorf("unknown theme %q (available: %s)",
						args[0], strings.Join(theme.Names(), ", "))
				}
				if err := themes.Change(args[0]); err != nil {
					return err
				}
			}
			fmt.Printf("theme: %s\n", themes.CurrentName())
			return nil
		},
	}
	rootCmd.AddCommand(themeCmd)
}
