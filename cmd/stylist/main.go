package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"totem-fashion/internal/catalog"
	"totem-fashion/internal/config"
	"totem-fashion/internal/repository"
	"totem-fashion/internal/service"
	"totem-fashion/internal/stylerules"
)

type cliOptions struct {
	catalogFile string
	rulesFile   string
	verbose     bool
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	defaults, err := config.LoadConfig()
	if err != nil {
		defaults = &config.Config{CatalogFile: "data/catalog.json"}
	}

	root := &cobra.Command{
		Use:           "stylist",
		Short:         "Offline access to the totem catalog, recommendations and outfits",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", defaults.CatalogFile, "catalog JSON file")
	root.PersistentFlags().StringVar(&opts.rulesFile, "rules", defaults.StyleRulesFile, "style rules YAML file (built-in tables when empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newCategoriesCmd(opts),
		newSearchCmd(opts),
		newOutfitCmd(opts),
		newSwipeCmd(opts),
	)
	return root
}

// buildStylist arma el servicio con sesiones en memoria del proceso.
func buildStylist(ctx context.Context, opts *cliOptions) (*service.StylistService, error) {
	logger := zap.NewNop()
	if opts.verbose {
		logger, _ = zap.NewDevelopment()
	}

	idx, err := catalog.Load(ctx, catalog.FileSource{Path: opts.catalogFile}, logger)
	if err != nil {
		return nil, err
	}
	rules, err := stylerules.Load(opts.rulesFile)
	if err != nil {
		return nil, err
	}
	sessions := repository.NewMemorySessionRepository(0, 0)
	composer := service.NewOutfitComposer(idx, rules)
	return service.NewStylistService(logger, sessions, idx, composer, nil, service.StylistOptions{}), nil
}

func newCategoriesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildStylist(cmd.Context(), opts)
			if err != nil {
				return err
			}
			for _, c := range svc.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newSearchCmd(opts *cliOptions) *cobra.Command {
	var (
		filter   catalog.Filter
		priceMax float64
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildStylist(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("price-max") {
				filter.PriceMax = &priceMax
			}
			return writeJSON(cmd.OutOrStdout(), svc.Search(filter))
		},
	}
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "text in name, category or brand")
	cmd.Flags().StringVar(&filter.Category, "category", "", "exact category")
	cmd.Flags().StringVar(&filter.Color, "color", "", "color substring")
	cmd.Flags().StringVar(&filter.Gender, "gender", "", "exact gender")
	cmd.Flags().Float64Var(&priceMax, "price-max", 0, "maximum price")
	cmd.Flags().IntVar(&filter.Limit, "limit", catalog.DefaultLimit, "maximum results")
	return cmd
}

func newOutfitCmd(opts *cliOptions) *cobra.Command {
	var budget float64
	cmd := &cobra.Command{
		Use:   "outfit <seed-id>",
		Short: "Compose an outfit from a seed item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildStylist(cmd.Context(), opts)
			if err != nil {
				return err
			}
			var b *float64
			if cmd.Flags().Changed("budget") {
				if budget <= 0 {
					return fmt.Errorf("budget must be positive")
				}
				b = &budget
			}
			outfit, err := svc.ComposeOutfit(cmd.Context(), "cli", args[0], b)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), outfit)
		},
	}
	cmd.Flags().Float64Var(&budget, "budget", 0, "maximum total price")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
