package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"careline/common/logger"
	"careline/config"
	"careline/dispatch"
	"careline/router"
	"careline/store"
)

var (
	flagConfig   string
	flagRouter   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "careline",
	Short:        "Healthcare customer-service query router",
	Long:         "careline classifies customer questions as general FAQ or order-status lookups and answers them from the clinic datasets.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&flagRouter, "router", "r", "", "router provider override: rule, llm, http or hybrid")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(chatCmd, demoCmd, evalCmd)
}

// loadConfig resolves the effective configuration from file and flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagRouter != "" {
		cfg.Router.Provider = flagRouter
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

// buildDispatcher assembles the router and stores per configuration.
func buildDispatcher(ctx context.Context, cfg *config.Config) (*dispatch.Dispatcher, error) {
	r, err := router.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	faqs, orders := store.NewStoresFromConfig(cfg.Data)
	fmt.Printf("FAQ Agent initialized with %d FAQs\n", faqs.Len())
	fmt.Printf("Order Agent initialized with %d orders\n", orders.Len())

	var opts []dispatch.Option
	if cfg.Cache.Enable {
		opts = append(opts, dispatch.WithDecisionCache(cfg.Cache.Capacity, cacheTTL(cfg)))
	}
	return dispatch.New(r, faqs, orders, opts...), nil
}
