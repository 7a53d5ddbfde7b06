package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/brokerhub/broker"
	_ "github.com/rustyeddy/brokerhub/broker/groww"
	_ "github.com/rustyeddy/brokerhub/broker/sim"
	"github.com/rustyeddy/brokerhub/config"
	"github.com/rustyeddy/brokerhub/engine"
	"github.com/rustyeddy/brokerhub/symbols"
)

var rootCmd = &cobra.Command{
	Use:   "brokerhub",
	Short: "Broker-agnostic order lifecycle and position reconciliation",
	Long: `Brokerhub places, modifies and cancels orders through pluggable
brokerage back ends using one canonical order vocabulary.

It provides tools for:
  - Placing regular and smart (target-position) orders
  - Modifying and cancelling orders, singly or in bulk
  - Squaring off every open position
  - Listing the order book, trade book, positions and holdings`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgFile   string
	authToken string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default built-in groww config)")
	rootCmd.PersistentFlags().StringVar(&authToken, "auth", "", "broker auth token (default $BROKER_AUTH_TOKEN)")
}

// newService wires the configured broker adapter behind an engine.Service.
// The returned closer releases the symbol directory.
func newService() (*engine.Service, func() error, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	dir, err := symbols.NewSQLite(cfg.Directory.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open symbol directory: %w", err)
	}

	timeout, err := cfg.Broker.ParseTimeout()
	if err != nil {
		dir.Close()
		return nil, nil, err
	}

	adapter, err := broker.New(cfg.Broker.Name, cfg.Broker.BaseURL, &http.Client{Timeout: timeout}, symbols.NewTranslator(dir))
	if err != nil {
		dir.Close()
		return nil, nil, err
	}

	return engine.New(adapter), dir.Close, nil
}

func auth() (string, error) {
	if authToken != "" {
		return authToken, nil
	}
	if tok := os.Getenv("BROKER_AUTH_TOKEN"); tok != "" {
		return tok, nil
	}
	return "", fmt.Errorf("no auth token: pass --auth or set BROKER_AUTH_TOKEN")
}
