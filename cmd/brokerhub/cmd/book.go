package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List the order book",
	Args:  cobra.NoArgs,
	RunE:  runOrders,
}

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List the trade book",
	Args:  cobra.NoArgs,
	RunE:  runTrades,
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List open positions",
	Args:  cobra.NoArgs,
	RunE:  runPositions,
}

var holdingsCmd = &cobra.Command{
	Use:   "holdings",
	Short: "List holdings",
	Args:  cobra.NoArgs,
	RunE:  runHoldings,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(tradesCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(holdingsCmd)
}

func runOrders(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	records := svc.OrderBook(context.Background(), tok)
	for _, r := range records {
		fmt.Printf("%-14s %-20s %-4s %-6s %4d @ %.2f  %s\n",
			r.OrderID, r.Symbol, r.Side, r.PriceType, r.Quantity, r.Price, r.Status)
	}

	stats := svc.OrderStats(context.Background(), tok)
	fmt.Printf("\n%d buy / %d sell, %d open, %d complete, %d rejected\n",
		stats.BuyOrders, stats.SellOrders, stats.OpenOrders, stats.CompletedOrders, stats.RejectedOrders)
	return nil
}

func runTrades(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	trades, err := svc.TradeBook(context.Background(), tok)
	if err != nil {
		return fmt.Errorf("trade book: %w", err)
	}
	for _, t := range trades {
		fmt.Printf("%-14s %-20s %-4s %4d @ %.2f = %.2f\n",
			t.OrderID, t.Symbol, t.Side, t.Quantity, t.Price, t.Value)
	}
	return nil
}

func runPositions(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	positions, err := svc.Positions(context.Background(), tok)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}
	for _, p := range positions {
		fmt.Printf("%-20s %-4s %-5s %6d @ %.2f\n", p.Symbol, p.Exchange, p.Product, p.NetQuantity, p.AvgPrice)
	}
	return nil
}

func runHoldings(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	holdings, err := svc.Holdings(context.Background(), tok)
	if err != nil {
		return fmt.Errorf("holdings: %w", err)
	}
	for _, h := range holdings {
		fmt.Printf("%-20s %-4s %6d @ %.2f\n", h.Symbol, h.Exchange, h.Quantity, h.AvgPrice)
	}
	return nil
}
