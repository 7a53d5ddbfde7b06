package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/brokerhub/broker"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel a single order",
	Long: `Cancel an order by id. Without --segment the order listing is scanned
to discover the order's market segment, defaulting to CASH.`,
	Args: cobra.ExactArgs(1),
	RunE: runCancel,
}

var cancelAllCmd = &cobra.Command{
	Use:   "cancel-all",
	Short: "Cancel every open order",
	Args:  cobra.NoArgs,
	RunE:  runCancelAll,
}

var closeAllCmd = &cobra.Command{
	Use:   "close-all",
	Short: "Square off every open position with market orders",
	Args:  cobra.NoArgs,
	RunE:  runCloseAll,
}

var (
	cancelSegment  string
	cancelSymbol   string
	cancelExchange string
)

func init() {
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(cancelAllCmd)
	rootCmd.AddCommand(closeAllCmd)

	cancelCmd.Flags().StringVar(&cancelSegment, "segment", "", "market segment hint (CASH, FNO, CURRENCY, COMMODITY)")
	cancelCmd.Flags().StringVar(&cancelSymbol, "symbol", "", "canonical symbol hint")
	cancelCmd.Flags().StringVar(&cancelExchange, "exchange", "", "canonical exchange hint")
}

func runCancel(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	res, err := svc.CancelOrder(context.Background(), tok, args[0], broker.CancelHint{
		Segment:  cancelSegment,
		Symbol:   cancelSymbol,
		Exchange: cancelExchange,
	})
	printResult(res)
	return err
}

func runCancelAll(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	result := svc.CancelAllOrders(context.Background(), tok)
	fmt.Println(result.Summary())
	for _, e := range result.Cancelled {
		fmt.Printf("  cancelled %s %s\n", e.OrderID, e.Symbol)
	}
	for _, e := range result.Failed {
		fmt.Printf("  failed    %s %s: %s\n", e.OrderID, e.Symbol, e.Message)
	}
	return nil
}

func runCloseAll(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	msg, err := svc.CloseAllPositions(context.Background(), tok)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
