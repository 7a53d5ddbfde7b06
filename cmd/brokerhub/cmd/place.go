package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/brokerhub/order"
)

var placeCmd = &cobra.Command{
	Use:   "place <symbol>",
	Short: "Place an order",
	Long: `Place a canonical order through the configured broker.

Examples:
  brokerhub place RELIANCE --exchange NSE --side BUY --qty 10
  brokerhub place ABC --side BUY --qty 10 --type LIMIT --price 100.5`,
	Args: cobra.ExactArgs(1),
	RunE: runPlace,
}

var smartCmd = &cobra.Command{
	Use:   "smart <symbol>",
	Short: "Place a smart order toward a target net position",
	Long: `Compute and place the single offsetting order that moves the current
net position to --target. Matching positions are a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runSmart,
}

var (
	placeExchange string
	placeSide     string
	placeQty      int
	placeType     string
	placePrice    float64
	placeTrigger  float64
	placeProduct  string
	placeValidity string
	placeRefID    string
	smartTarget   int
)

func init() {
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(smartCmd)

	for _, c := range []*cobra.Command{placeCmd, smartCmd} {
		c.Flags().StringVar(&placeExchange, "exchange", "NSE", "canonical exchange")
		c.Flags().StringVar(&placeSide, "side", "BUY", "BUY or SELL")
		c.Flags().IntVar(&placeQty, "qty", 0, "order quantity")
		c.Flags().StringVar(&placeType, "type", "MARKET", "MARKET, LIMIT, SL or SL-M")
		c.Flags().Float64Var(&placePrice, "price", 0, "limit price")
		c.Flags().Float64Var(&placeTrigger, "trigger", 0, "trigger price for SL/SL-M")
		c.Flags().StringVar(&placeProduct, "product", "MIS", "CNC, MIS or NRML")
		c.Flags().StringVar(&placeValidity, "validity", "DAY", "DAY or IOC")
		c.Flags().StringVar(&placeRefID, "ref", "", "client reference id (synthesized if empty)")
	}
	smartCmd.Flags().IntVar(&smartTarget, "target", 0, "desired signed net position")
}

func placeRequest(symbol string) order.PlaceRequest {
	return order.PlaceRequest{
		Symbol:         symbol,
		Exchange:       placeExchange,
		Product:        order.Product(placeProduct),
		PriceType:      order.PriceType(placeType),
		Side:           order.Side(placeSide),
		Quantity:       placeQty,
		Price:          placePrice,
		TriggerPrice:   placeTrigger,
		Validity:       order.Validity(placeValidity),
		ReferenceID:    placeRefID,
		TargetPosition: smartTarget,
	}
}

func runPlace(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	res, err := svc.PlaceOrder(context.Background(), tok, placeRequest(args[0]))
	printResult(res)
	return err
}

func runSmart(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	res, err := svc.PlaceSmartOrder(context.Background(), tok, placeRequest(args[0]))
	printResult(res)
	return err
}

func printResult(res order.Result) {
	fmt.Printf("%s: %s\n", res.Outcome, res.Message)
	if res.OrderID != "" {
		fmt.Printf("order id: %s\n", res.OrderID)
	}
}
