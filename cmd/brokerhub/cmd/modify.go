package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/brokerhub/order"
)

var modifyCmd = &cobra.Command{
	Use:   "modify <order-id>",
	Short: "Modify an open order",
	Long: `Modify an open order. Only the fields passed as flags are changed;
everything else is left untouched by the broker.`,
	Args: cobra.ExactArgs(1),
	RunE: runModify,
}

var (
	modifySymbol   string
	modifyExchange string
	modifyQty      int
	modifyType     string
	modifyPrice    float64
	modifyTrigger  float64
)

func init() {
	rootCmd.AddCommand(modifyCmd)

	modifyCmd.Flags().StringVar(&modifySymbol, "symbol", "", "canonical symbol")
	modifyCmd.Flags().StringVar(&modifyExchange, "exchange", "NSE", "canonical exchange")
	modifyCmd.Flags().IntVar(&modifyQty, "qty", 0, "new quantity (required)")
	modifyCmd.Flags().StringVar(&modifyType, "type", "MARKET", "MARKET, LIMIT, SL or SL-M")
	modifyCmd.Flags().Float64Var(&modifyPrice, "price", 0, "new limit price")
	modifyCmd.Flags().Float64Var(&modifyTrigger, "trigger", 0, "new trigger price")
}

func runModify(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := newService()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := auth()
	if err != nil {
		return err
	}

	res, err := svc.ModifyOrder(context.Background(), tok, order.ModifyRequest{
		OrderID:      args[0],
		Symbol:       modifySymbol,
		Exchange:     modifyExchange,
		PriceType:    order.PriceType(modifyType),
		Quantity:     modifyQty,
		Price:        modifyPrice,
		TriggerPrice: modifyTrigger,
	})
	printResult(res)
	return err
}
