package engine

import (
	"context"
	"fmt"

	"github.com/rustyeddy/brokerhub/order"
)

// CloseAllPositions synthesizes an offsetting market order for every non-flat
// position and places each through the normal pipeline. Individual placement
// failures are counted, not fatal.
func (s *Service) CloseAllPositions(ctx context.Context, auth string) (string, error) {
	positions, err := s.adapter.ListPositions(ctx, auth)
	if err != nil {
		return "", fmt.Errorf("fetch positions: %w", err)
	}

	open := 0
	failures := 0
	for _, p := range positions {
		if p.Flat() {
			continue
		}
		open++

		side := order.Sell
		if p.NetQuantity < 0 {
			side = order.Buy
		}

		req := order.PlaceRequest{
			Symbol:    p.Symbol,
			Exchange:  p.Exchange,
			Product:   p.Product,
			PriceType: order.Market,
			Side:      side,
			Quantity:  abs(p.NetQuantity),
			Validity:  order.Day,
		}

		if res, _ := s.PlaceOrder(ctx, auth, req); !res.OK() {
			failures++
		}
	}

	if open == 0 {
		return "no open positions found", nil
	}
	if failures > 0 {
		return fmt.Sprintf("squared off %d of %d open positions, %d failed", open-failures, open, failures), nil
	}
	return "all open positions squared off", nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
