package engine

import (
	"context"
	"fmt"

	"github.com/rustyeddy/brokerhub/order"
)

// Action is the single offsetting order that moves a net position to its
// target.
type Action struct {
	Side     order.Side
	Quantity int
}

// Reconcile computes the offsetting order needed to move current to target.
// ok is false when no order is needed.
//
//	target 0, current  5 -> SELL 5
//	target 0, current -3 -> BUY 3
//	target 10, current 0 -> BUY 10
//	target -4, current 0 -> SELL 4
//	target 10, current 4 -> BUY 6
//	target 4, current 10 -> SELL 6
//	target == current    -> no-op
func Reconcile(target, current int) (Action, bool) {
	switch {
	case target == current:
		return Action{}, false
	case current == 0:
		if target > 0 {
			return Action{Side: order.Buy, Quantity: target}, true
		}
		return Action{Side: order.Sell, Quantity: -target}, true
	case target > current:
		return Action{Side: order.Buy, Quantity: target - current}, true
	default:
		return Action{Side: order.Sell, Quantity: current - target}, true
	}
}

// PlaceSmartOrder places the order that reconciles the symbol's current net
// position with req.TargetPosition. A flat book with a zero target places the
// literal request as-is when its quantity is non-zero; every other matching
// target is a no-op. The resulting order, if any, goes through the normal
// placement pipeline exactly once.
func (s *Service) PlaceSmartOrder(ctx context.Context, auth string, req order.PlaceRequest) (order.Result, error) {
	current, err := s.openPosition(ctx, auth, req.Symbol, req.Exchange, req.Product)
	if err != nil {
		return failed(req.Symbol, err), err
	}

	target := req.TargetPosition

	if target == 0 && current == 0 && req.Quantity != 0 {
		return s.PlaceOrder(ctx, auth, req)
	}

	action, ok := Reconcile(target, current)
	if !ok {
		msg := "no action needed, position matches target"
		if target == 0 && current == 0 {
			msg = "no open position found, not placing exit order"
		}
		return order.Result{
			Outcome: order.Succeeded,
			Symbol:  req.Symbol,
			Message: msg,
		}, nil
	}

	req.Side = action.Side
	req.Quantity = action.Quantity
	return s.PlaceOrder(ctx, auth, req)
}

// openPosition returns the signed net quantity held for the canonical
// (symbol, exchange, product) triple, zero when no position exists.
func (s *Service) openPosition(ctx context.Context, auth, symbol, exchange string, product order.Product) (int, error) {
	positions, err := s.adapter.ListPositions(ctx, auth)
	if err != nil {
		return 0, fmt.Errorf("query open position: %w", err)
	}

	for _, p := range positions {
		if p.Symbol == symbol && p.Exchange == exchange && p.Product == product {
			return p.NetQuantity, nil
		}
	}
	return 0, nil
}
