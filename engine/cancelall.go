package engine

import (
	"context"

	"github.com/rustyeddy/brokerhub/broker"
	"github.com/rustyeddy/brokerhub/order"
)

// CancelAllOrders fetches the order book, filters to cancellable statuses and
// cancels each eligible order in turn. Outcomes are independent: one failed
// cancellation never aborts the rest, and the result is always a success
// envelope with the failures partitioned out.
func (s *Service) CancelAllOrders(ctx context.Context, auth string) order.CancellationResult {
	var result order.CancellationResult

	for _, rec := range s.OrderBook(ctx, auth) {
		if !rec.Status.Cancellable() {
			continue
		}

		entry := order.CancelEntry{OrderID: rec.OrderID, Symbol: rec.Symbol}

		res, err := s.CancelOrder(ctx, auth, rec.OrderID, broker.CancelHint{
			Symbol:   rec.Symbol,
			Exchange: rec.Exchange,
		})
		entry.Message = res.Message

		if res.OK() && err == nil {
			result.Cancelled = append(result.Cancelled, entry)
		} else {
			result.Failed = append(result.Failed, entry)
		}
	}

	return result
}
