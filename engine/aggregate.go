package engine

import (
	"context"

	"github.com/rustyeddy/brokerhub/order"
)

// OrderBook drives the adapter's paginated order listing to completion and
// merges the pages. A transport error on any page terminates the loop and
// returns the orders accumulated so far: the result is best-effort, not
// guaranteed complete, under adapter failure.
func (s *Service) OrderBook(ctx context.Context, auth string) []order.Record {
	size := s.adapter.MaxPageSize()

	var all []order.Record
	for page := 0; ; page++ {
		records, err := s.adapter.ListOrders(ctx, auth, page, size)
		if err != nil {
			return all
		}
		all = append(all, records...)

		// A short or empty page is the end of the book.
		if len(records) < size {
			return all
		}
	}
}

// OrderStats summarizes the current order book.
func (s *Service) OrderStats(ctx context.Context, auth string) order.Statistics {
	return order.Stats(s.OrderBook(ctx, auth))
}
