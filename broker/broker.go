// Package broker defines the capability interface every brokerage back end
// implements. Adapters absorb per-broker differences in symbol naming,
// enumerations, identifier formats, pagination and status vocabularies; the
// rest of the system speaks only the canonical order vocabulary.
package broker

import (
	"context"

	"github.com/rustyeddy/brokerhub/order"
)

// Ack is a broker's acknowledgement of a single order mutation. Status is the
// canonical translation of BrokerStatus.
type Ack struct {
	OrderID      string
	Status       order.Status
	BrokerStatus string
}

// CancelHint carries optional routing context for a cancellation. An empty
// Segment asks the adapter to discover it from the order listing.
type CancelHint struct {
	Segment  string
	Symbol   string
	Exchange string
}

// Adapter is implemented once per broker. Every method is a single blocking
// remote call with a single attempt; auth is an opaque bearer credential
// passed through unexamined.
//
// Callers must not assume a mutation did not happen when an error is
// returned: many brokers accept the request asynchronously and report the
// outcome later.
type Adapter interface {
	PlaceOrder(ctx context.Context, auth string, req order.PlaceRequest) (Ack, error)
	ModifyOrder(ctx context.Context, auth string, req order.ModifyRequest) (Ack, error)
	CancelOrder(ctx context.Context, auth, orderID string, hint CancelHint) (Ack, error)

	// ListOrders returns one page of the order book, already translated to
	// canonical form. A short or empty page signals end of data.
	ListOrders(ctx context.Context, auth string, page, pageSize int) ([]order.Record, error)

	ListTrades(ctx context.Context, auth string) ([]order.Trade, error)
	ListPositions(ctx context.Context, auth string) ([]order.Position, error)
	ListHoldings(ctx context.Context, auth string) ([]order.Holding, error)

	// MaxPageSize is the largest page the broker's listing endpoint allows.
	MaxPageSize() int
}
