// Package order defines the broker-agnostic order vocabulary shared by every
// broker adapter: requests, records, positions and the fixed status taxonomy.
package order

import "time"

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Opposite returns the offsetting side.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

type PriceType string

const (
	Market    PriceType = "MARKET"
	Limit     PriceType = "LIMIT"
	StopLoss  PriceType = "SL"
	StopLossM PriceType = "SL-M"
)

// NeedsPrice reports whether a limit price must accompany the order.
func (p PriceType) NeedsPrice() bool { return p == Limit }

// NeedsTrigger reports whether a trigger price must accompany the order.
func (p PriceType) NeedsTrigger() bool { return p == StopLoss || p == StopLossM }

type Product string

const (
	CNC  Product = "CNC"  // delivery
	MIS  Product = "MIS"  // intraday
	NRML Product = "NRML" // carry-forward / margin
)

type Validity string

const (
	Day Validity = "DAY"
	IOC Validity = "IOC"
)

// Status is the canonical order status taxonomy. Broker-native vocabularies
// map onto this set; unrecognized values map to Open.
type Status string

const (
	Open           Status = "open"
	TriggerPending Status = "trigger-pending"
	Complete       Status = "complete"
	Cancelled      Status = "cancelled"
	Rejected       Status = "rejected"
)

// Cancellable reports whether an order in this status is still live and
// eligible for cancellation. Transitional broker states such as a requested
// modification translate to Open and remain cancellable.
func (s Status) Cancellable() bool {
	return s == Open || s == TriggerPending
}

// PlaceRequest is a canonical order placement request. It is created per call
// and never persisted.
type PlaceRequest struct {
	Symbol       string
	Exchange     string
	Product      Product
	PriceType    PriceType
	Side         Side
	Quantity     int
	Price        float64
	TriggerPrice float64
	Validity     Validity

	// ReferenceID is the caller-supplied idempotency token. Left empty, one
	// is synthesized; supplied, it is sanitized to the broker constraint.
	ReferenceID string

	// TargetPosition is the desired signed net position for smart orders.
	TargetPosition int
}

// ModifyRequest carries the fields of an order modification. Zero-valued
// optional fields are omitted from the broker call and left untouched.
type ModifyRequest struct {
	OrderID      string
	Symbol       string
	Exchange     string
	PriceType    PriceType
	Quantity     int
	Price        float64
	TriggerPrice float64
}

// Record is the canonical translation of a broker order. It is materialized
// on every listing call, never cached.
type Record struct {
	OrderID      string
	Symbol       string
	Exchange     string
	Side         Side
	PriceType    PriceType
	Status       Status
	Product      Product
	Quantity     int
	Price        float64
	TriggerPrice float64
	Timestamp    time.Time
	ReferenceID  string
}

// Trade is a single execution from the trade book.
type Trade struct {
	OrderID  string
	Symbol   string
	Exchange string
	Side     Side
	Product  Product
	Quantity int
	Price    float64
	Value    float64
	Time     time.Time
}

// Position is a signed net position: positive long, negative short, zero flat.
type Position struct {
	Symbol      string
	Exchange    string
	Product     Product
	NetQuantity int
	AvgPrice    float64
}

// Flat reports whether the position carries no net quantity.
func (p Position) Flat() bool { return p.NetQuantity == 0 }

type Holding struct {
	Symbol   string
	Exchange string
	Product  Product
	Quantity int
	AvgPrice float64
}
