package order

import "fmt"

// Outcome classifies a mutation result. Ambiguous means the broker returned
// an error but the mutation may still have been accepted; callers must not
// assume the order was untouched.
type Outcome string

const (
	Succeeded Outcome = "success"
	Failed    Outcome = "error"
	Ambiguous Outcome = "ambiguous"
)

// Result is the single result record shared by all mutation operations
// (place, modify, cancel). Message is always human-readable.
type Result struct {
	Outcome Outcome
	OrderID string
	Symbol  string
	Status  Status
	Message string
	Record  *Record
}

// OK reports whether the caller may proceed. Ambiguous outcomes count: the
// broker treats them as "request accepted, outcome pending".
func (r Result) OK() bool { return r.Outcome != Failed }

// CancelEntry is one order's outcome inside a bulk cancellation.
type CancelEntry struct {
	OrderID string
	Symbol  string
	Message string
}

// CancellationResult partitions a bulk cancellation. It is always a success
// envelope: individual failures land in Failed, never escalate.
type CancellationResult struct {
	Cancelled []CancelEntry
	Failed    []CancelEntry
}

func (r CancellationResult) Summary() string {
	if len(r.Cancelled) == 0 && len(r.Failed) == 0 {
		return "no open orders to cancel"
	}
	return fmt.Sprintf("cancelled %d orders, %d failed", len(r.Cancelled), len(r.Failed))
}

// Statistics summarizes a translated order book.
type Statistics struct {
	BuyOrders       int
	SellOrders      int
	CompletedOrders int
	OpenOrders      int
	RejectedOrders  int
}

// Stats counts sides and terminal states across canonical order records.
func Stats(records []Record) Statistics {
	var s Statistics
	for _, r := range records {
		switch r.Side {
		case Buy:
			s.BuyOrders++
		case Sell:
			s.SellOrders++
		}
		switch r.Status {
		case Complete:
			s.CompletedOrders++
		case Open, TriggerPending:
			s.OpenOrders++
		case Rejected:
			s.RejectedOrders++
		}
	}
	return s
}
