package broker

import "fmt"

// TransportError wraps a network or protocol failure on a single broker call.
// During pagination it is absorbed into a partial result; during single-order
// mutation it is surfaced, but the order may still have reached the broker.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("broker %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// PlacementError carries the broker's raw error payload from a rejected
// placement call. The order may nevertheless have been accepted.
type PlacementError struct {
	Raw string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("order placement failed: %s", e.Raw)
}

// AmbiguousError reports a mutation the broker errored on but may still be
// processing, typically modification or cancellation where acceptance is
// asynchronous. Callers should proceed and report the ambiguity, not fail.
type AmbiguousError struct {
	OrderID string
	Raw     string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("order %s: outcome pending: %s", e.OrderID, e.Raw)
}
