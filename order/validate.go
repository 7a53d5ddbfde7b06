package order

import "fmt"

// ValidationError reports a bad or missing required field on a canonical
// request. It is fatal to the single request that carries it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order: %s %s", e.Field, e.Reason)
}

// Validate checks the canonical placement invariants: positive quantity,
// price present iff LIMIT, trigger price present iff SL/SL-M.
func (r PlaceRequest) Validate() error {
	if r.Symbol == "" {
		return &ValidationError{Field: "symbol", Reason: "is required"}
	}
	if r.Exchange == "" {
		return &ValidationError{Field: "exchange", Reason: "is required"}
	}
	if r.Side != Buy && r.Side != Sell {
		return &ValidationError{Field: "side", Reason: "must be BUY or SELL"}
	}
	if r.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if r.PriceType.NeedsPrice() && r.Price <= 0 {
		return &ValidationError{Field: "price", Reason: "is required for LIMIT orders"}
	}
	if r.PriceType.NeedsTrigger() && r.TriggerPrice <= 0 {
		return &ValidationError{Field: "trigger_price", Reason: "is required for SL and SL-M orders"}
	}
	return nil
}

func (r ModifyRequest) Validate() error {
	if r.OrderID == "" {
		return &ValidationError{Field: "orderid", Reason: "is required"}
	}
	if r.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "is required for modification"}
	}
	return nil
}
