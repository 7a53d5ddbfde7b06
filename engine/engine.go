// Package engine orchestrates the broker-agnostic order lifecycle: placement,
// modification, cancellation, smart (target-position) orders and the listing
// surfaces. It drives exactly one broker.Adapter and keeps no state of its
// own; every listing call re-fetches and re-translates.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/brokerhub/broker"
	"github.com/rustyeddy/brokerhub/order"
)

type Service struct {
	adapter broker.Adapter
}

func New(adapter broker.Adapter) *Service {
	return &Service{adapter: adapter}
}

// PlaceOrder validates and places a canonical order. The returned error is
// non-nil only when the result is Failed; the typed cause (validation, symbol
// resolution, placement, transport) is recoverable with errors.As.
func (s *Service) PlaceOrder(ctx context.Context, auth string, req order.PlaceRequest) (order.Result, error) {
	if err := req.Validate(); err != nil {
		return failed(req.Symbol, err), err
	}

	ack, err := s.adapter.PlaceOrder(ctx, auth, req)
	if err != nil {
		return failed(req.Symbol, err), err
	}

	rec := recordFromRequest(req, ack)
	return order.Result{
		Outcome: order.Succeeded,
		OrderID: ack.OrderID,
		Symbol:  req.Symbol,
		Status:  ack.Status,
		Message: fmt.Sprintf("order placed with status %s", ack.BrokerStatus),
		Record:  &rec,
	}, nil
}

// ModifyOrder submits an order modification. Broker-side rejections surface
// as an Ambiguous result rather than a failure: the broker accepts these
// requests asynchronously and the modification may still apply.
func (s *Service) ModifyOrder(ctx context.Context, auth string, req order.ModifyRequest) (order.Result, error) {
	if err := req.Validate(); err != nil {
		return failed(req.Symbol, err), err
	}

	ack, err := s.adapter.ModifyOrder(ctx, auth, req)
	if err != nil {
		return ambiguous(req.OrderID, req.Symbol, "modification", err)
	}

	return order.Result{
		Outcome: order.Succeeded,
		OrderID: ack.OrderID,
		Symbol:  req.Symbol,
		Status:  ack.Status,
		Message: "order modification request processed",
	}, nil
}

// CancelOrder cancels a single order. The hint is optional; without a segment
// the adapter discovers one from the order listing, defaulting to the cash
// segment.
func (s *Service) CancelOrder(ctx context.Context, auth, orderID string, hint broker.CancelHint) (order.Result, error) {
	if orderID == "" {
		err := &order.ValidationError{Field: "orderid", Reason: "is required"}
		return failed(hint.Symbol, err), err
	}

	ack, err := s.adapter.CancelOrder(ctx, auth, orderID, hint)
	if err != nil {
		return ambiguous(orderID, hint.Symbol, "cancellation", err)
	}

	return order.Result{
		Outcome: order.Succeeded,
		OrderID: ack.OrderID,
		Symbol:  hint.Symbol,
		Status:  ack.Status,
		Message: "order cancelled",
	}, nil
}

// TradeBook lists executions translated to canonical form.
func (s *Service) TradeBook(ctx context.Context, auth string) ([]order.Trade, error) {
	return s.adapter.ListTrades(ctx, auth)
}

// Positions lists signed net positions translated to canonical form.
func (s *Service) Positions(ctx context.Context, auth string) ([]order.Position, error) {
	return s.adapter.ListPositions(ctx, auth)
}

// Holdings lists holdings translated to canonical form.
func (s *Service) Holdings(ctx context.Context, auth string) ([]order.Holding, error) {
	return s.adapter.ListHoldings(ctx, auth)
}

func failed(symbol string, err error) order.Result {
	return order.Result{
		Outcome: order.Failed,
		Symbol:  symbol,
		Message: err.Error(),
	}
}

// ambiguous classifies a mutation error. Broker rejections on asynchronous
// mutations yield an Ambiguous result with a nil error; transport failures
// keep the error but the result still reports the order id, because the
// request may have reached the broker.
func ambiguous(orderID, symbol, op string, err error) (order.Result, error) {
	res := order.Result{
		Outcome: order.Ambiguous,
		OrderID: orderID,
		Symbol:  symbol,
		Message: fmt.Sprintf("order %s request submitted, outcome pending: %v", op, err),
	}

	var ambErr *broker.AmbiguousError
	if errors.As(err, &ambErr) {
		return res, nil
	}
	return res, err
}

func recordFromRequest(req order.PlaceRequest, ack broker.Ack) order.Record {
	return order.Record{
		OrderID:      ack.OrderID,
		Symbol:       req.Symbol,
		Exchange:     req.Exchange,
		Side:         req.Side,
		PriceType:    req.PriceType,
		Status:       ack.Status,
		Product:      req.Product,
		Quantity:     req.Quantity,
		Price:        req.Price,
		TriggerPrice: req.TriggerPrice,
		Timestamp:    time.Now().UTC(),
		ReferenceID:  req.ReferenceID,
	}
}
