// Package sim is an in-memory broker adapter for paper trading and tests.
// Market orders fill immediately against a seeded quote; limit and stop
// orders rest until cancelled. Nothing leaves the process.
package sim

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rustyeddy/brokerhub/broker"
	"github.com/rustyeddy/brokerhub/order"
	"github.com/rustyeddy/brokerhub/pkg/refid"
	"github.com/rustyeddy/brokerhub/symbols"
)

const maxPageSize = 25

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderClosed   = errors.New("order already in a terminal state")
)

func init() {
	broker.Register("sim", func(_ string, _ *http.Client, _ *symbols.Translator) broker.Adapter {
		return New()
	})
}

type positionKey struct {
	symbol   string
	exchange string
	product  order.Product
}

// Adapter holds the simulated books. Auth tokens are accepted and ignored.
type Adapter struct {
	mu        sync.Mutex
	quotes    map[string]float64
	orders    map[string]*order.Record
	sequence  []string // placement order, for stable listing
	trades    []order.Trade
	positions map[positionKey]*order.Position
	posOrder  []positionKey
	nextID    int
}

func New() *Adapter {
	return &Adapter{
		quotes:    make(map[string]float64),
		orders:    make(map[string]*order.Record),
		positions: make(map[positionKey]*order.Position),
	}
}

// SetQuote seeds the last traded price market orders fill at.
func (a *Adapter) SetQuote(symbol string, price float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quotes[symbol] = price
}

func (a *Adapter) MaxPageSize() int { return maxPageSize }

func (a *Adapter) PlaceOrder(ctx context.Context, _ string, req order.PlaceRequest) (broker.Ack, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	rec := &order.Record{
		OrderID:      fmt.Sprintf("SIM-%06d", a.nextID),
		Symbol:       req.Symbol,
		Exchange:     req.Exchange,
		Side:         req.Side,
		PriceType:    req.PriceType,
		Product:      req.Product,
		Quantity:     req.Quantity,
		Price:        req.Price,
		TriggerPrice: req.TriggerPrice,
		Timestamp:    time.Now().UTC(),
		ReferenceID:  refid.Sanitize(req.ReferenceID),
	}

	switch {
	case req.PriceType.NeedsTrigger():
		rec.Status = order.TriggerPending
	case req.PriceType == order.Market:
		a.fillLocked(rec, a.quotes[req.Symbol])
	default:
		rec.Status = order.Open
	}

	a.orders[rec.OrderID] = rec
	a.sequence = append(a.sequence, rec.OrderID)

	return broker.Ack{OrderID: rec.OrderID, Status: rec.Status, BrokerStatus: string(rec.Status)}, nil
}

func (a *Adapter) ModifyOrder(ctx context.Context, _ string, req order.ModifyRequest) (broker.Ack, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rec, ok := a.orders[req.OrderID]
	if !ok {
		return broker.Ack{OrderID: req.OrderID}, fmt.Errorf("modify order: %w: %q", ErrOrderNotFound, req.OrderID)
	}
	if !rec.Status.Cancellable() {
		return broker.Ack{OrderID: req.OrderID}, fmt.Errorf("modify order: %w: %q", ErrOrderClosed, req.OrderID)
	}

	rec.Quantity = req.Quantity
	if req.PriceType != "" {
		rec.PriceType = req.PriceType
	}
	if req.Price != 0 {
		rec.Price = req.Price
	}
	if req.TriggerPrice != 0 {
		rec.TriggerPrice = req.TriggerPrice
	}

	return broker.Ack{OrderID: rec.OrderID, Status: rec.Status, BrokerStatus: "MODIFIED"}, nil
}

func (a *Adapter) CancelOrder(ctx context.Context, _ string, orderID string, _ broker.CancelHint) (broker.Ack, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rec, ok := a.orders[orderID]
	if !ok {
		return broker.Ack{OrderID: orderID}, fmt.Errorf("cancel order: %w: %q", ErrOrderNotFound, orderID)
	}
	if !rec.Status.Cancellable() {
		return broker.Ack{OrderID: orderID}, fmt.Errorf("cancel order: %w: %q", ErrOrderClosed, orderID)
	}

	rec.Status = order.Cancelled
	return broker.Ack{OrderID: orderID, Status: order.Cancelled, BrokerStatus: "CANCELLED"}, nil
}

func (a *Adapter) ListOrders(ctx context.Context, _ string, page, pageSize int) ([]order.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	start := page * pageSize
	if start >= len(a.sequence) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(a.sequence) {
		end = len(a.sequence)
	}

	records := make([]order.Record, 0, end-start)
	for _, id := range a.sequence[start:end] {
		records = append(records, *a.orders[id])
	}
	return records, nil
}

func (a *Adapter) ListTrades(ctx context.Context, _ string) ([]order.Trade, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	trades := make([]order.Trade, len(a.trades))
	copy(trades, a.trades)
	return trades, nil
}

func (a *Adapter) ListPositions(ctx context.Context, _ string) ([]order.Position, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	positions := make([]order.Position, 0, len(a.posOrder))
	for _, key := range a.posOrder {
		positions = append(positions, *a.positions[key])
	}
	return positions, nil
}

func (a *Adapter) ListHoldings(ctx context.Context, _ string) ([]order.Holding, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var holdings []order.Holding
	for _, key := range a.posOrder {
		p := a.positions[key]
		if p.Product == order.CNC && p.NetQuantity > 0 {
			holdings = append(holdings, order.Holding{
				Symbol:   p.Symbol,
				Exchange: p.Exchange,
				Product:  order.CNC,
				Quantity: p.NetQuantity,
				AvgPrice: p.AvgPrice,
			})
		}
	}
	return holdings, nil
}

// fillLocked executes a market order against the seeded quote, records the
// trade and updates the net position.
func (a *Adapter) fillLocked(rec *order.Record, price float64) {
	rec.Status = order.Complete
	rec.Price = price

	a.trades = append(a.trades, order.Trade{
		OrderID:  rec.OrderID,
		Symbol:   rec.Symbol,
		Exchange: rec.Exchange,
		Side:     rec.Side,
		Product:  rec.Product,
		Quantity: rec.Quantity,
		Price:    price,
		Value:    price * float64(rec.Quantity),
		Time:     rec.Timestamp,
	})

	key := positionKey{rec.Symbol, rec.Exchange, rec.Product}
	pos, ok := a.positions[key]
	if !ok {
		pos = &order.Position{Symbol: rec.Symbol, Exchange: rec.Exchange, Product: rec.Product}
		a.positions[key] = pos
		a.posOrder = append(a.posOrder, key)
	}

	delta := rec.Quantity
	if rec.Side == order.Sell {
		delta = -delta
	}

	// Average price tracks exposure being added, resets when flat.
	prev := pos.NetQuantity
	pos.NetQuantity += delta
	switch {
	case pos.NetQuantity == 0:
		pos.AvgPrice = 0
	case prev == 0 || (prev > 0) != (pos.NetQuantity > 0):
		pos.AvgPrice = price
	case abs(pos.NetQuantity) > abs(prev):
		added := abs(pos.NetQuantity) - abs(prev)
		pos.AvgPrice = (pos.AvgPrice*float64(abs(prev)) + price*float64(added)) / float64(abs(pos.NetQuantity))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
