package groww

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rustyeddy/brokerhub/broker"
	"github.com/rustyeddy/brokerhub/order"
	"github.com/rustyeddy/brokerhub/symbols"
)

// maxPageSize is the largest page the Groww order listing endpoint allows.
const maxPageSize = 25

const (
	pathPlace     = "/v1/order/create"
	pathModify    = "/v1/order/modify"
	pathCancel    = "/v1/order/cancel"
	pathOrders    = "/v1/order/list"
	pathTrades    = "/v1/order/trades"
	pathPositions = "/v1/positions"
	pathHoldings  = "/v1/holdings"
)

func init() {
	broker.Register("groww", func(baseURL string, client *http.Client, tr *symbols.Translator) broker.Adapter {
		return &Adapter{
			client: &Client{BaseURL: baseURL, HTTP: client},
			tr:     tr,
		}
	})
}

// Adapter implements broker.Adapter against the Groww REST API.
type Adapter struct {
	client *Client
	tr     *symbols.Translator
}

func New(client *Client, tr *symbols.Translator) *Adapter {
	return &Adapter{client: client, tr: tr}
}

func (a *Adapter) MaxPageSize() int { return maxPageSize }

func (a *Adapter) PlaceOrder(ctx context.Context, auth string, req order.PlaceRequest) (broker.Ack, error) {
	m, err := a.tr.ToBroker(req.Symbol, req.Exchange)
	if err != nil {
		return broker.Ack{}, err
	}

	payload := normalize(req, m)

	var resp ackResponse
	if err := a.client.post(ctx, auth, pathPlace, payload, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return broker.Ack{}, &broker.PlacementError{Raw: apiErr.Body}
		}
		return broker.Ack{}, &broker.TransportError{Op: "place order", Err: err}
	}

	return broker.Ack{
		OrderID:      resp.GrowwOrderID,
		Status:       mapStatus(resp.OrderStatus),
		BrokerStatus: resp.OrderStatus,
	}, nil
}

func (a *Adapter) ModifyOrder(ctx context.Context, auth string, req order.ModifyRequest) (broker.Ack, error) {
	payload := modifyPayload{
		GrowwOrderID: req.OrderID,
		Quantity:     req.Quantity,
		OrderType:    mapOrderType(req.PriceType),
		Segment:      mapSegment(req.Exchange),
	}
	if req.PriceType.NeedsPrice() {
		payload.Price = price(req.Price)
	}
	if req.PriceType.NeedsTrigger() {
		payload.TriggerPrice = price(req.TriggerPrice)
	}

	var resp ackResponse
	if err := a.client.post(ctx, auth, pathModify, payload, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			// The broker accepts modifications asynchronously; an error here
			// does not mean the modification did not happen.
			return broker.Ack{OrderID: req.OrderID}, &broker.AmbiguousError{OrderID: req.OrderID, Raw: apiErr.Body}
		}
		return broker.Ack{OrderID: req.OrderID}, &broker.TransportError{Op: "modify order", Err: err}
	}

	return broker.Ack{
		OrderID:      resp.GrowwOrderID,
		Status:       mapStatus(resp.OrderStatus),
		BrokerStatus: resp.OrderStatus,
	}, nil
}

func (a *Adapter) CancelOrder(ctx context.Context, auth, orderID string, hint broker.CancelHint) (broker.Ack, error) {
	segment := hint.Segment
	if segment == "" && hint.Exchange != "" {
		segment = mapSegment(hint.Exchange)
	}
	if segment == "" {
		// Discover the segment by scanning the order listing; fall back to
		// the cash segment when the order cannot be found.
		segment = a.discoverSegment(ctx, auth, orderID)
	}

	payload := cancelPayload{GrowwOrderID: orderID, Segment: segment}

	var resp ackResponse
	if err := a.client.post(ctx, auth, pathCancel, payload, &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return broker.Ack{OrderID: orderID}, &broker.AmbiguousError{OrderID: orderID, Raw: apiErr.Body}
		}
		return broker.Ack{OrderID: orderID}, &broker.TransportError{Op: "cancel order", Err: err}
	}

	return broker.Ack{
		OrderID:      resp.GrowwOrderID,
		Status:       mapStatus(resp.OrderStatus),
		BrokerStatus: resp.OrderStatus,
	}, nil
}

// discoverSegment scans the order listing for orderID and returns its market
// segment, defaulting to CASH when the order cannot be located. The lenient
// default mirrors the broker's own tooling.
func (a *Adapter) discoverSegment(ctx context.Context, auth, orderID string) string {
	for page := 0; ; page++ {
		rows, err := a.listRaw(ctx, auth, page, maxPageSize)
		if err != nil {
			return SegmentCash
		}
		for _, w := range rows {
			if w.GrowwOrderID == orderID && w.Segment != "" {
				return w.Segment
			}
		}
		if len(rows) < maxPageSize {
			return SegmentCash
		}
	}
}

func (a *Adapter) listRaw(ctx context.Context, auth string, page, pageSize int) ([]wireOrder, error) {
	var resp orderListResponse
	err := a.client.get(ctx, auth, pathOrders, map[string]string{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	}, &resp)
	if err != nil {
		return nil, &broker.TransportError{Op: "list orders", Err: err}
	}
	return resp.OrderList, nil
}

func (a *Adapter) ListOrders(ctx context.Context, auth string, page, pageSize int) ([]order.Record, error) {
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	rows, err := a.listRaw(ctx, auth, page, pageSize)
	if err != nil {
		return nil, err
	}

	records := make([]order.Record, 0, len(rows))
	for _, w := range rows {
		records = append(records, denormalize(w, a.tr))
	}
	return records, nil
}

func (a *Adapter) ListTrades(ctx context.Context, auth string) ([]order.Trade, error) {
	var resp tradeListResponse
	if err := a.client.get(ctx, auth, pathTrades, nil, &resp); err != nil {
		return nil, &broker.TransportError{Op: "list trades", Err: err}
	}

	trades := make([]order.Trade, 0, len(resp.TradeList))
	for _, w := range resp.TradeList {
		symbol, err := a.tr.ToCanonical(w.TradingSymbol, w.Exchange, "")
		if err != nil {
			symbol = w.TradingSymbol
		}
		ts, _ := time.Parse(time.RFC3339, w.TradeTime)
		trades = append(trades, order.Trade{
			OrderID:  w.OrderID,
			Symbol:   symbol,
			Exchange: w.Exchange,
			Side:     order.Side(w.TransactionType),
			Product:  reverseProduct(w.Product),
			Quantity: w.TradedQuantity,
			Price:    w.TradedPrice,
			Value:    float64(w.TradedQuantity) * w.TradedPrice,
			Time:     ts,
		})
	}
	return trades, nil
}

func (a *Adapter) ListPositions(ctx context.Context, auth string) ([]order.Position, error) {
	var resp positionListResponse
	if err := a.client.get(ctx, auth, pathPositions, nil, &resp); err != nil {
		return nil, &broker.TransportError{Op: "list positions", Err: err}
	}

	positions := make([]order.Position, 0, len(resp.Positions))
	for _, w := range resp.Positions {
		symbol, err := a.tr.ToCanonical(w.TradingSymbol, w.Exchange, w.Token)
		if err != nil {
			symbol = w.TradingSymbol
		}
		positions = append(positions, order.Position{
			Symbol:      symbol,
			Exchange:    w.Exchange,
			Product:     reverseProduct(w.Product),
			NetQuantity: w.NetQuantity,
			AvgPrice:    w.AvgPrice,
		})
	}
	return positions, nil
}

func (a *Adapter) ListHoldings(ctx context.Context, auth string) ([]order.Holding, error) {
	var resp holdingListResponse
	if err := a.client.get(ctx, auth, pathHoldings, nil, &resp); err != nil {
		return nil, &broker.TransportError{Op: "list holdings", Err: err}
	}

	holdings := make([]order.Holding, 0, len(resp.Holdings))
	for _, w := range resp.Holdings {
		symbol, err := a.tr.ToCanonical(w.TradingSymbol, w.Exchange, "")
		if err != nil {
			symbol = w.TradingSymbol
		}
		holdings = append(holdings, order.Holding{
			Symbol:   symbol,
			Exchange: w.Exchange,
			Product:  order.CNC,
			Quantity: w.TotalQuantity,
			AvgPrice: w.AvgCostPrice,
		})
	}
	return holdings, nil
}
