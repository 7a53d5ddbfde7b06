package groww

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/brokerhub/order"
	"github.com/rustyeddy/brokerhub/pkg/refid"
	"github.com/rustyeddy/brokerhub/symbols"
)

// Groww market segments.
const (
	SegmentCash      = "CASH"
	SegmentFNO       = "FNO"
	SegmentCurrency  = "CURRENCY"
	SegmentCommodity = "COMMODITY"
)

// mapSegment routes a canonical exchange to the Groww market segment.
func mapSegment(exchange string) string {
	switch exchange {
	case "NSE", "BSE":
		return SegmentCash
	case "NFO", "BFO":
		return SegmentFNO
	case "CDS", "BCD":
		return SegmentCurrency
	case "MCX":
		return SegmentCommodity
	default:
		return SegmentCash
	}
}

// mapExchange collapses derivative exchanges onto the venue Groww expects:
// NFO orders go to NSE with segment FNO, and so on.
func mapExchange(exchange string) string {
	switch exchange {
	case "NFO", "CDS":
		return "NSE"
	case "BFO", "BCD":
		return "BSE"
	default:
		return exchange
	}
}

var orderTypes = map[order.PriceType]string{
	order.Market:    "MARKET",
	order.Limit:     "LIMIT",
	order.StopLoss:  "STOP_LOSS",
	order.StopLossM: "STOP_LOSS_MARKET",
}

func mapOrderType(p order.PriceType) string {
	if t, ok := orderTypes[p]; ok {
		return t
	}
	return "MARKET"
}

func reverseOrderType(t string) order.PriceType {
	switch t {
	case "STOP_LOSS":
		return order.StopLoss
	case "STOP_LOSS_MARKET":
		return order.StopLossM
	case "LIMIT":
		return order.Limit
	default:
		return order.Market
	}
}

var products = map[order.Product]string{
	order.CNC:  "CNC",
	order.MIS:  "INTRADAY",
	order.NRML: "MARGIN",
}

func mapProduct(p order.Product) string {
	if t, ok := products[p]; ok {
		return t
	}
	return "INTRADAY"
}

func reverseProduct(p string) order.Product {
	switch p {
	case "INTRADAY":
		return order.MIS
	case "MARGIN":
		return order.NRML
	case "CNC":
		return order.CNC
	default:
		return order.Product(p)
	}
}

func mapValidity(v order.Validity) string {
	if v == order.IOC {
		return "IOC"
	}
	return "DAY"
}

// statusMap translates Groww order statuses onto the canonical taxonomy.
var statusMap = map[string]order.Status{
	"NEW":             order.Open,
	"ACKED":           order.Open,
	"OPEN":            order.Open,
	"APPROVED":        order.Open,
	"TRIGGER_PENDING": order.TriggerPending,
	"EXECUTED":        order.Complete,
	"COMPLETED":       order.Complete,
	"CANCELLED":       order.Cancelled,
	"REJECTED":        order.Rejected,
}

// mapStatus is idempotent: a value already in canonical form maps to itself.
// Unrecognized broker statuses default to open.
func mapStatus(s string) order.Status {
	switch order.Status(s) {
	case order.Open, order.TriggerPending, order.Complete, order.Cancelled, order.Rejected:
		return order.Status(s)
	}
	if st, ok := statusMap[s]; ok {
		return st
	}
	return order.Open
}

// price renders a price as a decimal wire string, empty when absent.
func price(v float64) string {
	if v <= 0 {
		return ""
	}
	return decimal.NewFromFloat(v).String()
}

// normalize translates a canonical placement request into the Groww field
// set. The symbol mapping has already been resolved by the translator; the
// reference id is synthesized when absent and sanitized otherwise.
func normalize(req order.PlaceRequest, m symbols.Mapping) placePayload {
	p := placePayload{
		TradingSymbol:    m.BrokerSymbol,
		Quantity:         req.Quantity,
		Validity:         mapValidity(req.Validity),
		Exchange:         mapExchange(req.Exchange),
		Segment:          mapSegment(req.Exchange),
		Product:          mapProduct(req.Product),
		OrderType:        mapOrderType(req.PriceType),
		TransactionType:  string(req.Side),
		OrderReferenceID: refid.Sanitize(req.ReferenceID),
	}
	if req.PriceType.NeedsPrice() {
		p.Price = price(req.Price)
	}
	if req.PriceType.NeedsTrigger() {
		p.TriggerPrice = price(req.TriggerPrice)
	}
	return p
}

// denormalize translates a Groww order row back to a canonical record. Symbol
// resolution prefers the token, then the directory, then the raw broker
// symbol; an order is never dropped because its symbol cannot be resolved.
func denormalize(w wireOrder, tr *symbols.Translator) order.Record {
	symbol, err := tr.ToCanonical(w.TradingSymbol, w.Exchange, w.Token)
	if err != nil {
		symbol = w.TradingSymbol
	}

	ts, _ := time.Parse(time.RFC3339, w.CreatedAt)

	return order.Record{
		OrderID:      w.GrowwOrderID,
		Symbol:       symbol,
		Exchange:     w.Exchange,
		Side:         order.Side(w.TransactionType),
		PriceType:    reverseOrderType(w.OrderType),
		Status:       mapStatus(w.OrderStatus),
		Product:      reverseProduct(w.Product),
		Quantity:     w.Quantity,
		Price:        w.Price,
		TriggerPrice: w.TriggerPrice,
		Timestamp:    ts,
		ReferenceID:  w.OrderReferenceID,
	}
}
