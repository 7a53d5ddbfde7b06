package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/brokerhub/broker"
	"github.com/rustyeddy/brokerhub/order"
)

func TestMarketOrderFillsImmediately(t *testing.T) {
	t.Parallel()

	a := New()
	a.SetQuote("RELIANCE", 2890.5)

	ack, err := a.PlaceOrder(context.Background(), "", order.PlaceRequest{
		Symbol: "RELIANCE", Exchange: "NSE", Product: order.MIS,
		PriceType: order.Market, Side: order.Buy, Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, order.Complete, ack.Status)

	trades, err := a.ListTrades(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, 2890.5, trades[0].Price)
	assert.Equal(t, 28905.0, trades[0].Value)

	positions, err := a.ListPositions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, 10, positions[0].NetQuantity)
	assert.Equal(t, 2890.5, positions[0].AvgPrice)
}

func TestLimitOrderRestsUntilCancelled(t *testing.T) {
	t.Parallel()

	a := New()

	ack, err := a.PlaceOrder(context.Background(), "", order.PlaceRequest{
		Symbol: "INFY", Exchange: "NSE", Product: order.CNC,
		PriceType: order.Limit, Side: order.Buy, Quantity: 5, Price: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, order.Open, ack.Status)

	records, err := a.ListOrders(context.Background(), "", 0, 25)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Status.Cancellable())

	cack, err := a.CancelOrder(context.Background(), "", ack.OrderID, broker.CancelHint{})
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cack.Status)

	_, err = a.CancelOrder(context.Background(), "", ack.OrderID, broker.CancelHint{})
	require.ErrorIs(t, err, ErrOrderClosed)
}

func TestStopOrderIsTriggerPending(t *testing.T) {
	t.Parallel()

	a := New()
	ack, err := a.PlaceOrder(context.Background(), "", order.PlaceRequest{
		Symbol: "TCS", Exchange: "NSE", Product: order.MIS,
		PriceType: order.StopLoss, Side: order.Sell, Quantity: 2,
		Price: 4000, TriggerPrice: 4010,
	})
	require.NoError(t, err)
	assert.Equal(t, order.TriggerPending, ack.Status)
}

func TestModifyOrder(t *testing.T) {
	t.Parallel()

	a := New()
	ack, err := a.PlaceOrder(context.Background(), "", order.PlaceRequest{
		Symbol: "INFY", Exchange: "NSE", PriceType: order.Limit,
		Side: order.Buy, Quantity: 5, Price: 1500,
	})
	require.NoError(t, err)

	_, err = a.ModifyOrder(context.Background(), "", order.ModifyRequest{
		OrderID: ack.OrderID, Quantity: 8, Price: 1490,
	})
	require.NoError(t, err)

	records, err := a.ListOrders(context.Background(), "", 0, 25)
	require.NoError(t, err)
	assert.Equal(t, 8, records[0].Quantity)
	assert.Equal(t, 1490.0, records[0].Price)

	_, err = a.ModifyOrder(context.Background(), "", order.ModifyRequest{OrderID: "SIM-999999", Quantity: 1})
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersPagination(t *testing.T) {
	t.Parallel()

	a := New()
	for i := 0; i < 7; i++ {
		_, err := a.PlaceOrder(context.Background(), "", order.PlaceRequest{
			Symbol: "SBIN", Exchange: "NSE", PriceType: order.Limit,
			Side: order.Buy, Quantity: 1, Price: 800,
		})
		require.NoError(t, err)
	}

	page0, err := a.ListOrders(context.Background(), "", 0, 5)
	require.NoError(t, err)
	assert.Len(t, page0, 5)

	page1, err := a.ListOrders(context.Background(), "", 1, 5)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page2, err := a.ListOrders(context.Background(), "", 2, 5)
	require.NoError(t, err)
	assert.Empty(t, page2)
}

func TestPositionNetting(t *testing.T) {
	t.Parallel()

	a := New()
	a.SetQuote("RELIANCE", 100)

	place := func(side order.Side, qty int) {
		_, err := a.PlaceOrder(context.Background(), "", order.PlaceRequest{
			Symbol: "RELIANCE", Exchange: "NSE", Product: order.MIS,
			PriceType: order.Market, Side: side, Quantity: qty,
		})
		require.NoError(t, err)
	}

	place(order.Buy, 10)
	a.SetQuote("RELIANCE", 110)
	place(order.Buy, 10)
	place(order.Sell, 20)

	positions, err := a.ListPositions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.True(t, positions[0].Flat())
}

func TestHoldingsFromDeliveryPositions(t *testing.T) {
	t.Parallel()

	a := New()
	a.SetQuote("INFY", 1500)
	_, err := a.PlaceOrder(context.Background(), "", order.PlaceRequest{
		Symbol: "INFY", Exchange: "NSE", Product: order.CNC,
		PriceType: order.Market, Side: order.Buy, Quantity: 12,
	})
	require.NoError(t, err)

	holdings, err := a.ListHoldings(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, 12, holdings[0].Quantity)
	assert.Equal(t, 1500.0, holdings[0].AvgPrice)
}
