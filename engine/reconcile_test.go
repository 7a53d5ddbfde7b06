package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/brokerhub/order"
)

func TestReconcileTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target, current int
		wantSide        order.Side
		wantQty         int
		noop            bool
	}{
		{0, 0, "", 0, true},
		{0, 5, order.Sell, 5, false},
		{0, -3, order.Buy, 3, false},
		{10, 0, order.Buy, 10, false},
		{-4, 0, order.Sell, 4, false},
		{10, 4, order.Buy, 6, false},
		{4, 10, order.Sell, 6, false},
		{7, 7, "", 0, true},
		{-7, -7, "", 0, true},
		{-2, 3, order.Sell, 5, false},
		{3, -2, order.Buy, 5, false},
	}

	for _, tt := range tests {
		action, ok := Reconcile(tt.target, tt.current)
		if tt.noop {
			assert.False(t, ok, "Reconcile(%d, %d) should be a no-op", tt.target, tt.current)
			continue
		}
		require.True(t, ok, "Reconcile(%d, %d)", tt.target, tt.current)
		assert.Equal(t, tt.wantSide, action.Side, "Reconcile(%d, %d) side", tt.target, tt.current)
		assert.Equal(t, tt.wantQty, action.Quantity, "Reconcile(%d, %d) quantity", tt.target, tt.current)
	}
}

func smartRequest(target, qty int) order.PlaceRequest {
	return order.PlaceRequest{
		Symbol:         "RELIANCE",
		Exchange:       "NSE",
		Product:        order.MIS,
		Side:           order.Buy,
		Quantity:       qty,
		Validity:       order.Day,
		TargetPosition: target,
	}
}

func withPosition(net int) *fakeAdapter {
	return &fakeAdapter{positions: []order.Position{
		{Symbol: "RELIANCE", Exchange: "NSE", Product: order.MIS, NetQuantity: net},
	}}
}

func TestSmartOrderOffsetsExisting(t *testing.T) {
	t.Parallel()

	fake := withPosition(4)
	svc := New(fake)

	res, err := svc.PlaceSmartOrder(context.Background(), "t", smartRequest(10, 1))
	require.NoError(t, err)
	assert.Equal(t, order.Succeeded, res.Outcome)

	require.Len(t, fake.placed, 1)
	assert.Equal(t, order.Buy, fake.placed[0].Side)
	assert.Equal(t, 6, fake.placed[0].Quantity)
}

func TestSmartOrderFlattens(t *testing.T) {
	t.Parallel()

	fake := withPosition(-3)
	svc := New(fake)

	_, err := svc.PlaceSmartOrder(context.Background(), "t", smartRequest(0, 1))
	require.NoError(t, err)

	require.Len(t, fake.placed, 1)
	assert.Equal(t, order.Buy, fake.placed[0].Side)
	assert.Equal(t, 3, fake.placed[0].Quantity)
}

func TestSmartOrderMatchingPositionIsNoop(t *testing.T) {
	t.Parallel()

	fake := withPosition(7)
	svc := New(fake)

	res, err := svc.PlaceSmartOrder(context.Background(), "t", smartRequest(7, 5))
	require.NoError(t, err)
	assert.Equal(t, order.Succeeded, res.Outcome)
	assert.Contains(t, res.Message, "no action needed")
	assert.Empty(t, fake.placed)
}

func TestSmartOrderFlatBookZeroTargetPlacesLiteral(t *testing.T) {
	t.Parallel()

	fake := &fakeAdapter{}
	svc := New(fake)

	// A flat book, a zero target, and an explicit non-zero quantity: the
	// literal request goes through unchanged.
	res, err := svc.PlaceSmartOrder(context.Background(), "t", smartRequest(0, 5))
	require.NoError(t, err)
	assert.Equal(t, order.Succeeded, res.Outcome)

	require.Len(t, fake.placed, 1)
	assert.Equal(t, order.Buy, fake.placed[0].Side)
	assert.Equal(t, 5, fake.placed[0].Quantity)
}

func TestSmartOrderFlatBookZeroQuantityIsNoop(t *testing.T) {
	t.Parallel()

	fake := &fakeAdapter{}
	svc := New(fake)

	res, err := svc.PlaceSmartOrder(context.Background(), "t", smartRequest(0, 0))
	require.NoError(t, err)
	assert.Contains(t, res.Message, "no open position")
	assert.Empty(t, fake.placed)
}

func TestSmartOrderPositionQueryFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeAdapter{positionsErr: errors.New("positions unavailable")}
	svc := New(fake)

	res, err := svc.PlaceSmartOrder(context.Background(), "t", smartRequest(10, 1))
	require.Error(t, err)
	assert.Equal(t, order.Failed, res.Outcome)
	assert.Empty(t, fake.placed, "must not place blind when the position is unknown")
}

func TestSmartOrderIgnoresOtherProducts(t *testing.T) {
	t.Parallel()

	// A CNC position for the same symbol must not count toward an MIS target.
	fake := &fakeAdapter{positions: []order.Position{
		{Symbol: "RELIANCE", Exchange: "NSE", Product: order.CNC, NetQuantity: 50},
	}}
	svc := New(fake)

	_, err := svc.PlaceSmartOrder(context.Background(), "t", smartRequest(10, 1))
	require.NoError(t, err)

	require.Len(t, fake.placed, 1)
	assert.Equal(t, 10, fake.placed[0].Quantity)
}
