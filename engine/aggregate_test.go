package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/brokerhub/order"
)

func fullPage(size int, prefix string) []order.Record {
	page := make([]order.Record, size)
	for i := range page {
		page[i] = order.Record{OrderID: fmt.Sprintf("%s-%d", prefix, i), Status: order.Open}
	}
	return page
}

func TestOrderBookPaginatesToCompletion(t *testing.T) {
	t.Parallel()

	fake := &fakeAdapter{
		pageSize: 5,
		pages: [][]order.Record{
			fullPage(5, "p0"),
			fullPage(5, "p1"),
			fullPage(2, "p2"), // short page ends the book
		},
	}
	svc := New(fake)

	records := svc.OrderBook(context.Background(), "t")
	assert.Len(t, records, 12)
	assert.Equal(t, 3, fake.listCalls, "must stop after the first short page")
}

func TestOrderBookEmptyFirstPage(t *testing.T) {
	t.Parallel()

	fake := &fakeAdapter{pageSize: 5}
	svc := New(fake)

	records := svc.OrderBook(context.Background(), "t")
	assert.Empty(t, records)
	assert.Equal(t, 1, fake.listCalls)
}

func TestOrderBookExactMultiple(t *testing.T) {
	t.Parallel()

	// Two full pages then an empty one: the empty page is still fetched to
	// learn the book ended.
	fake := &fakeAdapter{
		pageSize: 5,
		pages: [][]order.Record{
			fullPage(5, "p0"),
			fullPage(5, "p1"),
		},
	}
	svc := New(fake)

	records := svc.OrderBook(context.Background(), "t")
	assert.Len(t, records, 10)
	assert.Equal(t, 3, fake.listCalls)
}

func TestOrderBookPartialOnTransportError(t *testing.T) {
	t.Parallel()

	fake := &fakeAdapter{
		pageSize: 5,
		pages: [][]order.Record{
			fullPage(5, "p0"),
			fullPage(5, "p1"),
			fullPage(5, "p2"),
		},
		pagesErr: map[int]error{1: errors.New("connection reset")},
	}
	svc := New(fake)

	// The error on page 1 is absorbed; page 0 is returned as a best-effort
	// partial result.
	records := svc.OrderBook(context.Background(), "t")
	assert.Len(t, records, 5)
	assert.Equal(t, "p0-0", records[0].OrderID)
}

func TestOrderStats(t *testing.T) {
	t.Parallel()

	fake := &fakeAdapter{
		pageSize: 10,
		pages: [][]order.Record{{
			{OrderID: "O1", Side: order.Buy, Status: order.Open},
			{OrderID: "O2", Side: order.Sell, Status: order.Complete},
		}},
	}
	svc := New(fake)

	stats := svc.OrderStats(context.Background(), "t")
	assert.Equal(t, 1, stats.BuyOrders)
	assert.Equal(t, 1, stats.SellOrders)
	assert.Equal(t, 1, stats.OpenOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
}
