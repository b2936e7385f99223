package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		items Cart
		want  int
	}{
		{"empty cart", Cart{}, 0},
		{"single item", Cart{1: 1}, 2500},
		{"quantities", Cart{1: 2, 10: 3}, 2*2500 + 3*1200},
		{"unknown ids contribute nothing", Cart{1: 1, 99: 4}, 2500},
		{"only unknown ids", Cart{42: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.items))
		})
	}
}

func TestCartAddAndClone(t *testing.T) {
	cart := Cart{}
	assert.True(t, cart.IsEmpty())

	assert.Equal(t, 1, cart.Add(1))
	assert.Equal(t, 2, cart.Add(1))
	assert.Equal(t, 1, cart.Add(5))
	assert.False(t, cart.IsEmpty())

	snapshot := cart.Clone()
	cart.Add(1)
	assert.Equal(t, 2, snapshot[1], "clone must not alias the cart")
}

func TestNewSnapshotsCart(t *testing.T) {
	cart := Cart{1: 1, 2: 2}
	o := New(cart, StatusPending)

	require.NotEmpty(t, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 2500+2*2500, o.Total)
	assert.WithinDuration(t, time.Now(), o.Timestamp, time.Second)

	cart.Add(1)
	assert.Equal(t, 1, o.Items[1], "order items must be a snapshot")

	other := New(cart, StatusPending)
	assert.NotEqual(t, o.ID, other.ID)
}

func TestNewScheduled(t *testing.T) {
	when := time.Now().Add(24 * time.Hour)
	o := NewScheduled(Cart{1: 1}, when)
	assert.Equal(t, StatusScheduled, o.Status)
	assert.Equal(t, when, o.ScheduledTime)
}

func TestSummary(t *testing.T) {
	text, total := Summary(Cart{1: 1, 10: 2})
	assert.Equal(t, 2500+2*1200, total)
	assert.Contains(t, text, "🛒 ORDER SUMMARY\n\n")
	assert.Contains(t, text, "Jollof Rice (x1) - NGN2500\n")
	assert.Contains(t, text, "Bread and Egg (x2) - NGN2400\n")
	assert.Contains(t, text, "\n💰 TOTAL: NGN4900\n\n")
}

func TestSummarySkipsUnknownItems(t *testing.T) {
	text, total := Summary(Cart{1: 1, 99: 5})
	assert.Equal(t, 2500, total)
	assert.NotContains(t, text, "x5")
}

func TestFormatCurrent(t *testing.T) {
	text := FormatCurrent(Cart{2: 1})
	assert.Contains(t, text, "🛒 Your current order:\n\n")
	assert.Contains(t, text, "• Fried Rice (x1) - NGN2500\n")
	assert.Contains(t, text, "\n💰 Total: NGN2500")
}

func TestFormatHistory(t *testing.T) {
	first := New(Cart{1: 1}, StatusPaid)
	second := New(Cart{15: 2}, StatusPaid)
	text := FormatHistory([]*Order{first, second})

	assert.Contains(t, text, "📋 Your order history:\n\n")
	assert.Contains(t, text, "🧾 Order #1 (ID: "+first.ID+"):\n")
	assert.Contains(t, text, "🧾 Order #2 (ID: "+second.ID+"):\n")
	assert.Contains(t, text, "   Status: paid\n")
	assert.Contains(t, text, "   • Ponmo Stew (x2) - NGN4400\n")
	assert.Contains(t, text, "   💰 Total: NGN4400\n")
}

func TestFormatScheduled(t *testing.T) {
	when := time.Date(2026, 12, 24, 18, 30, 0, 0, time.Local)
	o := NewScheduled(Cart{1: 1}, when)
	text := FormatScheduled([]*Order{o})

	assert.Contains(t, text, "Your scheduled orders:\n")
	assert.Contains(t, text, "Scheduled Order #1:")
	assert.Contains(t, text, "Scheduled for: 24/12/2026 18:30")
	assert.Contains(t, text, "Status: scheduled")
	assert.Contains(t, text, "    Jollof Rice (x1)\n")
	assert.Contains(t, text, "  Total: NGN2500\n")
}
