// Package order contains the cart and order types plus the pure
// accounting and rendering helpers. Rendered text is displayed verbatim
// by the chat client, so the exact line shapes here are part of the
// service contract.
package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/demilade/chopbot/internal/menu"
)

// Cart maps a menu item id to a positive quantity. An empty cart has no
// keys; there are never zero-valued entries.
type Cart map[int]int

// Add increments the quantity for the item and returns the new quantity.
func (c Cart) Add(itemID int) int {
	c[itemID]++
	return c[itemID]
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	snapshot := make(Cart, len(c))
	for id, qty := range c {
		snapshot[id] = qty
	}
	return snapshot
}

// IsEmpty reports whether the cart has no items.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// Order is a finalized snapshot of a cart. Everything except the status
// and payment fields is immutable after creation.
type Order struct {
	ID        string
	Items     Cart
	Total     int
	Status    Status
	Timestamp time.Time

	CustomerEmail    string
	PaymentReference string
	PaymentAmount    int
	PaymentDate      time.Time
	ScheduledTime    time.Time
}

// New creates an order with a fresh id and timestamp and an independent
// snapshot of the cart.
func New(items Cart, status Status) *Order {
	return &Order{
		ID:        uuid.NewString(),
		Items:     items.Clone(),
		Total:     Total(items),
		Status:    status,
		Timestamp: time.Now(),
	}
}

// NewScheduled creates an order scheduled for the given future time.
func NewScheduled(items Cart, scheduledTime time.Time) *Order {
	o := New(items, StatusScheduled)
	o.ScheduledTime = scheduledTime
	return o
}

// Total sums price×quantity over the cart. Item ids that are not on the
// menu contribute nothing.
func Total(items Cart) int {
	total := 0
	for id, qty := range items {
		if item, ok := menu.Lookup(id); ok {
			total += item.Price * qty
		}
	}
	return total
}
