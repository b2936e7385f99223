// Package session owns the per-client conversation state. Sessions live
// for the process lifetime; nothing evicts them.
package session

import (
	"sync"

	"github.com/demilade/chopbot/internal/order"
)

// State is the conversation state of a session.
type State string

const (
	// StateMain is the resting state; numeric commands are dispatched.
	StateMain State = "main"
	// StateOrdering means the menu was just shown and the next item
	// number adds that item to the cart.
	StateOrdering State = "ordering"
	// StateCollectingEmail means the next message is read as the email
	// address for the payment receipt.
	StateCollectingEmail State = "collecting_email"
)

// Session is all mutable state for one chat client. Callers must hold
// the session's lock for the whole handling of a command or payment
// callback; the lock serializes chat commands against asynchronous
// gateway callbacks for the same client. Sessions never share state, so
// there is no cross-session locking.
type Session struct {
	mu sync.Mutex

	ID              string
	CurrentOrder    order.Cart
	OrderHistory    []*order.Order
	ScheduledOrders []*order.Order
	PendingOrders   map[string]*order.Order
	State           State

	// Scheduling overlays any State: once 102 is accepted the next
	// date-shaped message is consumed as the scheduling time.
	Scheduling bool
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Store is the process-wide session registry keyed by session id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for the id, lazily initializing it on
// first contact.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok := st.sessions[id]; ok {
		return sess
	}
	sess := &Session{
		ID:            id,
		CurrentOrder:  order.Cart{},
		PendingOrders: make(map[string]*order.Order),
		State:         StateMain,
	}
	st.sessions[id] = sess
	return sess
}

// Get returns the session for the id without creating one.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
