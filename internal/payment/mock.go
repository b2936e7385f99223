package payment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Mock is the development gateway: initialization always succeeds with
// a fake checkout link and verification always reports success, so the
// whole checkout flow can be exercised without Paystack credentials.
type Mock struct {
	mu       sync.Mutex
	sessions map[string]Metadata
}

func NewMock() *Mock {
	return &Mock{sessions: make(map[string]Metadata)}
}

func (m *Mock) InitializePayment(ctx context.Context, total int, email, sessionID string) (*InitResult, error) {
	reference := uuid.NewString()
	orderID := uuid.NewString()

	m.mu.Lock()
	m.sessions[reference] = Metadata{OrderID: orderID, SessionID: sessionID}
	m.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"order_id":  orderID,
		"reference": reference,
		"amount":    total,
		"email":     email,
	}).Info("[mock] payment initialized")

	return &InitResult{
		OrderID:          orderID,
		Reference:        reference,
		AuthorizationURL: "https://mock-checkout.paystack.com/" + reference,
		Amount:           total,
	}, nil
}

func (m *Mock) VerifyPayment(ctx context.Context, reference string) (*VerifyResult, error) {
	logrus.WithField("reference", reference).Info("[mock] payment verification successful")

	m.mu.Lock()
	metadata := m.sessions[reference]
	m.mu.Unlock()

	return &VerifyResult{
		Status:    StatusSuccess,
		Amount:    250000, // kobo
		PaidAt:    time.Now(),
		Reference: reference,
		Metadata:  metadata,
	}, nil
}
