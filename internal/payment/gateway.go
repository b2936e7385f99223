// Package payment wraps the payment gateway. The rest of the service
// treats the gateway as an opaque oracle: initialize a transaction, get
// back a reference and a checkout link, later verify the reference.
package payment

import (
	"context"
	"time"
)

// InitResult is the outcome of a successful payment initialization.
// Amount is in whole naira.
type InitResult struct {
	OrderID          string
	Reference        string
	AuthorizationURL string
	Amount           int
}

// Metadata is echoed back by the gateway on verification; it carries
// the identifiers needed to find the pending order again.
type Metadata struct {
	OrderID   string `json:"orderId"`
	SessionID string `json:"sessionId"`
}

// VerifyResult is the outcome of a verification call. Amount is in
// kobo, as the gateway reports it.
type VerifyResult struct {
	Status    string
	Amount    int
	PaidAt    time.Time
	Reference string
	Metadata  Metadata
}

// StatusSuccess is the gateway's status value for a completed payment.
const StatusSuccess = "success"

// Gateway is the payment-processing collaborator.
type Gateway interface {
	// InitializePayment starts a transaction for the given total (in
	// whole naira) and returns the checkout reference and link.
	InitializePayment(ctx context.Context, total int, email, sessionID string) (*InitResult, error)

	// VerifyPayment checks the state of a transaction by reference.
	// A transport or gateway failure is returned as an error; an
	// unsuccessful payment comes back with Status != StatusSuccess.
	VerifyPayment(ctx context.Context, reference string) (*VerifyResult, error)
}
