package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/demilade/chopbot/internal/order"
	"github.com/demilade/chopbot/internal/payment"
	"github.com/demilade/chopbot/internal/session"
)

var (
	// ErrSessionNotFound means the session id the gateway echoed back
	// does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrOrderNotFound means no pending order is stored under the
	// payment reference.
	ErrOrderNotFound = errors.New("order not found")
)

// PaymentFailedError reports a verification that completed but did not
// end in a successful payment.
type PaymentFailedError struct {
	Status string
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment not successful: status %s", e.Status)
}

// Receipt describes a successfully reconciled payment.
type Receipt struct {
	OrderID   string
	Reference string
	Amount    int // whole naira
}

// Reconcile resolves a gateway callback: it verifies the reference,
// finds the pending order in the session named by the gateway metadata,
// marks it paid and moves it into the order history. Each failure mode
// is a distinct error so the transport can render a distinct outcome.
func (e *Engine) Reconcile(ctx context.Context, reference string) (*Receipt, error) {
	result, err := e.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		logrus.WithField("reference", reference).WithError(err).Error("payment verification failed")
		return nil, fmt.Errorf("verify payment: %w", err)
	}

	if result.Status != payment.StatusSuccess {
		logrus.WithFields(logrus.Fields{
			"reference": reference,
			"status":    result.Status,
		}).Error("payment was not successful")
		return nil, &PaymentFailedError{Status: result.Status}
	}

	sess, ok := e.store.Get(result.Metadata.SessionID)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"reference":  reference,
			"session_id": result.Metadata.SessionID,
		}).Error("session not found for payment reference")
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	o, ok := sess.PendingOrders[reference]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"reference":  reference,
			"session_id": sess.ID,
		}).Error("order not found for payment reference")
		return nil, ErrOrderNotFound
	}

	amount := result.Amount / 100 // kobo to naira
	o.Status = order.StatusPaid
	o.PaymentReference = reference
	o.PaymentAmount = amount
	o.PaymentDate = result.PaidAt

	sess.OrderHistory = append(sess.OrderHistory, o)
	delete(sess.PendingOrders, reference)
	sess.CurrentOrder = order.Cart{}
	e.transition(sess, session.StateMain, "payment_reconciled")

	logrus.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"order_id":   result.Metadata.OrderID,
		"reference":  reference,
		"amount":     amount,
	}).Info("payment successful")

	return &Receipt{
		OrderID:   result.Metadata.OrderID,
		Reference: reference,
		Amount:    amount,
	}, nil
}
