// Package chat implements the conversation engine: it interprets a raw
// chat message against the session's current state, mutates the cart,
// order history and schedule, and produces the response text. The
// checkout path hands off to the payment gateway; the callback path
// reconciles the gateway's verification result.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/demilade/chopbot/internal/menu"
	"github.com/demilade/chopbot/internal/order"
	"github.com/demilade/chopbot/internal/payment"
	"github.com/demilade/chopbot/internal/session"
)

type Engine struct {
	store   *session.Store
	gateway payment.Gateway
}

func NewEngine(store *session.Store, gateway payment.Gateway) *Engine {
	return &Engine{store: store, gateway: gateway}
}

// HandleMessage processes one chat message for the session and returns
// the response text. All session mutation happens under the session's
// lock, including the payment-gateway call on the checkout path, so
// commands and payment callbacks for the same client never interleave.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, message string) (string, error) {
	sess := e.store.GetOrCreate(sessionID)
	sess.Lock()
	defer sess.Unlock()

	// Email collection consumes the message before numeric validation.
	if sess.State == session.StateCollectingEmail {
		return e.collectEmail(ctx, sess, message)
	}

	// A pending schedule prompt consumes date-shaped text regardless of
	// the conversation state.
	if sess.Scheduling && isDateShaped(message) {
		return e.scheduleOrder(sess, message), nil
	}

	num, numeric := parseNumeric(message)
	if !numeric {
		return "Invalid input. Please enter a number.", nil
	}
	if !isRecognized(num) {
		return helpText, nil
	}

	switch num {
	case cmdPlaceOrder:
		// 1 doubles as "show menu" and "add Jollof Rice": the ordering
		// state disambiguates.
		if sess.State == session.StateOrdering {
			return e.addItem(sess, cmdPlaceOrder), nil
		}
		e.transition(sess, session.StateOrdering, message)
		return "Please select an item from the menu:\n" + menu.Listing() +
			"\nEnter the number of an item to add to your order, or type 99 to checkout.", nil

	case cmdCheckout:
		if sess.CurrentOrder.IsEmpty() {
			return "🛒 Your cart is empty. Please select 1 to place an order.", nil
		}
		summary, _ := order.Summary(sess.CurrentOrder)
		return summary + "💳 Ready to pay? Type '100' to proceed to payment.", nil

	case cmdViewHistory:
		if len(sess.OrderHistory) == 0 {
			return "📋 No order history.", nil
		}
		return order.FormatHistory(sess.OrderHistory), nil

	case cmdViewCurrent:
		if sess.CurrentOrder.IsEmpty() {
			return "No current order.", nil
		}
		return order.FormatCurrent(sess.CurrentOrder), nil

	case cmdCancel:
		sess.CurrentOrder = order.Cart{}
		return "Order cancelled. Your cart is now empty.", nil

	case cmdPay:
		if sess.CurrentOrder.IsEmpty() {
			return "No order to pay for. Please select 1 to place an order.", nil
		}
		e.transition(sess, session.StateCollectingEmail, message)
		return "📧 Please provide your email address for the payment receipt:\n\nExample: john.doe@example.com", nil

	case cmdCompletePay:
		return e.completePayment(sess), nil

	case cmdSchedule:
		if sess.CurrentOrder.IsEmpty() {
			return "No order to schedule. Please select 1 to place an order first.", nil
		}
		sess.Scheduling = true
		return "When would you like to schedule your order? Please enter the date and time in this format: DD/MM/YYYY HH:MM", nil

	case cmdViewScheduled:
		if len(sess.ScheduledOrders) == 0 {
			return "No scheduled orders.", nil
		}
		return order.FormatScheduled(sess.ScheduledOrders), nil
	}

	// Remaining valid numbers are menu item ids.
	if _, ok := menu.Lookup(num); ok &&
		(sess.State == session.StateOrdering || sess.State == session.StateMain) {
		return e.addItem(sess, num), nil
	}

	return helpText, nil
}

const helpText = "❌ Invalid option. Here are your available options:\n\n" +
	"🔢 MAIN MENU:\n" +
	"1. Place an order - Browse our menu\n" +
	"99. Checkout order - Review and pay for your order\n" +
	"97. See current order - View items in your cart\n" +
	"98. See order history - View past orders\n" +
	"0. Cancel order - Clear your cart\n" +
	"102. Schedule order - Schedule for later\n\n" +
	"💡 After checkout (99), use 100 to pay, then 101 to complete payment."

// addItem increments the item's quantity and returns to the main state.
func (e *Engine) addItem(sess *session.Session, itemID int) string {
	item, _ := menu.Lookup(itemID)
	qty := sess.CurrentOrder.Add(itemID)
	e.transition(sess, session.StateMain, fmt.Sprintf("add:%d", itemID))

	return fmt.Sprintf("✅ %s has been added to your order. Current quantity: %d", item.Name, qty) +
		"\n\n📋 What's next?\n1️⃣ See menu\n9️⃣9️⃣ Checkout\n9️⃣7️⃣ See current order\n1️⃣0️⃣2️⃣ Schedule order"
}

// collectEmail handles the message that arrives while the session is
// waiting for a payment-receipt email. A valid email triggers payment
// initialization with the gateway.
func (e *Engine) collectEmail(ctx context.Context, sess *session.Session, message string) (string, error) {
	if !isValidEmail(message) {
		return "❌ Invalid email format. Please enter a valid email address:\nExample: john.doe@example.com", nil
	}

	email := message
	total := order.Total(sess.CurrentOrder)
	pending := order.New(sess.CurrentOrder, order.StatusPending)
	pending.CustomerEmail = email

	result, err := e.gateway.InitializePayment(ctx, total, email, sess.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"amount":     total,
		}).WithError(err).Error("payment initialization failed")
		e.transition(sess, session.StateMain, "payment_init_failed")
		return fmt.Sprintf("❌ Payment initialization failed. Reason: %s. Please try again.", err), nil
	}

	pending.PaymentReference = result.Reference
	sess.PendingOrders[result.Reference] = pending
	e.transition(sess, session.StateMain, "payment_initialized")

	logrus.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"order_id":   result.OrderID,
		"reference":  result.Reference,
		"amount":     total,
	}).Info("payment initialized")

	response := "💳 PAYMENT READY\n\n"
	response += fmt.Sprintf("Order ID: %s\n", result.OrderID)
	response += fmt.Sprintf("Amount: NGN%d\n\n", result.Amount)
	response += fmt.Sprintf("🔗 Payment Link: %s\n\n", result.AuthorizationURL)
	response += "📱 Click the link above to complete your payment securely with Paystack.\n\n"
	response += fmt.Sprintf("📧 Receipt will be sent to: %s\n\n", email)
	response += "⚠️ Note: This is a test transaction. Use test card: 4084084084084081"
	return response, nil
}

// completePayment simulates the gateway callback for demos: it settles
// whichever pending order map iteration yields first. With several
// pending orders the pick is arbitrary, just like the behavior this
// command emulates.
func (e *Engine) completePayment(sess *session.Session) string {
	var pending *order.Order
	for _, o := range sess.PendingOrders {
		if o.Status == order.StatusPending {
			pending = o
			break
		}
	}
	if pending == nil {
		return "❌ No pending payment found. Please start a new order by selecting 1."
	}

	pending.Status = order.StatusPaid
	sess.OrderHistory = append(sess.OrderHistory, pending)
	sess.PendingOrders = make(map[string]*order.Order)
	sess.CurrentOrder = order.Cart{}

	logrus.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"order_id":   pending.ID,
		"amount":     pending.Total,
	}).Info("payment completed (simulated)")

	response := "✅ PAYMENT SUCCESSFUL!\n\n"
	response += fmt.Sprintf("💰 Amount Paid: NGN%d\n", pending.Total)
	response += fmt.Sprintf("📋 Order ID: %s\n", pending.ID)
	response += "✨ Your order has been confirmed and will be prepared shortly.\n\n"
	response += "🙏 Thank you for your patronage!\n\n"
	response += "To place another order, select '1' from the main menu."
	return response
}

// scheduleOrder consumes a date-shaped message while a schedule prompt
// is pending.
func (e *Engine) scheduleOrder(sess *session.Session, message string) string {
	when, ok := parseScheduleTime(message, time.Now())
	if !ok {
		return "Invalid date or time. Please enter a future date in the format: DD/MM/YYYY HH:MM"
	}

	scheduled := order.NewScheduled(sess.CurrentOrder, when)
	sess.ScheduledOrders = append(sess.ScheduledOrders, scheduled)
	sess.CurrentOrder = order.Cart{}
	sess.Scheduling = false

	logrus.WithFields(logrus.Fields{
		"session_id":     sess.ID,
		"order_id":       scheduled.ID,
		"scheduled_time": when,
	}).Info("order scheduled")

	return fmt.Sprintf("Your order has been scheduled for %s. Select 103 to view scheduled orders.", when.Format(scheduleLayout))
}

// transition changes the conversation state and records it.
func (e *Engine) transition(sess *session.Session, next session.State, cause string) {
	if sess.State == next {
		return
	}
	logrus.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"from":       sess.State,
		"to":         next,
		"cause":      cause,
	}).Debug("state transition")
	sess.State = next
}
