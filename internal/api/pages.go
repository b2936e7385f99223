package api

import (
	"fmt"
	"strings"

	"github.com/demilade/chopbot/internal/chat"
)

// The callback endpoint is opened in the customer's browser after the
// gateway redirect, so each outcome is a small self-contained HTML page.

func renderPage(title, color, heading string, paragraphs ...string) string {
	var b strings.Builder
	b.WriteString("<html>\n")
	fmt.Fprintf(&b, "<head><title>%s</title></head>\n", title)
	b.WriteString(`<body style="font-family: Arial, sans-serif; text-align: center; padding: 50px;">` + "\n")
	fmt.Fprintf(&b, `<h1 style="color: %s;">%s</h1>`+"\n", color, heading)
	for _, p := range paragraphs {
		fmt.Fprintf(&b, "<p>%s</p>\n", p)
	}
	b.WriteString(`<p><a href="/" style="background: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Return to ChatBot</a></p>` + "\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func paymentSuccessPage(receipt *chat.Receipt) string {
	return renderPage("Payment Successful", "green", "✅ Payment Successful!",
		fmt.Sprintf("Your order %s has been confirmed.", receipt.OrderID),
		fmt.Sprintf("Amount paid: NGN%d", receipt.Amount),
		fmt.Sprintf("Reference: %s", receipt.Reference),
	)
}

func missingReferencePage() string {
	return renderPage("Payment Error", "red", "❌ Payment Error",
		"Reference parameter is missing. Please try again.",
	)
}

func paymentFailedPage(reference, status string) string {
	return renderPage("Payment Failed", "red", "❌ Payment Failed",
		fmt.Sprintf("Status: %s", status),
		"Reason: Payment was not successful",
		fmt.Sprintf("Reference: %s", reference),
	)
}

func orderNotFoundPage(reference string) string {
	return renderPage("Order Not Found", "red", "❌ Order Not Found",
		"The order associated with this payment could not be found.",
		fmt.Sprintf("Reference: %s", reference),
	)
}

func sessionNotFoundPage(reference string) string {
	return renderPage("Session Not Found", "red", "❌ Session Not Found",
		"Your session could not be found. Please try again.",
		fmt.Sprintf("Reference: %s", reference),
	)
}

func verificationErrorPage(err error) string {
	return renderPage("Payment Verification Error", "red", "❌ Payment Verification Error",
		"An error occurred while verifying your payment. Please contact support.",
		fmt.Sprintf("Error: %s", err),
	)
}
