package order

import (
	"fmt"
	"sort"
	"strings"

	"github.com/demilade/chopbot/internal/menu"
)

// timeLayout is used everywhere a timestamp is shown to the customer.
const timeLayout = "02/01/2006 15:04"

// itemIDs returns the cart's item ids in ascending order so rendered
// output is deterministic.
func itemIDs(items Cart) []int {
	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Summary renders the checkout summary and returns it together with the
// grand total.
func Summary(items Cart) (string, int) {
	var b strings.Builder
	b.WriteString("🛒 ORDER SUMMARY\n\n")
	total := 0
	for _, id := range itemIDs(items) {
		item, ok := menu.Lookup(id)
		if !ok {
			continue
		}
		qty := items[id]
		lineTotal := item.Price * qty
		fmt.Fprintf(&b, "%s (x%d) - NGN%d\n", item.Name, qty, lineTotal)
		total += lineTotal
	}
	fmt.Fprintf(&b, "\n💰 TOTAL: NGN%d\n\n", total)
	return b.String(), total
}

// FormatCurrent renders the in-progress cart.
func FormatCurrent(items Cart) string {
	var b strings.Builder
	b.WriteString("🛒 Your current order:\n\n")
	total := 0
	for _, id := range itemIDs(items) {
		item, ok := menu.Lookup(id)
		if !ok {
			continue
		}
		qty := items[id]
		fmt.Fprintf(&b, "• %s (x%d) - NGN%d\n", item.Name, qty, item.Price*qty)
		total += item.Price * qty
	}
	fmt.Fprintf(&b, "\n💰 Total: NGN%d", total)
	return b.String()
}

// FormatHistory renders past orders, oldest first.
func FormatHistory(orders []*Order) string {
	var b strings.Builder
	b.WriteString("📋 Your order history:\n\n")
	for i, o := range orders {
		fmt.Fprintf(&b, "🧾 Order #%d (ID: %s):\n", i+1, o.ID)
		fmt.Fprintf(&b, "   Status: %s\n", o.Status)
		fmt.Fprintf(&b, "   Date: %s\n", o.Timestamp.Format(timeLayout))
		b.WriteString("   Items:\n")
		for _, id := range itemIDs(o.Items) {
			item, ok := menu.Lookup(id)
			if !ok {
				continue
			}
			qty := o.Items[id]
			fmt.Fprintf(&b, "   • %s (x%d) - NGN%d\n", item.Name, qty, item.Price*qty)
		}
		fmt.Fprintf(&b, "   💰 Total: NGN%d\n\n", o.Total)
	}
	return b.String()
}

// FormatScheduled renders scheduled orders in the order they were placed.
func FormatScheduled(orders []*Order) string {
	var b strings.Builder
	b.WriteString("Your scheduled orders:\n")
	for i, o := range orders {
		fmt.Fprintf(&b, "\nScheduled Order #%d:", i+1)
		fmt.Fprintf(&b, "\n  Scheduled for: %s", o.ScheduledTime.Format(timeLayout))
		fmt.Fprintf(&b, "\n  Status: %s", o.Status)
		b.WriteString("\n  Items:\n")
		for _, id := range itemIDs(o.Items) {
			item, ok := menu.Lookup(id)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "    %s (x%d)\n", item.Name, o.Items[id])
		}
		fmt.Fprintf(&b, "  Total: NGN%d\n", o.Total)
	}
	return b.String()
}
