// Package menu holds the static restaurant catalog. Items are keyed by
// the small integer the customer types in the chat; prices are in whole
// naira. The catalog is fixed at compile time and never mutated.
package menu

import (
	"fmt"
	"sort"
	"strings"
)

type Item struct {
	Name  string
	Price int
}

var items = map[int]Item{
	1:  {Name: "Jollof Rice", Price: 2500},
	2:  {Name: "Fried Rice", Price: 2500},
	3:  {Name: "Pounded Yam and Egusi", Price: 3500},
	4:  {Name: "Amala and Ewedu", Price: 3000},
	5:  {Name: "Goat Meat Pepper Soup", Price: 2800},
	6:  {Name: "Suya", Price: 2000},
	7:  {Name: "Moi Moi", Price: 1500},
	8:  {Name: "Akara", Price: 1000},
	9:  {Name: "Efo Riro", Price: 2700},
	10: {Name: "Bread and Egg", Price: 1200},
	11: {Name: "Ofada Rice and Ayamase", Price: 3200},
	12: {Name: "Nkwobi", Price: 3800},
	13: {Name: "Yam Porridge", Price: 2300},
	14: {Name: "Chicken Shawarma", Price: 2500},
	15: {Name: "Ponmo Stew", Price: 2200},
}

// Lookup returns the item for the given id, if it exists.
func Lookup(id int) (Item, bool) {
	item, ok := items[id]
	return item, ok
}

// Size returns the number of items on the menu. Menu item ids are
// always 1..Size().
func Size() int {
	return len(items)
}

// IDs returns all item ids in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Listing renders the numbered menu shown to the customer when they
// start an order.
func Listing() string {
	var b strings.Builder
	for _, id := range IDs() {
		item := items[id]
		fmt.Fprintf(&b, "%d. %s - NGN%d\n", id, item.Name, item.Price)
	}
	return b.String()
}
