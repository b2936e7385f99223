package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	assert.Equal(t, 15, Size())

	// Ids must be contiguous 1..Size so numeric input validation can
	// treat any value in that range as a menu item.
	for id := 1; id <= Size(); id++ {
		item, ok := Lookup(id)
		assert.True(t, ok, "missing item %d", id)
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.Price, 0)
	}

	_, ok := Lookup(16)
	assert.False(t, ok)
	_, ok = Lookup(0)
	assert.False(t, ok)
}

func TestKnownItems(t *testing.T) {
	tests := []struct {
		id    int
		name  string
		price int
	}{
		{1, "Jollof Rice", 2500},
		{2, "Fried Rice", 2500},
		{10, "Bread and Egg", 1200},
		{15, "Ponmo Stew", 2200},
	}
	for _, tt := range tests {
		item, ok := Lookup(tt.id)
		assert.True(t, ok)
		assert.Equal(t, tt.name, item.Name)
		assert.Equal(t, tt.price, item.Price)
	}
}

func TestUniqueNamesAndPriceRange(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range IDs() {
		item, _ := Lookup(id)
		assert.False(t, seen[item.Name], "duplicate name %q", item.Name)
		seen[item.Name] = true
		assert.GreaterOrEqual(t, item.Price, 1000)
		assert.LessOrEqual(t, item.Price, 5000)
	}
}

func TestListing(t *testing.T) {
	listing := Listing()
	assert.True(t, strings.HasPrefix(listing, "1. Jollof Rice - NGN2500\n"))
	assert.Contains(t, listing, "15. Ponmo Stew - NGN2200\n")
	assert.Equal(t, Size(), strings.Count(listing, "\n"))
}
