// Package cart holds the consumer's product selection for one browsing session.
package cart

import "github.com/spec-kit/supplychain-dashboard/internal/domain"

// Cart is an ordered selection of products. The zero value is an empty cart.
type Cart struct {
	Items []domain.Product `json:"items,omitempty"`
}

// Add appends p unless a product with the same id is already selected.
func (c *Cart) Add(p domain.Product) bool {
	if c.Contains(p.ID) {
		return false
	}
	c.Items = append(c.Items, p)
	return true
}

// Remove drops every item with id and reports whether anything was removed.
func (c *Cart) Remove(id int64) bool {
	kept := c.Items[:0]
	removed := false
	for _, item := range c.Items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	return removed
}

// Contains reports whether id is selected.
func (c Cart) Contains(id int64) bool {
	for _, item := range c.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected products.
func (c Cart) Len() int {
	return len(c.Items)
}

// Empty reports whether nothing is selected.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Total sums the prices of the selected products.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// ProductIDs returns the selected ids in selection order.
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Clone returns a cart that shares no memory with c.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]domain.Product, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
