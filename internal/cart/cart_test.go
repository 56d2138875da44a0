package cart

import (
	"testing"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
)

func TestCartTotalsSelectedPrices(t *testing.T) {
	var c Cart
	c.Add(domain.Product{ID: 1, ProductName: "A", Price: 5})
	c.Add(domain.Product{ID: 2, ProductName: "B", Price: 3})

	if got := c.Total(); got != 8 {
		t.Fatalf("expected total 8, got %v", got)
	}
	if ids := c.ProductIDs(); len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestCartAddIgnoresDuplicates(t *testing.T) {
	var c Cart
	if !c.Add(domain.Product{ID: 1, Price: 5}) {
		t.Fatalf("first add should succeed")
	}
	if c.Add(domain.Product{ID: 1, Price: 5}) {
		t.Fatalf("duplicate add should be ignored")
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", c.Len())
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	var c Cart
	c.Add(domain.Product{ID: 1, Price: 5})
	c.Add(domain.Product{ID: 2, Price: 3})

	if !c.Remove(1) {
		t.Fatalf("expected removal")
	}
	if c.Contains(1) || !c.Contains(2) {
		t.Fatalf("unexpected contents %+v", c.Items)
	}
	if c.Remove(42) {
		t.Fatalf("removing an unknown id should report false")
	}
	c.Clear()
	if !c.Empty() || c.Total() != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestCartCloneIsIndependent(t *testing.T) {
	var c Cart
	c.Add(domain.Product{ID: 1, Price: 5})
	clone := c.Clone()
	clone.Add(domain.Product{ID: 2, Price: 3})
	clone.Items[0].Price = 100

	if c.Len() != 1 || c.Items[0].Price != 5 {
		t.Fatalf("original cart changed: %+v", c.Items)
	}
}
