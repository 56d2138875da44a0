package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestOrderStatusNext(t *testing.T) {
	cases := map[OrderStatus]OrderStatus{
		OrderStatusNew:       OrderStatusConfirmed,
		OrderStatusConfirmed: OrderStatusDelivered,
		OrderStatusInTransit: OrderStatusDelivered,
	}
	for from, want := range cases {
		got, ok := from.Next()
		if !ok || got != want {
			t.Fatalf("%s: expected %s, got %s (ok=%v)", from, want, got, ok)
		}
	}
	if _, ok := OrderStatusDelivered.Next(); ok {
		t.Fatalf("delivered orders are terminal")
	}
}

func TestOrderDecodesSingleAndListProductIDs(t *testing.T) {
	var single Order
	if err := json.Unmarshal([]byte(`{"id":1,"product_id":7,"status":"NEW"}`), &single); err != nil {
		t.Fatalf("single: %v", err)
	}
	if len(single.ProductIDs) != 1 || single.ProductIDs[0] != 7 {
		t.Fatalf("unexpected ids %v", single.ProductIDs)
	}

	var list Order
	if err := json.Unmarshal([]byte(`{"id":2,"product_id":[3,4],"status":"CONFIRMED"}`), &list); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.ProductIDs) != 2 || list.ProductIDs[1] != 4 {
		t.Fatalf("unexpected ids %v", list.ProductIDs)
	}

	var none Order
	if err := json.Unmarshal([]byte(`{"id":3,"product_id":null}`), &none); err != nil {
		t.Fatalf("null: %v", err)
	}
	if none.ProductIDs != nil {
		t.Fatalf("expected nil ids")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleLogistics.Valid() || !RoleManufacturer.Valid() {
		t.Fatalf("expected known roles to be valid")
	}
	if Role("root").Valid() {
		t.Fatalf("unexpected valid role")
	}
}

func TestTimestampAcceptsZonelessBackendTimes(t *testing.T) {
	var o Order
	body := `{"id":1,"product_id":[1],"status":"NEW","created_at":"2025-03-01T10:20:30.123456"}`
	if err := json.Unmarshal([]byte(body), &o); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC)
	if !o.CreatedAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, o.CreatedAt.Time)
	}
}

func TestTimestampLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-03-01T10:20:30Z"`:      time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC),
		`"2025-03-01T12:20:30+02:00"`: time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC),
		`"2025-03-01T10:20:30"`:       time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC),
		`null`:                        {},
	}
	for raw, want := range cases {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if !ts.Equal(want) {
			t.Fatalf("%s: expected %v, got %v", raw, want, ts.Time)
		}
	}

	var ts Timestamp
	if err := ts.UnmarshalJSON([]byte(`"yesterday"`)); err == nil {
		t.Fatalf("expected an error for an unparsable time")
	}
}
