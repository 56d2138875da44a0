package service

import (
	"context"
	"testing"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

func TestAdvanceMovesToNextStatus(t *testing.T) {
	api := &fakeAPI{}
	d := events.NewInMemoryDispatcher()
	rec := newEventRecorder(d)
	svc := NewShipmentService(api, d)

	order, err := svc.Advance(context.Background(), "tok", 7, domain.OrderStatusNew)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if order.Status != domain.OrderStatusConfirmed || api.lastUpdate.Status != domain.OrderStatusConfirmed {
		t.Fatalf("unexpected status %s", order.Status)
	}
	payload := rec.Last().Payload.(events.OrderStatusChangedPayload)
	if payload.OldStatus != domain.OrderStatusNew || payload.NewStatus != domain.OrderStatusConfirmed {
		t.Fatalf("unexpected payload %+v", payload)
	}

	if _, err := svc.Advance(context.Background(), "tok", 7, domain.OrderStatusDelivered); !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("delivered orders cannot advance, got %v", err)
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	api := &fakeAPI{}
	svc := NewShipmentService(api, nil)
	if _, err := svc.List(context.Background(), "tok", "LOST"); !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.List(context.Background(), "tok", domain.OrderStatusInTransit); err != nil {
		t.Fatalf("list: %v", err)
	}
	if calls := api.Calls(); len(calls) != 1 || calls[0] != "orders:IN_TRANSIT" {
		t.Fatalf("unexpected calls %v", calls)
	}
}

func TestLedgerRequiresOrderID(t *testing.T) {
	svc := NewShipmentService(&fakeAPI{}, nil)
	if _, err := svc.Ledger(context.Background(), "tok", 0); !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	entries, err := svc.Ledger(context.Background(), "tok", 5)
	if err != nil || len(entries) != 1 {
		t.Fatalf("unexpected ledger %v %v", entries, err)
	}
}
