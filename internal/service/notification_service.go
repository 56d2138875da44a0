package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/events"
	"github.com/spec-kit/supplychain-dashboard/internal/observability"
)

// NotificationService records dashboard events in the log and the metrics.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLogin, n.handleSessionEvent)
	n.dispatcher.Subscribe(events.EventLogout, n.handleSessionEvent)
	n.dispatcher.Subscribe(events.EventSessionExpired, n.handleSessionEvent)
	n.dispatcher.Subscribe(events.EventOrderPlaced, n.handleOrderPlaced)
	n.dispatcher.Subscribe(events.EventProductRegistered, n.handleProductRegistered)
	n.dispatcher.Subscribe(events.EventOrderStatusChanged, n.handleOrderStatusChanged)
}

func (n *NotificationService) handleSessionEvent(ctx context.Context, event events.Event) error {
	n.record(event)
	n.logger.Info("SessionEvent",
		zap.String("type", string(event.Type)),
		zap.String("subject", event.Actor.Subject),
		zap.String("role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleOrderPlaced(ctx context.Context, event events.Event) error {
	n.record(event)
	n.logger.Info("OrderPlaced", zap.String("subject", event.Actor.Subject), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleProductRegistered(ctx context.Context, event events.Event) error {
	n.record(event)
	payload, _ := event.Payload.(events.ProductRegisteredPayload)
	if payload.Flagged {
		n.logger.Warn("ProductRegisteredFlagged", zap.String("subject", event.Actor.Subject), zap.Any("payload", payload))
		return nil
	}
	n.logger.Info("ProductRegistered", zap.String("subject", event.Actor.Subject), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleOrderStatusChanged(ctx context.Context, event events.Event) error {
	n.record(event)
	n.logger.Info("OrderStatusChanged", zap.String("subject", event.Actor.Subject), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) record(event events.Event) {
	n.metrics.RecordEvent(string(event.Type))
}
