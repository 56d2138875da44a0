package worker

import (
	"github.com/spec-kit/supplychain-dashboard/internal/service"
)

// StartNotificationWorker subscribes the notification service to every
// dashboard event. Events are delivered synchronously by the dispatcher.
func StartNotificationWorker(notifications *service.NotificationService) bool {
	if notifications == nil {
		return false
	}
	notifications.RegisterHandlers()
	return true
}
