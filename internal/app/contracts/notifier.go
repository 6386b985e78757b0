package contracts

import (
	"context"
	"medtrack-portal/internal/app/models"
)

// ReminderNotifier announces a newly scheduled reminder, the server side
// counterpart of the browser notification.
type ReminderNotifier interface {
	ReminderCreated(ctx context.Context, event *models.ReminderCreatedEvent) error
}
