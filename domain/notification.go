package domain

import (
	"time"

	"github.com/x-xyz/marketfront/base/ctx"
)

type NotificationLevel string

const (
	NotificationLevelError   NotificationLevel = "error"
	NotificationLevelSuccess NotificationLevel = "success"
)

type NotificationSource string

const (
	NotificationSourceCatalog  NotificationSource = "catalog"
	NotificationSourcePurchase NotificationSource = "purchase"
)

// Notification is a transient user-facing message
type Notification struct {
	Id        string             `json:"id"`
	Level     NotificationLevel  `json:"level"`
	Source    NotificationSource `json:"source"`
	Message   string             `json:"message"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Notifier delivers notifications, it never fails the caller
type Notifier interface {
	Notify(c ctx.Ctx, level NotificationLevel, source NotificationSource, message string)
}

// NotificationSink is an external channel a notification is forwarded to
type NotificationSink interface {
	Send(ctx.Ctx, *Notification) error
}

type NotificationUseCase interface {
	Notifier
	Recent(limit int) []*Notification
	// Subscribe streams notifications created after the call until cancel
	// is called. A subscriber that falls behind misses notifications.
	Subscribe() (ch <-chan *Notification, cancel func())
}
