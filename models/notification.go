package models

import "time"

// NotificationType classifies a user-facing notification.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification is a transient, user-dismissible event. Once added to a queue
// it is never mutated.
type Notification struct {
	// ID is assigned by the queue and grows monotonically.
	ID int64 `json:"id"`

	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`

	// Timestamp is assigned by the queue on Add.
	Timestamp time.Time `json:"timestamp"`
}
