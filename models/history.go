package models

import "time"

// StatusEvent is one applied connection-status transition as recorded in the
// local journal.
type StatusEvent struct {
	ID         int64     `json:"id"`
	AccountID  string    `json:"account_id"`
	Status     Status    `json:"status"`
	HasQR      bool      `json:"has_qr"`
	Error      string    `json:"error,omitempty"`
	Message    string    `json:"message,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NotificationRecord is a notification as kept in the local journal.
type NotificationRecord struct {
	AccountID    string `json:"account_id"`
	Notification Notification
}
