// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/koafy/setter-console/models"
)

const (
	statusEventsTable  = "status_events"
	notificationsTable = "notifications"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertStatusEvent(event models.StatusEvent) (string, []any, error) {
	return psql.Insert(statusEventsTable).
		Columns("account_id", "status", "has_qr", "error", "message", "recorded_at").
		Values(event.AccountID, string(event.Status), event.HasQR, event.Error, event.Message, event.RecordedAt.UTC()).
		ToSql()
}

func buildInsertNotification(record models.NotificationRecord) (string, []any, error) {
	n := record.Notification
	return psql.Insert(notificationsTable).
		Columns("account_id", "notification_id", "type", "title", "message", "created_at").
		Values(record.AccountID, n.ID, string(n.Type), n.Title, n.Message, n.Timestamp.UTC()).
		ToSql()
}

func buildSelectStatusHistory(accountID string, limit int) (string, []any, error) {
	return psql.Select("id", "account_id", "status", "has_qr", "error", "message", "recorded_at").
		From(statusEventsTable).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("recorded_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildSelectNotificationHistory(accountID string, limit int) (string, []any, error) {
	return psql.Select("account_id", "notification_id", "type", "title", "message", "created_at").
		From(notificationsTable).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

// buildPrune deletes every row of accountID in table except the keep newest.
func buildPrune(table, accountID string, keep int) (string, []any, error) {
	newest := psql.Select("id").
		From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("id DESC").
		Limit(uint64(keep))

	return psql.Delete(table).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Expr("id NOT IN (?)", newest)).
		ToSql()
}
