package store

import (
	"context"
	"fmt"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

// DefaultHistoryLimit is used when a history query passes a non-positive
// limit.
const DefaultHistoryLimit = 50

type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository returns a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

func (j *journalRepository) RecordStatus(ctx context.Context, event models.StatusEvent) error {
	log := logger.FromContext(ctx)

	if event.AccountID == "" {
		return ErrNoAccount
	}

	query, args, err := buildInsertStatusEvent(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "journalRepository.RecordStatus").
			Str("account_id", event.AccountID).
			Str("status", string(event.Status)).
			Msg("failed to insert status event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (j *journalRepository) RecordNotification(ctx context.Context, record models.NotificationRecord) error {
	log := logger.FromContext(ctx)

	if record.AccountID == "" {
		return ErrNoAccount
	}

	query, args, err := buildInsertNotification(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "journalRepository.RecordNotification").
			Str("account_id", record.AccountID).
			Int64("notification_id", record.Notification.ID).
			Msg("failed to insert notification")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (j *journalRepository) StatusHistory(ctx context.Context, accountID string, limit int) ([]models.StatusEvent, error) {
	log := logger.FromContext(ctx)

	if accountID == "" {
		return nil, ErrNoAccount
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query, args, err := buildSelectStatusHistory(accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.StatusHistory").
			Str("account_id", accountID).
			Msg("failed to query status history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.StatusEvent, 0, limit)
	for rows.Next() {
		var (
			event  models.StatusEvent
			status string
		)
		if err = rows.Scan(&event.ID, &event.AccountID, &status, &event.HasQR, &event.Error, &event.Message, &event.RecordedAt); err != nil {
			log.Err(err).
				Str("func", "journalRepository.StatusHistory").
				Msg("failed to scan status event")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		event.Status = models.ParseStatus(status)
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (j *journalRepository) NotificationHistory(ctx context.Context, accountID string, limit int) ([]models.NotificationRecord, error) {
	log := logger.FromContext(ctx)

	if accountID == "" {
		return nil, ErrNoAccount
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query, args, err := buildSelectNotificationHistory(accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.NotificationHistory").
			Str("account_id", accountID).
			Msg("failed to query notification history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.NotificationRecord, 0, limit)
	for rows.Next() {
		var (
			record models.NotificationRecord
			kind   string
		)
		n := &record.Notification
		if err = rows.Scan(&record.AccountID, &n.ID, &kind, &n.Title, &n.Message, &n.Timestamp); err != nil {
			log.Err(err).
				Str("func", "journalRepository.NotificationHistory").
				Msg("failed to scan notification")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		n.Type = models.NotificationType(kind)
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (j *journalRepository) Prune(ctx context.Context, accountID string, keep int) error {
	log := logger.FromContext(ctx)

	if accountID == "" {
		return ErrNoAccount
	}
	if keep <= 0 {
		return nil
	}

	for _, table := range []string{statusEventsTable, notificationsTable} {
		query, args, err := buildPrune(table, accountID, keep)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := j.DB.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "journalRepository.Prune").
				Str("table", table).
				Msg("failed to prune journal")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			j.logger.Debug().
				Str("func", "journalRepository.Prune").
				Str("table", table).
				Int64("deleted", n).
				Msg("journal pruned")
		}
	}

	return nil
}
