package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	row := activityRow{
		UserID:      entry.UserID,
		Action:      entry.Action,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	entry.ID = row.ID
	return nil
}

// joinedRow is the scan target for reads joined with the users table.
type joinedRow struct {
	ID          int64
	UserID      *int64
	Action      string
	Description string
	Timestamp   time.Time
	UserName    string
	UserEmail   string
}

const joinedSelect = "activity_logs.id, activity_logs.user_id, activity_logs.action, " +
	"activity_logs.description, activity_logs.timestamp, " +
	"COALESCE(users.name, '') AS user_name, COALESCE(users.email, '') AS user_email"

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	var rows []joinedRow
	err := r.db.WithContext(ctx).Model(&activityRow{}).
		Select(joinedSelect).
		Joins("LEFT JOIN users ON users.id = activity_logs.user_id").
		Order("activity_logs.timestamp DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return joinedToDomain(rows), nil
}

func (r *ActivityRepository) ListAll(ctx context.Context) ([]*domain.ActivityLog, error) {
	var rows []joinedRow
	err := r.db.WithContext(ctx).Model(&activityRow{}).
		Select(joinedSelect).
		Joins("LEFT JOIN users ON users.id = activity_logs.user_id").
		Order("activity_logs.timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return joinedToDomain(rows), nil
}

func joinedToDomain(rows []joinedRow) []*domain.ActivityLog {
	logs := make([]*domain.ActivityLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, &domain.ActivityLog{
			ID:          row.ID,
			UserID:      row.UserID,
			Action:      row.Action,
			Description: row.Description,
			Timestamp:   row.Timestamp,
			UserName:    row.UserName,
			UserEmail:   row.UserEmail,
		})
	}
	return logs
}
