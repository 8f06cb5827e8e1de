package repository

import (
	"context"

	"pawnder/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuotaRepository defines the interface for daily-usage counter operations.
type QuotaRepository interface {
	Increment(ctx context.Context, userID uint, actionType models.ActionType, actionDate string) (int, error)
	GetCount(ctx context.Context, userID uint, actionType models.ActionType, actionDate string) (int, error)
}

// quotaRepository implements QuotaRepository
type quotaRepository struct {
	db *gorm.DB
}

// NewQuotaRepository creates a new quota repository
func NewQuotaRepository(db *gorm.DB) QuotaRepository {
	return &quotaRepository{db: db}
}

// Increment bumps the (user, action, day) counter by one and returns the new
// count. The upsert rides the unique key, so two concurrent first actions of
// the day collapse into a single row with count 2 instead of duplicating.
func (r *quotaRepository) Increment(ctx context.Context, userID uint, actionType models.ActionType, actionDate string) (int, error) {
	usage := models.DailyUsage{
		UserID:     userID,
		ActionType: actionType,
		ActionDate: actionDate,
		Count:      1,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "action_type"}, {Name: "action_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("daily_usages.count + 1"),
			}),
		}).
		Create(&usage).Error; err != nil {
		return 0, models.NewInternalError(err)
	}

	return r.GetCount(ctx, userID, actionType, actionDate)
}

func (r *quotaRepository) GetCount(ctx context.Context, userID uint, actionType models.ActionType, actionDate string) (int, error) {
	var usage models.DailyUsage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND action_type = ? AND action_date = ?", userID, actionType, actionDate).
		First(&usage).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, models.NewInternalError(err)
	}
	return usage.Count, nil
}
