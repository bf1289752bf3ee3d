package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// recordActivity prepends an audit entry inside the caller's transaction and
// truncates the log to the most recent entries.
func recordActivity(tx db.Tx, activityType, description, user string) error {
	activities, err := tx.Activities()
	if err != nil {
		return err
	}

	entry := model.Activity{
		ID:          uuid.New().String(),
		Type:        activityType,
		Description: description,
		Timestamp:   model.Timestamp(time.Now()),
		User:        user,
	}

	activities = append([]model.Activity{entry}, activities...)
	if len(activities) > model.MaxActivities {
		activities = activities[:model.MaxActivities]
	}

	return tx.SetActivities(activities)
}

// ListActivities returns the audit trail, newest first. Admin only.
func ListActivities(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User) ([]model.Activity, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}

	var activities []model.Activity
	err := store.View(ctx, func(tx db.Tx) error {
		var err error
		activities, err = tx.Activities()
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched activity log", zap.Int("count", len(activities)))
	return activities, nil
}
