package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// Volunteer records the acting volunteer working at a camp. The log is
// append-only; assignments are only removed by admin cascades.
func Volunteer(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User, campID int) (*model.Assignment, error) {
	if err := requireRole(actor, model.RoleVolunteer); err != nil {
		return nil, err
	}

	var assignment model.Assignment
	err := store.Update(ctx, func(tx db.Tx) error {
		camps, err := tx.Camps()
		if err != nil {
			return err
		}
		camp := findCamp(camps, campID)
		if camp == nil {
			return ErrCampNotFound
		}

		assignments, err := tx.Assignments()
		if err != nil {
			return err
		}

		assignment = model.Assignment{
			ID:            uuid.New().String(),
			VolunteerID:   actor.ID,
			VolunteerName: actor.Name,
			CampID:        camp.ID,
			CampName:      camp.Name,
			Date:          model.Timestamp(time.Now()),
		}
		if err := tx.SetAssignments(append(assignments, assignment)); err != nil {
			return err
		}

		description := fmt.Sprintf("%s volunteered at %s", actor.Name, camp.Name)
		return recordActivity(tx, model.ActivityVolunteerAssignment, description, actor.Name)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Volunteer assignment recorded",
		zap.String("volunteer_id", actor.ID),
		zap.String("camp", assignment.CampName))
	return &assignment, nil
}

// ListAssignments returns the acting volunteer's assignment history, matched
// by account id so renames do not orphan records.
func ListAssignments(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User) ([]model.Assignment, error) {
	if err := requireRole(actor, model.RoleVolunteer); err != nil {
		return nil, err
	}

	var history []model.Assignment
	err := store.View(ctx, func(tx db.Tx) error {
		assignments, err := tx.Assignments()
		if err != nil {
			return err
		}
		for _, assignment := range assignments {
			if assignment.VolunteerID == actor.ID {
				history = append(history, assignment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched volunteer history",
		zap.String("volunteer_id", actor.ID),
		zap.Int("count", len(history)))
	return history, nil
}
