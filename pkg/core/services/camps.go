package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// ListCamps returns the camp directory for any signed-in account.
func ListCamps(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User) ([]model.Camp, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	var camps []model.Camp
	err := store.View(ctx, func(tx db.Tx) error {
		var err error
		camps, err = tx.Camps()
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched camps", zap.Int("count", len(camps)))
	return camps, nil
}

// AddCampInput carries the new-camp form fields.
type AddCampInput struct {
	Name      string `validate:"required"`
	Beds      int    `validate:"gte=0"`
	Resources []string
	Contact   string
	Ambulance string
}

// AddCamp creates a camp. Volunteers and admins only. The camp id is the
// highest existing id plus one, and the initial bed count becomes the
// recorded capacity.
func AddCamp(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User, input AddCampInput) (*model.Camp, error) {
	if err := requireRole(actor, model.RoleVolunteer, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("camp validation failed: %w", err)
	}

	resources := input.Resources
	if len(resources) == 0 {
		resources = []string{"Basic supplies"}
	}
	ambulance := input.Ambulance
	if ambulance == "" {
		ambulance = "No"
	}

	var camp model.Camp
	err := store.Update(ctx, func(tx db.Tx) error {
		camps, err := tx.Camps()
		if err != nil {
			return err
		}

		camp = model.Camp{
			ID:           nextCampID(camps),
			Name:         input.Name,
			Beds:         input.Beds,
			OriginalBeds: input.Beds,
			Resources:    resources,
			Contact:      input.Contact,
			Ambulance:    ambulance,
			Type:         model.CampVolunteerAdded,
			AddedBy:      actor.Name,
			AddedDate:    model.Timestamp(time.Now()),
		}

		if err := tx.SetCamps(append(camps, camp)); err != nil {
			return err
		}

		description := fmt.Sprintf("New camp %q was created by %s %s", camp.Name, actor.Role, actor.Name)
		return recordActivity(tx, model.ActivityCampCreated, description, actor.Name)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Camp created",
		zap.Int("camp_id", camp.ID),
		zap.String("name", camp.Name),
		zap.Int("beds", camp.Beds))
	return &camp, nil
}

// DeleteCamp removes a camp and cascades: reservations pointing at the camp
// are dropped without bed compensation (the camp no longer exists), and
// assignments for the camp are removed. Deleting an unknown id is a no-op.
func DeleteCamp(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User, campID int) error {
	if err := requireRole(actor, model.RoleVolunteer, model.RoleAdmin); err != nil {
		return err
	}

	err := store.Update(ctx, func(tx db.Tx) error {
		camps, err := tx.Camps()
		if err != nil {
			return err
		}

		camp := findCamp(camps, campID)
		if camp == nil {
			logger.Debug("Delete of unknown camp ignored", zap.Int("camp_id", campID))
			return nil
		}
		name := camp.Name

		remaining := make([]model.Camp, 0, len(camps)-1)
		for _, c := range camps {
			if c.ID != campID {
				remaining = append(remaining, c)
			}
		}
		if err := tx.SetCamps(remaining); err != nil {
			return err
		}

		reservations, err := tx.Reservations()
		if err != nil {
			return err
		}
		for accountID, reservation := range reservations {
			if reservation.CampID == campID {
				delete(reservations, accountID)
			}
		}
		if err := tx.SetReservations(reservations); err != nil {
			return err
		}

		assignments, err := tx.Assignments()
		if err != nil {
			return err
		}
		kept := make([]model.Assignment, 0, len(assignments))
		for _, assignment := range assignments {
			if assignment.CampID != campID {
				kept = append(kept, assignment)
			}
		}
		if err := tx.SetAssignments(kept); err != nil {
			return err
		}

		description := fmt.Sprintf("Camp %q was deleted by %s %s", name, actor.Role, actor.Name)
		if err := recordActivity(tx, model.ActivityCampDeleted, description, actor.Name); err != nil {
			return err
		}

		logger.Info("Camp deleted",
			zap.Int("camp_id", campID),
			zap.String("name", name),
			zap.Int("assignments_removed", len(assignments)-len(kept)))
		return nil
	})
	return err
}
