package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// Reserve holds one bed at a camp for the acting account. Each account holds
// at most one reservation at a time. The bed decrement and the reservation
// record are written in the same transaction, so a failure of either leaves
// the camp registry untouched.
func Reserve(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User, campID int) (*model.Reservation, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	logger.Info("Reserving bed",
		zap.String("user_id", actor.ID),
		zap.Int("camp_id", campID))

	var reservation model.Reservation
	err := store.Update(ctx, func(tx db.Tx) error {
		reservations, err := tx.Reservations()
		if err != nil {
			return err
		}
		if _, ok := reservations[actor.ID]; ok {
			return ErrAlreadyReserved
		}

		camps, err := tx.Camps()
		if err != nil {
			return err
		}
		camp := findCamp(camps, campID)
		if camp == nil {
			return ErrCampNotFound
		}
		if camp.Beds <= 0 {
			return ErrCampFull
		}

		camp.Beds--
		if err := tx.SetCamps(camps); err != nil {
			return err
		}

		reservation = model.Reservation{
			CampID:       camp.ID,
			CampName:     camp.Name,
			SelectedDate: model.Timestamp(time.Now()),
			UserName:     actor.Name,
		}
		reservations[actor.ID] = reservation
		if err := tx.SetReservations(reservations); err != nil {
			return err
		}

		description := actor.Name + " reserved a bed at " + camp.Name
		return recordActivity(tx, model.ActivityCampSelection, description, actor.Name)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Bed reserved",
		zap.String("user_id", actor.ID),
		zap.String("camp", reservation.CampName))
	return &reservation, nil
}

// GetReservation returns the acting account's active reservation, or nil.
func GetReservation(ctx context.Context, store db.Store, actor *model.User) (*model.Reservation, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	var reservation *model.Reservation
	err := store.View(ctx, func(tx db.Tx) error {
		reservations, err := tx.Reservations()
		if err != nil {
			return err
		}
		if r, ok := reservations[actor.ID]; ok {
			reservation = &r
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}
