package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// CancelReservation releases the acting account's bed. The reservation check,
// bed restore and record removal share one transaction, so a cancel racing
// another context either sees the reservation and wins or fails with
// ErrNoReservation; beds cannot be over-restored.
func CancelReservation(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User) (*model.Reservation, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	var cancelled model.Reservation
	err := store.Update(ctx, func(tx db.Tx) error {
		reservations, err := tx.Reservations()
		if err != nil {
			return err
		}

		reservation, ok := reservations[actor.ID]
		if !ok {
			return ErrNoReservation
		}
		cancelled = reservation

		camps, err := tx.Camps()
		if err != nil {
			return err
		}
		// The camp may have been deleted after the reservation was made;
		// then there is no bed count to restore.
		if camp := findCamp(camps, reservation.CampID); camp != nil {
			camp.Beds++
			if err := tx.SetCamps(camps); err != nil {
				return err
			}
		}

		delete(reservations, actor.ID)
		if err := tx.SetReservations(reservations); err != nil {
			return err
		}

		description := actor.Name + " cancelled the reservation at " + reservation.CampName
		return recordActivity(tx, model.ActivityCampCancellation, description, actor.Name)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation cancelled",
		zap.String("user_id", actor.ID),
		zap.String("camp", cancelled.CampName))
	return &cancelled, nil
}
