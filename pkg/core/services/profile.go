package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// ProfileUpdate carries optional profile changes; nil fields are untouched.
// Email, role and password are not editable through the profile.
type ProfileUpdate struct {
	Name         *string
	Contact      *string
	Age          *int
	Address      *string
	Needs        *string
	Skills       *string
	Availability *string
}

// UpdateProfile applies changes to the acting account in the user directory
// and the session record. A rename refreshes the cached display names on the
// account's reservation and assignments.
func UpdateProfile(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User, update ProfileUpdate) (*model.User, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	var updated model.User
	err := store.Update(ctx, func(tx db.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}

		var account *model.User
		for i := range users {
			if users[i].ID == actor.ID {
				account = &users[i]
				break
			}
		}
		if account == nil {
			return ErrUserNotFound
		}

		renamed := false
		if update.Name != nil && *update.Name != "" && *update.Name != account.Name {
			account.Name = *update.Name
			renamed = true
		}
		if update.Contact != nil {
			account.Contact = *update.Contact
		}
		if update.Age != nil {
			account.Age = *update.Age
		}
		if update.Address != nil {
			account.Address = *update.Address
		}
		if update.Needs != nil {
			account.Needs = *update.Needs
		}
		if update.Skills != nil {
			account.Skills = *update.Skills
		}
		if update.Availability != nil {
			account.Availability = *update.Availability
		}

		if err := tx.SetUsers(users); err != nil {
			return err
		}

		if renamed {
			// Display names are cached labels; keep them current
			reservations, err := tx.Reservations()
			if err != nil {
				return err
			}
			if reservation, ok := reservations[account.ID]; ok {
				reservation.UserName = account.Name
				reservations[account.ID] = reservation
				if err := tx.SetReservations(reservations); err != nil {
					return err
				}
			}

			assignments, err := tx.Assignments()
			if err != nil {
				return err
			}
			changed := false
			for i := range assignments {
				if assignments[i].VolunteerID == account.ID {
					assignments[i].VolunteerName = account.Name
					changed = true
				}
			}
			if changed {
				if err := tx.SetAssignments(assignments); err != nil {
					return err
				}
			}
		}

		updated = *account
		if err := tx.SetSession(account); err != nil {
			return err
		}

		return recordActivity(tx, model.ActivityProfileUpdated,
			updated.Name+" updated their profile", updated.Name)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Profile updated", zap.String("user_id", updated.ID))

	result := updated.WithoutPassword()
	return &result, nil
}
