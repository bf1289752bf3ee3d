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

// AdminListUsers returns every registered account. Admin only.
func AdminListUsers(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User) ([]model.User, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}

	var users []model.User
	err := store.View(ctx, func(tx db.Tx) error {
		var err error
		users, err = tx.Users()
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched registered users", zap.Int("count", len(users)))
	return users, nil
}

// AdminAddUser creates a refugee or volunteer account on behalf of an admin.
// Unlike Register it does not sign the new account in.
func AdminAddUser(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User, input RegisterInput) (*model.User, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	user := newUser(input)

	err := store.Update(ctx, func(tx db.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}

		if findUserByEmail(users, input.Email) != nil {
			return ErrDuplicateEmail
		}

		if err := tx.SetUsers(append(users, user)); err != nil {
			return err
		}

		description := fmt.Sprintf("New %s %q was created by admin", user.Role, user.Name)
		return recordActivity(tx, model.ActivityUserCreated, description, actor.Name)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User created by admin",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	created := user.WithoutPassword()
	return &created, nil
}

// AdminDeleteUser removes an account and cascades: the account's reservation
// is released with its bed restored, and its volunteer assignments are
// removed. Fails with ErrUserNotFound for unknown emails.
func AdminDeleteUser(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User, email string) error {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return err
	}

	err := store.Update(ctx, func(tx db.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}

		user := findUserByEmail(users, email)
		if user == nil {
			return ErrUserNotFound
		}
		deleted := *user

		remaining := make([]model.User, 0, len(users)-1)
		for _, u := range users {
			if u.Email != email {
				remaining = append(remaining, u)
			}
		}
		if err := tx.SetUsers(remaining); err != nil {
			return err
		}

		// Release the reservation and restore its bed
		reservations, err := tx.Reservations()
		if err != nil {
			return err
		}
		if reservation, ok := reservations[deleted.ID]; ok {
			camps, err := tx.Camps()
			if err != nil {
				return err
			}
			if camp := findCamp(camps, reservation.CampID); camp != nil {
				camp.Beds++
				if err := tx.SetCamps(camps); err != nil {
					return err
				}
			}
			delete(reservations, deleted.ID)
			if err := tx.SetReservations(reservations); err != nil {
				return err
			}
		}

		// Drop the account's volunteer history
		assignments, err := tx.Assignments()
		if err != nil {
			return err
		}
		kept := make([]model.Assignment, 0, len(assignments))
		for _, assignment := range assignments {
			if assignment.VolunteerID != deleted.ID {
				kept = append(kept, assignment)
			}
		}
		if err := tx.SetAssignments(kept); err != nil {
			return err
		}

		// If the deleted account is signed in somewhere, sign it out
		session, err := tx.Session()
		if err != nil {
			return err
		}
		if session != nil && session.ID == deleted.ID {
			if err := tx.SetSession(nil); err != nil {
				return err
			}
		}

		description := fmt.Sprintf("User %q (%s) was deleted by admin", deleted.Name, deleted.Role)
		if err := recordActivity(tx, model.ActivityUserDeleted, description, actor.Name); err != nil {
			return err
		}

		logger.Info("User deleted",
			zap.String("user_id", deleted.ID),
			zap.String("email", deleted.Email),
			zap.Int("assignments_removed", len(assignments)-len(kept)))
		return nil
	})
	return err
}

// EnsureAdmin creates the bootstrap admin account if no account with the
// given email exists. Registration never creates admins, so this is the only
// way into the admin console.
func EnsureAdmin(ctx context.Context, store db.Store, logger *zap.Logger, name, email, contact, password string) error {
	return store.Update(ctx, func(tx db.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		if findUserByEmail(users, email) != nil {
			return nil
		}

		admin := model.User{
			ID:               uuid.New().String(),
			Name:             name,
			Email:            email,
			Role:             model.RoleAdmin,
			Contact:          contact,
			Password:         password,
			RegistrationDate: model.Timestamp(time.Now()),
		}

		logger.Info("Creating bootstrap admin account", zap.String("email", email))
		return tx.SetUsers(append(users, admin))
	})
}
