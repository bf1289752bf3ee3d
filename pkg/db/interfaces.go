package db

import (
	"context"

	"github.com/jakechorley/floodcamp/pkg/core/model"
)

// Tx exposes the registries inside a single transaction. Everything read and
// written through one Tx commits or rolls back together.
type Tx interface {
	// Users returns the registered accounts, passwords included.
	Users() ([]model.User, error)
	SetUsers(users []model.User) error

	// Camps returns the camp directory.
	Camps() ([]model.Camp, error)
	SetCamps(camps []model.Camp) error
	// HasCamps reports whether the camp document has ever been written,
	// which is distinct from the directory being empty.
	HasCamps() (bool, error)

	// Reservations maps account ID to the account's active reservation.
	Reservations() (map[string]model.Reservation, error)
	SetReservations(reservations map[string]model.Reservation) error

	Assignments() ([]model.Assignment, error)
	SetAssignments(assignments []model.Assignment) error

	// Activities is newest-first and capped by the writer.
	Activities() ([]model.Activity, error)
	SetActivities(activities []model.Activity) error

	// Session returns the current account record, or nil when logged out.
	Session() (*model.User, error)
	SetSession(user *model.User) error
}

// Store runs functions against the registries transactionally.
type Store interface {
	Update(ctx context.Context, fn func(Tx) error) error
	View(ctx context.Context, fn func(Tx) error) error
}
