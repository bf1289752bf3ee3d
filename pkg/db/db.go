// Package db provides typed access to the application registries stored as
// JSON documents in the underlying document store: the user directory, camp
// registry, reservation ledger, assignment log, activity log and session
// state.
package db

import (
	"context"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/storage"
)

// Storage keys. One JSON document lives under each.
const (
	keyCurrentUser          = "currentUser"
	keyRegisteredUsers      = "registeredUsers"
	keyCamps                = "camps"
	keyCampSelections       = "campSelections"
	keyVolunteerAssignments = "volunteerAssignments"
	keyAdminActivities      = "adminActivities"
)

// DB provides registry operations over the document store.
type DB struct {
	store *storage.Store
}

// NewDB creates a new database instance.
func NewDB(store *storage.Store) *DB {
	return &DB{store: store}
}

// Update runs fn in a read-write transaction.
func (db *DB) Update(ctx context.Context, fn func(Tx) error) error {
	return db.store.Update(ctx, func(tx *storage.Tx) error {
		return fn(&registryTx{tx: tx})
	})
}

// View runs fn in a read-only transaction.
func (db *DB) View(ctx context.Context, fn func(Tx) error) error {
	return db.store.View(ctx, func(tx *storage.Tx) error {
		return fn(&registryTx{tx: tx})
	})
}

// registryTx adapts a storage transaction to the typed Tx interface.
type registryTx struct {
	tx *storage.Tx
}

func (t *registryTx) Users() ([]model.User, error) {
	users, _, err := storage.GetDoc[[]model.User](t.tx, keyRegisteredUsers)
	return users, err
}

func (t *registryTx) SetUsers(users []model.User) error {
	return storage.PutDoc(t.tx, keyRegisteredUsers, users)
}

func (t *registryTx) Camps() ([]model.Camp, error) {
	camps, _, err := storage.GetDoc[[]model.Camp](t.tx, keyCamps)
	return camps, err
}

func (t *registryTx) SetCamps(camps []model.Camp) error {
	return storage.PutDoc(t.tx, keyCamps, camps)
}

func (t *registryTx) HasCamps() (bool, error) {
	_, ok, err := t.tx.Get(keyCamps)
	return ok, err
}

func (t *registryTx) Reservations() (map[string]model.Reservation, error) {
	reservations, ok, err := storage.GetDoc[map[string]model.Reservation](t.tx, keyCampSelections)
	if err != nil {
		return nil, err
	}
	if !ok || reservations == nil {
		reservations = make(map[string]model.Reservation)
	}
	return reservations, nil
}

func (t *registryTx) SetReservations(reservations map[string]model.Reservation) error {
	return storage.PutDoc(t.tx, keyCampSelections, reservations)
}

func (t *registryTx) Assignments() ([]model.Assignment, error) {
	assignments, _, err := storage.GetDoc[[]model.Assignment](t.tx, keyVolunteerAssignments)
	return assignments, err
}

func (t *registryTx) SetAssignments(assignments []model.Assignment) error {
	return storage.PutDoc(t.tx, keyVolunteerAssignments, assignments)
}

func (t *registryTx) Activities() ([]model.Activity, error) {
	activities, _, err := storage.GetDoc[[]model.Activity](t.tx, keyAdminActivities)
	return activities, err
}

func (t *registryTx) SetActivities(activities []model.Activity) error {
	return storage.PutDoc(t.tx, keyAdminActivities, activities)
}

func (t *registryTx) Session() (*model.User, error) {
	user, ok, err := storage.GetDoc[model.User](t.tx, keyCurrentUser)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (t *registryTx) SetSession(user *model.User) error {
	if user == nil {
		return t.tx.Delete(keyCurrentUser)
	}
	return storage.PutDoc(t.tx, keyCurrentUser, user.WithoutPassword())
}
