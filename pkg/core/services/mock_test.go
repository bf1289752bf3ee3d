package services

import (
	"context"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// memStore is an in-memory test double for db.Store. Update stages a copy of
// the state and commits it only when fn succeeds, mirroring the transactional
// behavior of the real store.
type memStore struct {
	users        []model.User
	camps        []model.Camp
	hasCamps     bool
	reservations map[string]model.Reservation
	assignments  []model.Assignment
	activities   []model.Activity
	session      *model.User

	usersErr           error
	campsErr           error
	setUsersErr        error
	setCampsErr        error
	setReservationsErr error
	setAssignmentsErr  error
	setActivitiesErr   error
	setSessionErr      error
}

func newMemStore() *memStore {
	return &memStore{reservations: make(map[string]model.Reservation)}
}

func (s *memStore) snapshot() *memTx {
	tx := &memTx{store: s}
	tx.users = append([]model.User(nil), s.users...)
	tx.camps = append([]model.Camp(nil), s.camps...)
	tx.hasCamps = s.hasCamps
	tx.reservations = make(map[string]model.Reservation, len(s.reservations))
	for k, v := range s.reservations {
		tx.reservations[k] = v
	}
	tx.assignments = append([]model.Assignment(nil), s.assignments...)
	tx.activities = append([]model.Activity(nil), s.activities...)
	if s.session != nil {
		session := *s.session
		tx.session = &session
	}
	return tx
}

func (s *memStore) Update(ctx context.Context, fn func(db.Tx) error) error {
	tx := s.snapshot()
	if err := fn(tx); err != nil {
		return err
	}

	s.users = tx.users
	s.camps = tx.camps
	s.hasCamps = tx.hasCamps
	s.reservations = tx.reservations
	s.assignments = tx.assignments
	s.activities = tx.activities
	s.session = tx.session
	return nil
}

func (s *memStore) View(ctx context.Context, fn func(db.Tx) error) error {
	return fn(s.snapshot())
}

type memTx struct {
	store        *memStore
	users        []model.User
	camps        []model.Camp
	hasCamps     bool
	reservations map[string]model.Reservation
	assignments  []model.Assignment
	activities   []model.Activity
	session      *model.User
}

func (t *memTx) Users() ([]model.User, error) {
	if t.store.usersErr != nil {
		return nil, t.store.usersErr
	}
	return t.users, nil
}

func (t *memTx) SetUsers(users []model.User) error {
	if t.store.setUsersErr != nil {
		return t.store.setUsersErr
	}
	t.users = users
	return nil
}

func (t *memTx) Camps() ([]model.Camp, error) {
	if t.store.campsErr != nil {
		return nil, t.store.campsErr
	}
	return t.camps, nil
}

func (t *memTx) SetCamps(camps []model.Camp) error {
	if t.store.setCampsErr != nil {
		return t.store.setCampsErr
	}
	t.camps = camps
	t.hasCamps = true
	return nil
}

func (t *memTx) HasCamps() (bool, error) {
	return t.hasCamps, nil
}

func (t *memTx) Reservations() (map[string]model.Reservation, error) {
	return t.reservations, nil
}

func (t *memTx) SetReservations(reservations map[string]model.Reservation) error {
	if t.store.setReservationsErr != nil {
		return t.store.setReservationsErr
	}
	t.reservations = reservations
	return nil
}

func (t *memTx) Assignments() ([]model.Assignment, error) {
	return t.assignments, nil
}

func (t *memTx) SetAssignments(assignments []model.Assignment) error {
	if t.store.setAssignmentsErr != nil {
		return t.store.setAssignmentsErr
	}
	t.assignments = assignments
	return nil
}

func (t *memTx) Activities() ([]model.Activity, error) {
	return t.activities, nil
}

func (t *memTx) SetActivities(activities []model.Activity) error {
	if t.store.setActivitiesErr != nil {
		return t.store.setActivitiesErr
	}
	t.activities = activities
	return nil
}

func (t *memTx) Session() (*model.User, error) {
	return t.session, nil
}

func (t *memTx) SetSession(user *model.User) error {
	if t.store.setSessionErr != nil {
		return t.store.setSessionErr
	}
	if user == nil {
		t.session = nil
		return nil
	}
	session := user.WithoutPassword()
	t.session = &session
	return nil
}

// Shared fixtures

func refugeeActor() *model.User {
	return &model.User{
		ID:      "refugee-1",
		Name:    "Alice",
		Email:   "alice@example.com",
		Role:    model.RoleRefugee,
		Contact: "+91 98765 00001",
	}
}

func volunteerActor() *model.User {
	return &model.User{
		ID:      "volunteer-1",
		Name:    "Bob",
		Email:   "bob@example.com",
		Role:    model.RoleVolunteer,
		Contact: "+91 98765 00002",
	}
}

func adminActor() *model.User {
	return &model.User{
		ID:      "admin-1",
		Name:    "Carol",
		Email:   "carol@example.com",
		Role:    model.RoleAdmin,
		Contact: "+91 98765 00003",
	}
}

func testCamp(id, beds int, name string) model.Camp {
	return model.Camp{
		ID:           id,
		Name:         name,
		Beds:         beds,
		OriginalBeds: beds,
		Resources:    []string{"Food", "Water"},
		Contact:      "+91 98765 43210",
		Ambulance:    "Yes",
		Type:         model.CampDefault,
	}
}
