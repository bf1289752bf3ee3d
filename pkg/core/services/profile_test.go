package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfile_Fields(t *testing.T) {
	store := newMemStore()
	actor := refugeeActor()
	user := *actor
	user.Password = "secret"
	store.users = []model.User{user}

	age := 35
	updated, err := UpdateProfile(context.Background(), store, zap.NewNop(), actor, ProfileUpdate{
		Contact: strPtr("+91 98765 99999"),
		Age:     &age,
		Needs:   strPtr("Medical assistance"),
	})
	require.NoError(t, err)

	assert.Equal(t, "+91 98765 99999", updated.Contact)
	assert.Equal(t, 35, updated.Age)
	assert.Equal(t, "Medical assistance", updated.Needs)
	assert.Empty(t, updated.Password)

	// The directory keeps the password through the update
	assert.Equal(t, "secret", store.users[0].Password)
	// The session record follows the profile
	require.NotNil(t, store.session)
	assert.Equal(t, "+91 98765 99999", store.session.Contact)
}

func TestUpdateProfile_RenameRefreshesCachedNames(t *testing.T) {
	store := newMemStore()
	actor := volunteerActor()
	store.users = []model.User{*actor}
	store.reservations = map[string]model.Reservation{
		actor.ID: {CampID: 1, CampName: "Community Hall", UserName: "Bob"},
	}
	store.assignments = []model.Assignment{
		{ID: "a-1", VolunteerID: actor.ID, VolunteerName: "Bob", CampID: 1},
		{ID: "a-2", VolunteerID: "someone-else", VolunteerName: "Bob", CampID: 1},
	}

	_, err := UpdateProfile(context.Background(), store, zap.NewNop(), actor, ProfileUpdate{
		Name: strPtr("Robert"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Robert", store.users[0].Name)
	assert.Equal(t, "Robert", store.reservations[actor.ID].UserName)
	assert.Equal(t, "Robert", store.assignments[0].VolunteerName)
	// The namesake's record is untouched
	assert.Equal(t, "Bob", store.assignments[1].VolunteerName)
}

func TestUpdateProfile_UnknownAccount(t *testing.T) {
	store := newMemStore()

	_, err := UpdateProfile(context.Background(), store, zap.NewNop(), refugeeActor(), ProfileUpdate{
		Contact: strPtr("+91 98765 99999"),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_Unauthorized(t *testing.T) {
	store := newMemStore()

	_, err := UpdateProfile(context.Background(), store, zap.NewNop(), nil, ProfileUpdate{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestOverview(t *testing.T) {
	store := newMemStore()
	store.users = []model.User{*refugeeActor(), *volunteerActor(), *adminActor()}
	store.camps = []model.Camp{testCamp(1, 20, "A"), testCamp(2, 5, "B")}
	store.camps[0].Beds = 18 // two beds taken
	store.reservations = map[string]model.Reservation{
		"u-1": {CampID: 1},
		"u-2": {CampID: 1},
	}
	store.assignments = []model.Assignment{{ID: "a-1"}}

	result, err := Overview(context.Background(), store, zap.NewNop(), adminActor())
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalUsers)
	assert.Equal(t, 1, result.Refugees)
	assert.Equal(t, 1, result.Volunteers)
	assert.Equal(t, 1, result.Admins)
	assert.Equal(t, 2, result.TotalCamps)
	assert.Equal(t, 23, result.BedsFree)
	assert.Equal(t, 25, result.BedsTotal)
	assert.Equal(t, 2, result.Reservations)
	assert.Equal(t, 1, result.Assignments)
}

func TestOverview_NonAdminForbidden(t *testing.T) {
	store := newMemStore()

	_, err := Overview(context.Background(), store, zap.NewNop(), refugeeActor())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
