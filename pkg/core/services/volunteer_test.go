package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
)

func TestVolunteer_Success(t *testing.T) {
	store := newMemStore()
	store.camps = []model.Camp{testCamp(1, 24, "Central School Grounds")}
	actor := volunteerActor()

	assignment, err := Volunteer(context.Background(), store, zap.NewNop(), actor, 1)
	require.NoError(t, err)

	assert.NotEmpty(t, assignment.ID)
	assert.Equal(t, actor.ID, assignment.VolunteerID)
	assert.Equal(t, "Bob", assignment.VolunteerName)
	assert.Equal(t, 1, assignment.CampID)
	assert.Equal(t, "Central School Grounds", assignment.CampName)
	assert.NotEmpty(t, assignment.Date)

	require.Len(t, store.assignments, 1)
	require.Len(t, store.activities, 1)
	assert.Equal(t, model.ActivityVolunteerAssignment, store.activities[0].Type)

	// Volunteering does not touch bed counts
	assert.Equal(t, 24, store.camps[0].Beds)
}

func TestVolunteer_AppendOnly(t *testing.T) {
	store := newMemStore()
	store.camps = []model.Camp{testCamp(1, 24, "Central School Grounds")}
	actor := volunteerActor()

	// Volunteering twice at the same camp appends two records
	_, err := Volunteer(context.Background(), store, zap.NewNop(), actor, 1)
	require.NoError(t, err)
	_, err = Volunteer(context.Background(), store, zap.NewNop(), actor, 1)
	require.NoError(t, err)

	assert.Len(t, store.assignments, 2)
}

func TestVolunteer_CampNotFound(t *testing.T) {
	store := newMemStore()

	_, err := Volunteer(context.Background(), store, zap.NewNop(), volunteerActor(), 42)
	assert.ErrorIs(t, err, ErrCampNotFound)
	assert.Empty(t, store.assignments)
}

func TestVolunteer_RefugeeForbidden(t *testing.T) {
	store := newMemStore()
	store.camps = []model.Camp{testCamp(1, 24, "Central School Grounds")}

	_, err := Volunteer(context.Background(), store, zap.NewNop(), refugeeActor(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListAssignments_FiltersByAccountID(t *testing.T) {
	store := newMemStore()
	actor := volunteerActor()
	store.assignments = []model.Assignment{
		{ID: "a-1", VolunteerID: actor.ID, VolunteerName: "Bob", CampName: "A"},
		{ID: "a-2", VolunteerID: "someone-else", VolunteerName: "Bob", CampName: "B"},
		{ID: "a-3", VolunteerID: actor.ID, VolunteerName: "Bob", CampName: "C"},
	}

	history, err := ListAssignments(context.Background(), store, zap.NewNop(), actor)
	require.NoError(t, err)

	// Matched by id, so the namesake's record is excluded
	require.Len(t, history, 2)
	assert.Equal(t, "a-1", history[0].ID)
	assert.Equal(t, "a-3", history[1].ID)
}
