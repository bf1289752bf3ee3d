package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

func TestRecordActivity_NewestFirst(t *testing.T) {
	store := newMemStore()

	err := store.Update(context.Background(), func(tx db.Tx) error {
		if err := recordActivity(tx, model.ActivityCampCreated, "first", "admin"); err != nil {
			return err
		}
		return recordActivity(tx, model.ActivityCampDeleted, "second", "admin")
	})
	require.NoError(t, err)

	require.Len(t, store.activities, 2)
	assert.Equal(t, "second", store.activities[0].Description)
	assert.Equal(t, "first", store.activities[1].Description)
	assert.NotEqual(t, store.activities[0].ID, store.activities[1].ID)
}

func TestRecordActivity_CapAt100(t *testing.T) {
	store := newMemStore()

	err := store.Update(context.Background(), func(tx db.Tx) error {
		for i := 1; i <= 105; i++ {
			if err := recordActivity(tx, model.ActivityCampSelection, fmt.Sprintf("entry %d", i), ""); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	require.Len(t, store.activities, model.MaxActivities)
	// Newest first; the oldest five were evicted
	assert.Equal(t, "entry 105", store.activities[0].Description)
	assert.Equal(t, "entry 6", store.activities[99].Description)
}

func TestListActivities(t *testing.T) {
	store := newMemStore()
	store.activities = []model.Activity{
		{ID: "act-1", Type: model.ActivityUserRegistration, Description: "registered"},
	}

	activities, err := ListActivities(context.Background(), store, zap.NewNop(), adminActor())
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestListActivities_NonAdminForbidden(t *testing.T) {
	store := newMemStore()

	_, err := ListActivities(context.Background(), store, zap.NewNop(), volunteerActor())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = ListActivities(context.Background(), store, zap.NewNop(), nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
