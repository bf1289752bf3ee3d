package db

import (
	"context"

	"github.com/jakechorley/floodcamp/pkg/core/model"
)

// DefaultCamps returns the three fixed camps seeded on first access.
func DefaultCamps() []model.Camp {
	return []model.Camp{
		{
			ID:           1,
			Name:         "Central School Grounds",
			Beds:         24,
			OriginalBeds: 24,
			Resources:    []string{"Food", "Water", "Medical Aid", "Blankets"},
			Contact:      "+91 98765 43210",
			Ambulance:    "Yes",
			Type:         model.CampDefault,
		},
		{
			ID:           2,
			Name:         "Community Hall",
			Beds:         12,
			OriginalBeds: 12,
			Resources:    []string{"Food", "Water", "Blankets", "Clothing"},
			Contact:      "+91 98765 11223",
			Ambulance:    "Nearby",
			Type:         model.CampDefault,
		},
		{
			ID:           3,
			Name:         "Government High School",
			Beds:         30,
			OriginalBeds: 30,
			Resources:    []string{"Food", "Water", "First Aid", "Hygiene Kits"},
			Contact:      "+91 98765 77889",
			Ambulance:    "Yes",
			Type:         model.CampDefault,
		},
	}
}

// EnsureDefaultCamps seeds the camp registry with the default camps if the
// registry has never been written. An empty registry left behind by deletes is
// not reseeded.
func EnsureDefaultCamps(ctx context.Context, store Store) error {
	return store.Update(ctx, func(tx Tx) error {
		ok, err := tx.HasCamps()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		return tx.SetCamps(DefaultCamps())
	})
}
