package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// OverviewResult summarises the system for the admin console.
type OverviewResult struct {
	TotalUsers   int
	Refugees     int
	Volunteers   int
	Admins       int
	TotalCamps   int
	BedsFree     int
	BedsTotal    int
	Reservations int
	Assignments  int
}

// Overview reports registry counts and bed occupancy. Admin only.
func Overview(ctx context.Context, store db.Store, logger *zap.Logger, actor *model.User) (*OverviewResult, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}

	var result OverviewResult
	err := store.View(ctx, func(tx db.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		result.TotalUsers = len(users)
		for _, user := range users {
			switch user.Role {
			case model.RoleRefugee:
				result.Refugees++
			case model.RoleVolunteer:
				result.Volunteers++
			case model.RoleAdmin:
				result.Admins++
			}
		}

		camps, err := tx.Camps()
		if err != nil {
			return err
		}
		result.TotalCamps = len(camps)
		for _, camp := range camps {
			result.BedsFree += camp.Beds
			result.BedsTotal += camp.OriginalBeds
		}

		reservations, err := tx.Reservations()
		if err != nil {
			return err
		}
		result.Reservations = len(reservations)

		assignments, err := tx.Assignments()
		if err != nil {
			return err
		}
		result.Assignments = len(assignments)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Computed overview",
		zap.Int("users", result.TotalUsers),
		zap.Int("camps", result.TotalCamps))
	return &result, nil
}
