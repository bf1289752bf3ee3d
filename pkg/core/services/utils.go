package services

import (
	"github.com/jakechorley/floodcamp/pkg/core/model"
)

// requireUser guards operations that need an authenticated account.
func requireUser(actor *model.User) error {
	if actor == nil {
		return ErrUnauthorized
	}
	return nil
}

// requireRole guards operations restricted to specific roles.
func requireRole(actor *model.User, roles ...model.Role) error {
	if actor == nil {
		return ErrUnauthorized
	}
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return ErrUnauthorized
}

// findCamp returns the camp with the given id, or nil.
func findCamp(camps []model.Camp, id int) *model.Camp {
	for i := range camps {
		if camps[i].ID == id {
			return &camps[i]
		}
	}
	return nil
}

// findUserByEmail returns the account with the given email, or nil.
func findUserByEmail(users []model.User, email string) *model.User {
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}

// nextCampID assigns camp ids: max existing id + 1, or 1 if the registry is
// empty.
func nextCampID(camps []model.Camp) int {
	maxID := 0
	for _, camp := range camps {
		if camp.ID > maxID {
			maxID = camp.ID
		}
	}
	return maxID + 1
}
