package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
)

func refugeeInput() RegisterInput {
	return RegisterInput{
		Name:     "Alice",
		Age:      34,
		Email:    "alice@example.com",
		Contact:  "+91 98765 00001",
		Password: "secret",
		Role:     model.RoleRefugee,
		Address:  "12 Riverside Road",
		Needs:    "Temporary shelter",
	}
}

func volunteerInput() RegisterInput {
	return RegisterInput{
		Name:         "Bob",
		Age:          28,
		Email:        "bob@example.com",
		Contact:      "+91 98765 00002",
		Password:     "secret",
		Role:         model.RoleVolunteer,
		Skills:       "First aid",
		Availability: "Weekends",
	}
}

func TestRegister_Refugee(t *testing.T) {
	store := newMemStore()
	logger := zap.NewNop()
	ctx := context.Background()

	user, err := Register(ctx, store, logger, refugeeInput())
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleRefugee, user.Role)
	assert.NotEmpty(t, user.RegistrationDate)
	// The returned account is the signed-in copy, no password
	assert.Empty(t, user.Password)

	// The directory keeps the credentials
	require.Len(t, store.users, 1)
	assert.Equal(t, "secret", store.users[0].Password)

	// The session is set without the password
	require.NotNil(t, store.session)
	assert.Equal(t, user.ID, store.session.ID)
	assert.Empty(t, store.session.Password)

	// Registration is audited
	require.Len(t, store.activities, 1)
	assert.Equal(t, model.ActivityUserRegistration, store.activities[0].Type)
}

func TestRegister_Volunteer(t *testing.T) {
	store := newMemStore()

	user, err := Register(context.Background(), store, zap.NewNop(), volunteerInput())
	require.NoError(t, err)
	assert.Equal(t, model.RoleVolunteer, user.Role)
	assert.Equal(t, "First aid", user.Skills)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newMemStore()
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := Register(ctx, store, logger, refugeeInput())
	require.NoError(t, err)

	input := refugeeInput()
	input.Name = "Another Alice"
	_, err = Register(ctx, store, logger, input)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, store.users, 1)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"invalid email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"missing password", func(in *RegisterInput) { in.Password = "" }},
		{"missing contact", func(in *RegisterInput) { in.Contact = "" }},
		{"refugee missing address", func(in *RegisterInput) { in.Address = "" }},
		{"refugee missing needs", func(in *RegisterInput) { in.Needs = "" }},
		{"admin role rejected", func(in *RegisterInput) { in.Role = model.RoleAdmin }},
		{"unknown role", func(in *RegisterInput) { in.Role = "coordinator" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			input := refugeeInput()
			tt.mutate(&input)

			_, err := Register(context.Background(), store, zap.NewNop(), input)
			assert.Error(t, err)
			assert.Empty(t, store.users)
		})
	}
}

func TestRegister_UnderageVolunteer(t *testing.T) {
	store := newMemStore()

	input := volunteerInput()
	input.Age = 17
	_, err := Register(context.Background(), store, zap.NewNop(), input)
	assert.ErrorContains(t, err, "18")
	assert.Empty(t, store.users)
}

func TestRegister_VolunteerMissingSkills(t *testing.T) {
	store := newMemStore()

	input := volunteerInput()
	input.Skills = ""
	_, err := Register(context.Background(), store, zap.NewNop(), input)
	assert.Error(t, err)
}
