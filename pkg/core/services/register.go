package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RegisterInput carries the registration form fields. Address and Needs are
// required for refugees, Skills and Availability for volunteers.
type RegisterInput struct {
	Name         string     `validate:"required"`
	Age          int        `validate:"required,gt=0"`
	Email        string     `validate:"required,email"`
	Contact      string     `validate:"required"`
	Password     string     `validate:"required"`
	Role         model.Role `validate:"required"`
	Address      string
	Needs        string
	Skills       string
	Availability string
}

// validateRegistration checks the role-specific field requirements shared by
// self-service registration and admin-created accounts.
func validateRegistration(input RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("registration validation failed: %w", err)
	}

	switch input.Role {
	case model.RoleRefugee:
		if input.Address == "" || input.Needs == "" {
			return fmt.Errorf("refugee registration requires address and needs")
		}
	case model.RoleVolunteer:
		if input.Skills == "" || input.Availability == "" {
			return fmt.Errorf("volunteer registration requires skills and availability")
		}
		if input.Age < 18 {
			return fmt.Errorf("volunteers must be at least 18 years old")
		}
	default:
		return fmt.Errorf("invalid role %q", input.Role)
	}

	return nil
}

// newUser builds the account record for a validated registration.
func newUser(input RegisterInput) model.User {
	return model.User{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Email:            input.Email,
		Role:             input.Role,
		Contact:          input.Contact,
		Age:              input.Age,
		Address:          input.Address,
		Needs:            input.Needs,
		Skills:           input.Skills,
		Availability:     input.Availability,
		Password:         input.Password,
		RegistrationDate: model.Timestamp(time.Now()),
	}
}

// Register creates an account for a refugee or volunteer and signs it in.
// Fails with ErrDuplicateEmail if the email is already registered.
func Register(ctx context.Context, store db.Store, logger *zap.Logger, input RegisterInput) (*model.User, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	logger.Info("Registering account",
		zap.String("email", input.Email),
		zap.String("role", string(input.Role)))

	user := newUser(input)

	err := store.Update(ctx, func(tx db.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}

		if findUserByEmail(users, input.Email) != nil {
			return ErrDuplicateEmail
		}

		if err := tx.SetUsers(append(users, user)); err != nil {
			return err
		}

		description := fmt.Sprintf("New %s %q registered", user.Role, user.Name)
		if err := recordActivity(tx, model.ActivityUserRegistration, description, user.Name); err != nil {
			return err
		}

		return tx.SetSession(&user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Account registered", zap.String("user_id", user.ID))

	signedIn := user.WithoutPassword()
	return &signedIn, nil
}
