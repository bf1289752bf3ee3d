package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/db"
)

// Login authenticates an account and stores it as the session record. The
// comparison is a plaintext exact match; hardening credentials is out of
// scope for this system.
func Login(ctx context.Context, store db.Store, logger *zap.Logger, email, password string) (*model.User, error) {
	logger.Info("Login attempt", zap.String("email", email))

	var signedIn model.User
	err := store.Update(ctx, func(tx db.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}

		user := findUserByEmail(users, email)
		if user == nil || user.Password != password {
			return ErrInvalidCredentials
		}

		signedIn = user.WithoutPassword()
		return tx.SetSession(user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Login successful",
		zap.String("user_id", signedIn.ID),
		zap.String("role", string(signedIn.Role)))
	return &signedIn, nil
}

// Logout clears the session record. Logging out with no session is a no-op.
func Logout(ctx context.Context, store db.Store, logger *zap.Logger) error {
	err := store.Update(ctx, func(tx db.Tx) error {
		return tx.SetSession(nil)
	})
	if err != nil {
		return err
	}

	logger.Info("Logged out")
	return nil
}

// CurrentUser loads the session record. Returns ErrUnauthorized when no
// account is signed in.
func CurrentUser(ctx context.Context, store db.Store) (*model.User, error) {
	var user *model.User
	err := store.View(ctx, func(tx db.Tx) error {
		var err error
		user, err = tx.Session()
		return err
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}
