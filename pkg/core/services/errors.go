package services

import "errors"

// Every failure below is terminal for the invocation that hit it; there is no
// retry anywhere in the system.
var (
	ErrAlreadyReserved    = errors.New("account already holds a camp reservation")
	ErrCampFull           = errors.New("camp has no beds available")
	ErrNoReservation      = errors.New("account holds no camp reservation")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("operation not permitted for this account")
	ErrCampNotFound       = errors.New("camp not found")
	ErrUserNotFound       = errors.New("user not found")
)
