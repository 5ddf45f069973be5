package services

import (
	"context"

	"github.com/presensi-app/presensi-backend/internal/core/domain"
	"github.com/presensi-app/presensi-backend/internal/dto"
)

// UserReaderSvc defines read operations for user accounts.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user accounts.
type UserWriterSvc interface {
	// RegisterUser creates a new account with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// AuthenticatorSvc verifies credentials for login.
type AuthenticatorSvc interface {
	// Authenticate verifies the email/password pair and returns the user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
