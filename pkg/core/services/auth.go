package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RegisterInput is the input for registering a new account
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthStore defines the store operations needed for registration and login
type AuthStore interface {
	InsertUser(user model.User) error
	GetUser(email string) (model.User, error)
}

// Register creates a new user with an empty profile and empty history.
// Returns a ValidationError for malformed input and store.ErrConflict when
// the email is already registered.
func Register(database AuthStore, logger *zap.Logger, input RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return asValidationError(err)
	}

	user := model.User{
		Email:    input.Email,
		Password: input.Password,
	}

	if err := database.InsertUser(user); err != nil {
		return fmt.Errorf("failed to register %s: %w", input.Email, err)
	}

	logger.Info("User registered", zap.String("email", input.Email))
	return nil
}

// LoginInput is the input for checking credentials
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks the credential pair against the stored user. A missing user
// and a wrong password are both reported as ErrUnauthorized so the caller
// cannot distinguish them.
func Login(database AuthStore, logger *zap.Logger, input LoginInput) error {
	if err := validate.Struct(input); err != nil {
		return asValidationError(err)
	}

	user, err := database.GetUser(input.Email)
	if err != nil {
		logger.Debug("Login failed, unknown email", zap.String("email", input.Email))
		return ErrUnauthorized
	}

	// Passwords are stored and compared as given
	if user.Password != input.Password {
		logger.Debug("Login failed, password mismatch", zap.String("email", input.Email))
		return ErrUnauthorized
	}

	logger.Info("User logged in", zap.String("email", input.Email))
	return nil
}
