package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

// ProfileInput is the input for replacing a user's profile
type ProfileInput struct {
	FullName     string   `json:"fullName" validate:"required,max=50"`
	Address1     string   `json:"address1" validate:"required,max=100"`
	Address2     string   `json:"address2" validate:"omitempty,max=100"`
	City         string   `json:"city" validate:"required,max=100"`
	State        string   `json:"state" validate:"required,len=2,alpha"`
	Zip          string   `json:"zip" validate:"required,min=5,max=9"`
	Skills       []string `json:"skills" validate:"omitempty,dive,required"`
	Availability []string `json:"availability" validate:"omitempty"`
}

// ProfileStore defines the store operations needed for profile management
type ProfileStore interface {
	GetUser(email string) (model.User, error)
	UpdateProfile(email string, profile model.Profile) error
}

// GetProfile returns the user's profile, possibly empty
func GetProfile(database ProfileStore, email string) (model.Profile, error) {
	user, err := database.GetUser(email)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile for %s: %w", email, err)
	}
	return user.Profile, nil
}

// UpdateProfile validates the input and replaces the user's profile
// wholesale. Availability entries must parse as "YYYY-MM-DD to YYYY-MM-DD"
// range strings.
func UpdateProfile(database ProfileStore, logger *zap.Logger, email string, input ProfileInput) error {
	if err := validate.Struct(input); err != nil {
		return asValidationError(err)
	}

	for _, rangeStr := range input.Availability {
		if _, err := model.ParseDateRange(rangeStr); err != nil {
			return newValidationError("availability", fmt.Sprintf("invalid date range %q", rangeStr))
		}
	}

	profile := model.Profile{
		FullName:     input.FullName,
		Address1:     input.Address1,
		Address2:     input.Address2,
		City:         input.City,
		State:        input.State,
		Zip:          input.Zip,
		Skills:       input.Skills,
		Availability: input.Availability,
	}

	if err := database.UpdateProfile(email, profile); err != nil {
		return fmt.Errorf("failed to update profile for %s: %w", email, err)
	}

	logger.Info("Profile updated",
		zap.String("email", email),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("availability_ranges", len(profile.Availability)))
	return nil
}
