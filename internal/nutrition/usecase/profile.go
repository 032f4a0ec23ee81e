package usecase

import (
	"context"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
)

// SaveProfile stores the profile wholesale under the given or minted user
// id. Missing health fields get the neutral defaults so downstream prompts
// never see empty values.
func (uc *implUseCase) SaveProfile(ctx context.Context, input nutrition.SaveProfileInput) (string, error) {
	userID := input.UserID
	if userID == "" {
		userID = uc.store.NewUserID()
	}

	profile := input.Profile
	if profile.HealthCondition == "" {
		profile.HealthCondition = nutrition.DefaultHealthCondition
	}
	if profile.TargetCalories == 0 {
		profile.TargetCalories = nutrition.DefaultTargetCalories
	}
	if profile.ActivityLevel == "" {
		profile.ActivityLevel = nutrition.DefaultActivityLevel
	}

	uc.store.SaveProfile(userID, profile)
	uc.l.Infof(ctx, "SaveProfile: stored profile for user %s", userID)

	return userID, nil
}

// GetProfile returns the stored profile for the user id.
func (uc *implUseCase) GetProfile(ctx context.Context, userID string) (model.UserProfile, error) {
	profile, ok := uc.store.Profile(userID)
	if !ok {
		return model.UserProfile{}, nutrition.ErrProfileNotFound
	}
	return profile, nil
}
