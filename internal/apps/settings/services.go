package settings

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsService is the single owner of the per-user profile document.
// Every write path (merge patch, full replace, trophy unlock persistence)
// goes through it so callers always see a consistent document.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the user's profile, creating it lazily on first read.
func (s *SettingsService) Get(userID uuid.UUID) (*Profile, error) {
	var profile Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = Profile{
			ID:                   uuid.New(),
			UserID:               userID,
			FastingGoal:          DefaultFastingGoal,
			Level:                1,
			UnlockedAchievements: []string{},
		}
		if createErr := s.db.Create(&profile).Error; createErr != nil {
			return nil, fmt.Errorf("failed to create profile: %w", createErr)
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update merges the provided fields into the profile, field by field.
func (s *SettingsService) Update(userID uuid.UUID, req UpdateSettingsRequest) (*Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.FastingGoal != nil {
		profile.FastingGoal = normalizeGoal(*req.FastingGoal)
	}
	if req.FitnessGoal != nil {
		profile.FitnessGoal = *req.FitnessGoal
	}
	if req.DietGoal != nil {
		profile.DietGoal = *req.DietGoal
	}
	if req.DietaryPreferences != nil {
		profile.DietaryPreferences = *req.DietaryPreferences
	}
	if req.MonthlyBudget != nil {
		profile.MonthlyBudget = *req.MonthlyBudget
	}
	if req.ActiveDetox != nil {
		profile.ActiveDetox = *req.ActiveDetox
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// Replace rewrites the whole document. Gamification fields are preserved;
// they belong to the trophies evaluator.
func (s *SettingsService) Replace(userID uuid.UUID, req ReplaceSettingsRequest) (*Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	profile.DisplayName = req.DisplayName
	profile.Age = req.Age
	profile.Weight = req.Weight
	profile.Height = req.Height
	profile.Gender = req.Gender
	profile.ActivityLevel = req.ActivityLevel
	profile.FastingGoal = normalizeGoal(req.FastingGoal)
	profile.FitnessGoal = req.FitnessGoal
	profile.DietGoal = req.DietGoal
	profile.DietaryPreferences = req.DietaryPreferences
	profile.MonthlyBudget = req.MonthlyBudget
	profile.ActiveDetox = req.ActiveDetox

	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to replace profile: %w", err)
	}
	return profile, nil
}

// RecordUnlocks appends newly unlocked achievement ids and the resulting
// xp/level in one combined write.
func (s *SettingsService) RecordUnlocks(userID uuid.UUID, newIDs []string, xp, level int) (*Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	unlocked := profile.UnlockedAchievements
	for _, id := range newIDs {
		if !contains(unlocked, id) {
			unlocked = append(unlocked, id)
		}
	}
	profile.UnlockedAchievements = unlocked
	profile.XP = xp
	profile.Level = level

	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to persist unlocks: %w", err)
	}
	return profile, nil
}

func normalizeGoal(goal int) int {
	if goal <= 0 {
		return DefaultFastingGoal
	}
	return goal
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
