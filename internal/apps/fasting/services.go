package fasting

import (
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/settings"
	"gorm.io/gorm"
)

type FastingService struct {
	entryService    *entries.EntryService
	settingsService *settings.SettingsService
}

func NewFastingService(db *gorm.DB) *FastingService {
	return &FastingService{
		entryService:    entries.NewEntryService(db),
		settingsService: settings.NewSettingsService(db),
	}
}

type StatusResponse struct {
	Fast     Status   `json:"fast"`
	BioPhase BioPhase `json:"bio_phase"`
}

// GetStatus derives the live fasting state and bio-phase for the user.
func (s *FastingService) GetStatus(userID uuid.UUID, now time.Time) (*StatusResponse, error) {
	profile, err := s.settingsService.Get(userID)
	if err != nil {
		return nil, err
	}

	list, err := s.entryService.GetAll(userID)
	if err != nil {
		return nil, err
	}

	return &StatusResponse{
		Fast:     Derive(entries.LatestMeal(list), profile.GoalHours(), now),
		BioPhase: CurrentBioPhase(now),
	}, nil
}
