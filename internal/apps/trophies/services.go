package trophies

import (
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/settings"
	"gorm.io/gorm"
)

// XP needed per level.
const xpPerLevel = 100

type TrophyService struct {
	entryService    *entries.EntryService
	settingsService *settings.SettingsService
}

func NewTrophyService(db *gorm.DB) *TrophyService {
	return &TrophyService{
		entryService:    entries.NewEntryService(db),
		settingsService: settings.NewSettingsService(db),
	}
}

type CatalogItem struct {
	Achievement
	Unlocked bool `json:"unlocked"`
}

type CatalogResponse struct {
	Achievements []CatalogItem `json:"achievements"`
	XP           int           `json:"xp"`
	Level        int           `json:"level"`
}

type EvaluateResponse struct {
	NewUnlocks []Achievement `json:"new_unlocks"`
	// Toast is the single unlock surfaced to the UI when several unlock in
	// one pass; all of them are persisted regardless.
	Toast *Achievement `json:"toast,omitempty"`
	XP    int          `json:"xp"`
	Level int          `json:"level"`
}

// GetCatalog returns the static catalog flagged with the user's unlocks.
func (s *TrophyService) GetCatalog(userID uuid.UUID) (*CatalogResponse, error) {
	profile, err := s.settingsService.Get(userID)
	if err != nil {
		return nil, err
	}

	unlocked := make(map[string]bool, len(profile.UnlockedAchievements))
	for _, id := range profile.UnlockedAchievements {
		unlocked[id] = true
	}

	items := make([]CatalogItem, 0, len(Catalog))
	for _, a := range Catalog {
		items = append(items, CatalogItem{Achievement: a, Unlocked: unlocked[a.ID]})
	}

	return &CatalogResponse{
		Achievements: items,
		XP:           profile.XP,
		Level:        profile.Level,
	}, nil
}

// Evaluate re-scans the catalog against the entry log. Already-unlocked
// achievements are never re-evaluated, so unlocks are monotonic. All new
// unlocks are persisted in one combined settings write.
func (s *TrophyService) Evaluate(userID uuid.UUID, now time.Time) (*EvaluateResponse, error) {
	profile, err := s.settingsService.Get(userID)
	if err != nil {
		return nil, err
	}

	list, err := s.entryService.GetAll(userID)
	if err != nil {
		return nil, err
	}

	newUnlocks := EvaluateCatalog(list, profile.UnlockedAchievements, now)
	if len(newUnlocks) == 0 {
		return &EvaluateResponse{
			NewUnlocks: []Achievement{},
			XP:         profile.XP,
			Level:      profile.Level,
		}, nil
	}

	xp := profile.XP
	ids := make([]string, 0, len(newUnlocks))
	for _, a := range newUnlocks {
		xp += a.Points
		ids = append(ids, a.ID)
	}
	level := xp/xpPerLevel + 1

	if _, err := s.settingsService.RecordUnlocks(userID, ids, xp, level); err != nil {
		return nil, err
	}

	toast := newUnlocks[len(newUnlocks)-1]
	return &EvaluateResponse{
		NewUnlocks: newUnlocks,
		Toast:      &toast,
		XP:         xp,
		Level:      level,
	}, nil
}

// EvaluateCatalog runs every predicate not already unlocked and returns the
// newly-true achievements in catalog order.
func EvaluateCatalog(list []entries.Entry, unlockedIDs []string, now time.Time) []Achievement {
	unlocked := make(map[string]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	ctx := EvalContext{
		Entries:      list,
		MaxFastHours: entries.MaxFastHours(list),
		Now:          now,
	}

	var newUnlocks []Achievement
	for _, a := range Catalog {
		if unlocked[a.ID] {
			continue
		}
		check, ok := predicates[a.ID]
		if !ok {
			continue
		}
		if check(ctx) {
			newUnlocks = append(newUnlocks, a)
		}
	}
	return newUnlocks
}
