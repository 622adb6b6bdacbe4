package coach

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/fasting"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/settings"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrMissingAPIKey = errors.New("AI API key is not configured")
	ErrEmptyMessage  = errors.New("message content is required")
	ErrAIFailure     = errors.New("coach request failed")
)

type CoachService struct {
	db              *gorm.DB
	cfg             *config.Config
	client          *http.Client
	entryService    *entries.EntryService
	settingsService *settings.SettingsService
}

func NewCoachService(db *gorm.DB, cfg *config.Config) *CoachService {
	return &CoachService{
		db:              db,
		cfg:             cfg,
		client:          &http.Client{Timeout: cfg.AITimeout},
		entryService:    entries.NewEntryService(db),
		settingsService: settings.NewSettingsService(db),
	}
}

// --- OpenAI types ---

type openAIChatRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GetHistory returns the conversation ordered oldest-first.
func (s *CoachService) GetHistory(userID uuid.UUID) ([]Message, error) {
	var messages []Message
	err := s.db.Scopes(scope.ForUser(userID)).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// ClearHistory deletes the whole conversation.
func (s *CoachService) ClearHistory(userID uuid.UUID) error {
	return s.db.Scopes(scope.ForUser(userID)).Delete(&Message{}).Error
}

// SendMessage runs one coach turn. The user message is persisted before the
// network call; the assistant reply is persisted only after a recognizable
// success payload. On failure the user turn stays in history and the error
// surfaces to the caller. No retry.
func (s *CoachService) SendMessage(userID uuid.UUID, content string, now time.Time) (*SendMessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if s.cfg.OpenAIAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	profile, err := s.settingsService.Get(userID)
	if err != nil {
		return nil, err
	}
	list, err := s.entryService.GetAll(userID)
	if err != nil {
		return nil, err
	}
	history, err := s.GetHistory(userID)
	if err != nil {
		return nil, err
	}

	fast := fasting.Derive(entries.LatestMeal(list), profile.GoalHours(), now)
	phase := fasting.CurrentBioPhase(now)
	systemPrompt := BuildSystemPrompt(profile, fast, phase, list, now)

	userMsg := Message{
		ID:      uuid.New(),
		UserID:  userID,
		Role:    RoleUser,
		Content: content,
	}
	if err := s.db.Create(&userMsg).Error; err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	reply, err := s.complete(systemPrompt, history, content)
	if err != nil {
		return nil, err
	}

	assistantMsg := Message{
		ID:      uuid.New(),
		UserID:  userID,
		Role:    RoleAssistant,
		Content: reply,
	}
	if err := s.db.Create(&assistantMsg).Error; err != nil {
		return nil, fmt.Errorf("failed to persist reply: %w", err)
	}

	return &SendMessageResponse{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
	}, nil
}

func (s *CoachService) complete(systemPrompt string, history []Message, content string) (string, error) {
	messages := make([]openAIMessage, 0, maxHistoryTurns+2)
	messages = append(messages, openAIMessage{Role: "system", Content: systemPrompt})

	turns := history
	if len(turns) > maxHistoryTurns {
		turns = turns[len(turns)-maxHistoryTurns:]
	}
	for _, m := range turns {
		messages = append(messages, openAIMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: content})

	reqBody := openAIChatRequest{
		Model:     s.cfg.OpenAIModel,
		Messages:  messages,
		MaxTokens: s.cfg.CoachMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIFailure, err)
	}

	req, err := http.NewRequest("POST", s.cfg.OpenAIAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIFailure, err)
	}
	defer resp.Body.Close()

	var chatResp openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIFailure, err)
	}

	if chatResp.Error != nil && chatResp.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrAIFailure, chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: status %d", ErrAIFailure, resp.StatusCode)
	}

	reply := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: empty completion", ErrAIFailure)
	}
	return reply, nil
}
