package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/aggregates"
	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/registry"
	"github.com/formulamga/mga-backend/internal/repos"
	"github.com/formulamga/mga-backend/internal/schema"
	"github.com/formulamga/mga-backend/internal/types"
)

// FallbackAnswer is the one user-safe reply for any generation failure.
const FallbackAnswer = "Lo siento, ocurrió un error al procesar tu pregunta. Intenta de nuevo."

// Tables that exist in the store but are not project document modules.
var chatTabDenylist = map[string]bool{
	"projects":     true,
	"chat_history": true,
	"survey":       true,
}

type AssistantService interface {
	// AskWithContext answers one question grounded in the project's recorded
	// data, persisting both the question and the answer as conversation turns.
	AskWithContext(ctx context.Context, projectID uint, tab, question string) (*types.ChatMessage, error)
	// GetModuleData exposes the raw hierarchical document set, for callers
	// that want structured context without the chat framing.
	GetModuleData(ctx context.Context, projectID uint, tab string) *aggregates.Result
}

type assistantService struct {
	db        *gorm.DB
	log       *logger.Logger
	catalog   *schema.Catalog
	reg       *registry.Registry
	collector *aggregates.Collector
	messages  repos.ChatMessageRepo
	generator GenerationClient
}

func NewAssistantService(
	db *gorm.DB,
	baseLog *logger.Logger,
	catalog *schema.Catalog,
	reg *registry.Registry,
	collector *aggregates.Collector,
	messageRepo repos.ChatMessageRepo,
	generator GenerationClient,
) AssistantService {
	return &assistantService{
		db:        db,
		log:       baseLog.With("service", "AssistantService"),
		catalog:   catalog,
		reg:       reg,
		collector: collector,
		messages:  messageRepo,
		generator: generator,
	}
}

func (s *assistantService) AskWithContext(ctx context.Context, projectID uint, tab, question string) (*types.ChatMessage, error) {
	validTabs, err := s.validTabs()
	if err != nil {
		return nil, err
	}
	if !validTabs[tab] {
		options := make([]string, 0, len(validTabs))
		for name := range validTabs {
			options = append(options, name)
		}
		sort.Strings(options)
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeInvalidTab,
			fmt.Errorf("tab '%s' no válido. Opciones disponibles: %s", tab, strings.Join(options, ", ")))
	}

	sessionID, err := s.messages.LatestSessionID(ctx, nil, projectID, tab)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// History is loaded before the new question is stored, so the prompt
	// never repeats the question inside the conversation block.
	history, err := s.messages.ListBySession(ctx, nil, projectID, tab, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.messages.Create(ctx, nil, &types.ChatMessage{
		ProjectID: projectID,
		Tab:       tab,
		SessionID: sessionID,
		Sender:    types.SenderUser,
		Message:   question,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	result := s.collector.Collect(ctx, tab, projectID)
	moduleContext := aggregates.FormatForPrompt(result, aggregates.DefaultMaxItems, s.reg.DisplayName(tab))
	chatContext := BuildChatContext(history, MaxHistoryTurns)
	prompt := ComposePrompt(tab, chatContext, moduleContext, question)

	s.log.Info("Invoking generation service",
		"tab", tab,
		"project_id", projectID,
		"records", result.TotalRecords,
		"history_turns", len(history),
	)

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("Generation failed, returning fallback answer", "tab", tab, "error", err)
		answer = FallbackAnswer
	}

	botMessage, err := s.messages.Create(ctx, nil, &types.ChatMessage{
		ProjectID: projectID,
		Tab:       tab,
		SessionID: sessionID,
		Sender:    types.SenderBot,
		Message:   answer,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return botMessage, nil
}

func (s *assistantService) GetModuleData(ctx context.Context, projectID uint, tab string) *aggregates.Result {
	return s.collector.Collect(ctx, tab, projectID)
}

func (s *assistantService) validTabs() (map[string]bool, error) {
	tables, err := s.catalog.ListTables()
	if err != nil {
		return nil, err
	}
	valid := make(map[string]bool, len(tables))
	for _, table := range tables {
		if !chatTabDenylist[table] {
			valid[table] = true
		}
	}
	return valid, nil
}
