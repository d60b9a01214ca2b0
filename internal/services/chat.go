package services

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/repos"
	"github.com/formulamga/mga-backend/internal/types"
)

type ChatService interface {
	// History returns every stored turn for (project, tab) in
	// chronological order, across sessions.
	History(ctx context.Context, projectID uint, tab string) ([]*types.ChatMessage, error)
	// Clear deletes the conversation for (project, tab) and returns how
	// many turns were removed.
	Clear(ctx context.Context, projectID uint, tab string) (int64, error)
}

type chatService struct {
	db       *gorm.DB
	log      *logger.Logger
	messages repos.ChatMessageRepo
}

func NewChatService(db *gorm.DB, baseLog *logger.Logger, messageRepo repos.ChatMessageRepo) ChatService {
	return &chatService{
		db:       db,
		log:      baseLog.With("service", "ChatService"),
		messages: messageRepo,
	}
}

func (s *chatService) History(ctx context.Context, projectID uint, tab string) ([]*types.ChatMessage, error) {
	return s.messages.ListByProjectTab(ctx, nil, projectID, tab)
}

func (s *chatService) Clear(ctx context.Context, projectID uint, tab string) (int64, error) {
	deleted, err := s.messages.DeleteByProjectTab(ctx, nil, projectID, tab)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, apierr.New(http.StatusNotFound, apierr.CodeNotFound,
			fmt.Errorf("no hay historial de chat para el proyecto %d en '%s'", projectID, tab))
	}
	s.log.Info("Cleared chat history", "project_id", projectID, "tab", tab, "deleted", deleted)
	return deleted, nil
}
