package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/services"
)

type ChatHandler struct {
	log              *logger.Logger
	assistantService services.AssistantService
	chatService      services.ChatService
}

func NewChatHandler(log *logger.Logger, assistantService services.AssistantService, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:              log.With("handler", "ChatHandler"),
		assistantService: assistantService,
		chatService:      chatService,
	}
}

type chatPayload struct {
	Question string `json:"question"`
}

// POST /api/chat_history/chat/:project_id/:tab
func (ch *ChatHandler) Chat(c *gin.Context) {
	projectID, ok := uintParam(c, "project_id")
	if !ok {
		return
	}
	tab := c.Param("tab")
	var payload chatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}
	question := strings.TrimSpace(payload.Question)
	if question == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest,
			errors.New("la pregunta no puede estar vacía"))
		return
	}
	answer, err := ch.assistantService.AskWithContext(c.Request.Context(), projectID, tab, question)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, answer)
}

// GET /api/chat_history/:project_id/:tab
func (ch *ChatHandler) History(c *gin.Context) {
	projectID, ok := uintParam(c, "project_id")
	if !ok {
		return
	}
	tab := c.Param("tab")
	history, err := ch.chatService.History(c.Request.Context(), projectID, tab)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, history)
}

// DELETE /api/chat_history/:project_id/:tab
func (ch *ChatHandler) Clear(c *gin.Context) {
	projectID, ok := uintParam(c, "project_id")
	if !ok {
		return
	}
	tab := c.Param("tab")
	deleted, err := ch.chatService.Clear(c.Request.Context(), projectID, tab)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": deleted})
}
