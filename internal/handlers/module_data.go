package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/services"
)

type ModuleDataHandler struct {
	log              *logger.Logger
	assistantService services.AssistantService
}

func NewModuleDataHandler(log *logger.Logger, assistantService services.AssistantService) *ModuleDataHandler {
	return &ModuleDataHandler{
		log:              log.With("handler", "ModuleDataHandler"),
		assistantService: assistantService,
	}
}

// GET /api/module_data/:tab/:project_id
//
// Always responds 200: the result carries its own status
// (ok/error/unsupported) plus any per-child warnings, so callers can see
// partial data instead of losing everything to a blanket failure.
func (mh *ModuleDataHandler) Get(c *gin.Context) {
	projectID, ok := uintParam(c, "project_id")
	if !ok {
		return
	}
	tab := c.Param("tab")
	result := mh.assistantService.GetModuleData(c.Request.Context(), projectID, tab)
	RespondOK(c, result)
}
