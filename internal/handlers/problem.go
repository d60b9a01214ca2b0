package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/services"
	"github.com/formulamga/mga-backend/internal/types"
)

type ProblemHandler struct {
	log            *logger.Logger
	problemService services.ProblemService
}

func NewProblemHandler(log *logger.Logger, problemService services.ProblemService) *ProblemHandler {
	return &ProblemHandler{
		log:            log.With("handler", "ProblemHandler"),
		problemService: problemService,
	}
}

type directEffectPayload struct {
	Description     string   `json:"description"`
	IndirectEffects []string `json:"indirect_effects"`
}

type directCausePayload struct {
	Description    string   `json:"description"`
	IndirectCauses []string `json:"indirect_causes"`
}

type problemPayload struct {
	CentralProblem     string                `json:"central_problem"`
	CurrentDescription string                `json:"current_description"`
	MagnitudeProblem   string                `json:"magnitude_problem"`
	ProblemTreeJSON    datatypes.JSON        `json:"problem_tree_json"`
	ProjectID          uint                  `json:"project_id"`
	DirectEffects      []directEffectPayload `json:"direct_effects"`
	DirectCauses       []directCausePayload  `json:"direct_causes"`
}

func (p *problemPayload) toModel() *types.Problem {
	problem := &types.Problem{
		CentralProblem:     p.CentralProblem,
		CurrentDescription: p.CurrentDescription,
		MagnitudeProblem:   p.MagnitudeProblem,
		ProblemTreeJSON:    p.ProblemTreeJSON,
		ProjectID:          p.ProjectID,
	}
	// A present-but-empty list means "replace with nothing" on update, so
	// emptiness is preserved rather than collapsed to nil.
	if p.DirectEffects != nil {
		problem.DirectEffects = make([]*types.DirectEffect, 0, len(p.DirectEffects))
		for _, effect := range p.DirectEffects {
			direct := &types.DirectEffect{Description: effect.Description}
			for _, indirect := range effect.IndirectEffects {
				direct.IndirectEffects = append(direct.IndirectEffects, &types.IndirectEffect{Description: indirect})
			}
			problem.DirectEffects = append(problem.DirectEffects, direct)
		}
	}
	if p.DirectCauses != nil {
		problem.DirectCauses = make([]*types.DirectCause, 0, len(p.DirectCauses))
		for _, cause := range p.DirectCauses {
			direct := &types.DirectCause{Description: cause.Description}
			for _, indirect := range cause.IndirectCauses {
				direct.IndirectCauses = append(direct.IndirectCauses, &types.IndirectCause{Description: indirect})
			}
			problem.DirectCauses = append(problem.DirectCauses, direct)
		}
	}
	return problem
}

// POST /api/problems
func (ph *ProblemHandler) Create(c *gin.Context) {
	var payload problemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}
	problem, err := ph.problemService.Create(c.Request.Context(), payload.toModel())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, problem)
}

// GET /api/problems/project/:project_id
func (ph *ProblemHandler) GetByProject(c *gin.Context) {
	projectID, ok := uintParam(c, "project_id")
	if !ok {
		return
	}
	problem, err := ph.problemService.GetByProject(c.Request.Context(), projectID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, problem)
}

// PUT /api/problems/:id
func (ph *ProblemHandler) Update(c *gin.Context) {
	problemID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var payload problemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}
	problem, err := ph.problemService.Update(c.Request.Context(), problemID, payload.toModel())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, problem)
}

// DELETE /api/problems/:id
func (ph *ProblemHandler) Delete(c *gin.Context) {
	problemID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ph.problemService.Delete(c.Request.Context(), problemID); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": problemID})
}
