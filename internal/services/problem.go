package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/repos"
	"github.com/formulamga/mga-backend/internal/types"
)

type ProblemService interface {
	// Create stores the problem tree, including nested direct/indirect
	// effects and causes, in one transaction. A project holds at most one
	// problem tree.
	Create(ctx context.Context, problem *types.Problem) (*types.Problem, error)
	GetByProject(ctx context.Context, projectID uint) (*types.Problem, error)
	Update(ctx context.Context, problemID uint, changes *types.Problem) (*types.Problem, error)
	Delete(ctx context.Context, problemID uint) error
}

type problemService struct {
	db       *gorm.DB
	log      *logger.Logger
	problems repos.ProblemRepo
	projects repos.ProjectRepo
}

func NewProblemService(db *gorm.DB, baseLog *logger.Logger, problemRepo repos.ProblemRepo, projectRepo repos.ProjectRepo) ProblemService {
	return &problemService{
		db:       db,
		log:      baseLog.With("service", "ProblemService"),
		problems: problemRepo,
		projects: projectRepo,
	}
}

func problemNotFound(problemID uint) error {
	return apierr.New(http.StatusNotFound, apierr.CodeNotFound,
		fmt.Errorf("árbol de problemas %d no encontrado", problemID))
}

func (s *problemService) Create(ctx context.Context, problem *types.Problem) (*types.Problem, error) {
	var out *types.Problem
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.projects.Exists(ctx, tx, problem.ProjectID)
		if err != nil {
			return err
		}
		if !exists {
			return projectNotFound(problem.ProjectID)
		}
		taken, err := s.problems.ExistsForProject(ctx, tx, problem.ProjectID)
		if err != nil {
			return err
		}
		if taken {
			return apierr.New(http.StatusConflict, apierr.CodeConflict,
				fmt.Errorf("el proyecto %d ya tiene un árbol de problemas", problem.ProjectID))
		}
		out, err = s.problems.Create(ctx, tx, problem)
		return err
	}); err != nil {
		return nil, err
	}
	s.log.Info("Created problem tree",
		"problem_id", out.ID,
		"project_id", out.ProjectID,
		"direct_effects", len(out.DirectEffects),
		"direct_causes", len(out.DirectCauses),
	)
	return out, nil
}

func (s *problemService) GetByProject(ctx context.Context, projectID uint) (*types.Problem, error) {
	problem, err := s.problems.GetByProjectID(ctx, nil, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.New(http.StatusNotFound, apierr.CodeNotFound,
				fmt.Errorf("el proyecto %d no tiene árbol de problemas", projectID))
		}
		return nil, err
	}
	return problem, nil
}

// Update replaces the scalar fields and, when the payload carries effect or
// cause branches, swaps the whole branch rather than merging record by record.
func (s *problemService) Update(ctx context.Context, problemID uint, changes *types.Problem) (*types.Problem, error) {
	var out *types.Problem
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		problem, err := s.problems.GetByID(ctx, tx, problemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return problemNotFound(problemID)
			}
			return err
		}
		problem.CentralProblem = changes.CentralProblem
		problem.CurrentDescription = changes.CurrentDescription
		problem.MagnitudeProblem = changes.MagnitudeProblem
		if len(changes.ProblemTreeJSON) > 0 {
			problem.ProblemTreeJSON = changes.ProblemTreeJSON
		}
		if changes.DirectEffects != nil {
			if err := tx.WithContext(ctx).Model(problem).Association("DirectEffects").Unscoped().Replace(changes.DirectEffects); err != nil {
				return err
			}
			problem.DirectEffects = changes.DirectEffects
		}
		if changes.DirectCauses != nil {
			if err := tx.WithContext(ctx).Model(problem).Association("DirectCauses").Unscoped().Replace(changes.DirectCauses); err != nil {
				return err
			}
			problem.DirectCauses = changes.DirectCauses
		}
		out, err = s.problems.Update(ctx, tx, problem)
		return err
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *problemService) Delete(ctx context.Context, problemID uint) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.problems.GetByID(ctx, tx, problemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return problemNotFound(problemID)
			}
			return err
		}
		return s.problems.Delete(ctx, tx, problemID)
	}); err != nil {
		return err
	}
	s.log.Info("Deleted problem tree", "problem_id", problemID)
	return nil
}
