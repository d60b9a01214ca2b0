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

type ProjectService interface {
	Create(ctx context.Context, project *types.Project) (*types.Project, error)
	Get(ctx context.Context, projectID uint) (*types.Project, error)
	List(ctx context.Context) ([]*types.Project, error)
	Update(ctx context.Context, projectID uint, changes *types.Project) (*types.Project, error)
	Delete(ctx context.Context, projectID uint) error
}

type projectService struct {
	db       *gorm.DB
	log      *logger.Logger
	projects repos.ProjectRepo
}

func NewProjectService(db *gorm.DB, baseLog *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	return &projectService{
		db:       db,
		log:      baseLog.With("service", "ProjectService"),
		projects: projectRepo,
	}
}

func projectNotFound(projectID uint) error {
	return apierr.New(http.StatusNotFound, apierr.CodeNotFound,
		fmt.Errorf("proyecto %d no encontrado", projectID))
}

func (s *projectService) Create(ctx context.Context, project *types.Project) (*types.Project, error) {
	if project.Name == "" {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeBadRequest,
			errors.New("el nombre del proyecto es obligatorio"))
	}
	created, err := s.projects.Create(ctx, nil, project)
	if err != nil {
		return nil, err
	}
	s.log.Info("Created project", "project_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *projectService) Get(ctx context.Context, projectID uint) (*types.Project, error) {
	project, err := s.projects.GetByID(ctx, nil, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projectNotFound(projectID)
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context) ([]*types.Project, error) {
	return s.projects.List(ctx, nil)
}

func (s *projectService) Update(ctx context.Context, projectID uint, changes *types.Project) (*types.Project, error) {
	var out *types.Project
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := s.projects.GetByID(ctx, tx, projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return projectNotFound(projectID)
			}
			return err
		}
		if changes.Name != "" {
			project.Name = changes.Name
		}
		if changes.Description != "" {
			project.Description = changes.Description
		}
		out, err = s.projects.Update(ctx, tx, project)
		return err
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *projectService) Delete(ctx context.Context, projectID uint) error {
	exists, err := s.projects.Exists(ctx, nil, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return projectNotFound(projectID)
	}
	if err := s.projects.Delete(ctx, nil, projectID); err != nil {
		return err
	}
	s.log.Info("Deleted project", "project_id", projectID)
	return nil
}
