package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/repos"
	"github.com/formulamga/mga-backend/internal/types"
)

func problemFixture(t *testing.T) (ProblemService, ProjectService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Project{},
		&types.Problem{},
		&types.DirectEffect{},
		&types.IndirectEffect{},
		&types.DirectCause{},
		&types.IndirectCause{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	projectRepo := repos.NewProjectRepo(db, log)
	problemRepo := repos.NewProblemRepo(db, log)
	return NewProblemService(db, log, problemRepo, projectRepo),
		NewProjectService(db, log, projectRepo),
		db
}

func wantStatus(t *testing.T, err error, status int) {
	t.Helper()
	var appErr *apierr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("want apierr.Error, got %T: %v", err, err)
	}
	if appErr.Status != status {
		t.Fatalf("status=%d, want %d (%v)", appErr.Status, status, err)
	}
}

func TestCreateProblemWithNestedTree(t *testing.T) {
	problems, projects, _ := problemFixture(t)
	ctx := context.Background()

	project, err := projects.Create(ctx, &types.Project{Name: "Parque lineal"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	created, err := problems.Create(ctx, &types.Problem{
		CentralProblem: "Déficit de espacio público",
		ProjectID:      project.ID,
		DirectEffects: []*types.DirectEffect{
			{
				Description:     "Menor calidad de vida",
				IndirectEffects: []*types.IndirectEffect{{Description: "Migración hacia otros barrios"}},
			},
		},
		DirectCauses: []*types.DirectCause{{Description: "Crecimiento urbano no planificado"}},
	})
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	loaded, err := problems.GetByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetByProject: %v", err)
	}
	if loaded.ID != created.ID {
		t.Fatalf("loaded %d, want %d", loaded.ID, created.ID)
	}
	if len(loaded.DirectEffects) != 1 || len(loaded.DirectEffects[0].IndirectEffects) != 1 {
		t.Fatalf("effects branch not persisted: %+v", loaded.DirectEffects)
	}
	if len(loaded.DirectCauses) != 1 {
		t.Fatalf("causes branch not persisted: %+v", loaded.DirectCauses)
	}
}

func TestCreateProblemRequiresExistingProject(t *testing.T) {
	problems, _, _ := problemFixture(t)
	_, err := problems.Create(context.Background(), &types.Problem{CentralProblem: "x", ProjectID: 999})
	if err == nil {
		t.Fatal("expected an error for a missing project")
	}
	wantStatus(t, err, http.StatusNotFound)
}

func TestCreateProblemOnePerProject(t *testing.T) {
	problems, projects, _ := problemFixture(t)
	ctx := context.Background()

	project, err := projects.Create(ctx, &types.Project{Name: "Proyecto"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := problems.Create(ctx, &types.Problem{CentralProblem: "a", ProjectID: project.ID}); err != nil {
		t.Fatalf("first problem: %v", err)
	}

	_, err = problems.Create(ctx, &types.Problem{CentralProblem: "b", ProjectID: project.ID})
	if err == nil {
		t.Fatal("second problem for the same project should conflict")
	}
	wantStatus(t, err, http.StatusConflict)
}

func TestGetByProjectWithoutProblem(t *testing.T) {
	problems, projects, _ := problemFixture(t)
	ctx := context.Background()

	project, err := projects.Create(ctx, &types.Project{Name: "Sin árbol"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	_, err = problems.GetByProject(ctx, project.ID)
	if err == nil {
		t.Fatal("expected 404 for a project without a problem tree")
	}
	wantStatus(t, err, http.StatusNotFound)
}

func TestUpdateProblemReplacesBranches(t *testing.T) {
	problems, projects, _ := problemFixture(t)
	ctx := context.Background()

	project, err := projects.Create(ctx, &types.Project{Name: "Proyecto"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	created, err := problems.Create(ctx, &types.Problem{
		CentralProblem: "antes",
		ProjectID:      project.ID,
		DirectEffects:  []*types.DirectEffect{{Description: "viejo efecto"}},
	})
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	updated, err := problems.Update(ctx, created.ID, &types.Problem{
		CentralProblem: "después",
		DirectEffects:  []*types.DirectEffect{{Description: "nuevo efecto"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CentralProblem != "después" {
		t.Fatalf("central problem=%q", updated.CentralProblem)
	}

	loaded, err := problems.GetByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(loaded.DirectEffects) != 1 || loaded.DirectEffects[0].Description != "nuevo efecto" {
		t.Fatalf("branch not replaced: %+v", loaded.DirectEffects)
	}
}

func TestDeleteProblem(t *testing.T) {
	problems, projects, db := problemFixture(t)
	ctx := context.Background()

	project, err := projects.Create(ctx, &types.Project{Name: "Proyecto"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	created, err := problems.Create(ctx, &types.Problem{
		CentralProblem: "x",
		ProjectID:      project.ID,
		DirectEffects:  []*types.DirectEffect{{Description: "efecto"}},
	})
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	if err := problems.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var count int64
	if err := db.Model(&types.Problem{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("problem rows remaining: %d", count)
	}

	err = problems.Delete(ctx, created.ID)
	if err == nil {
		t.Fatal("deleting twice should 404")
	}
	wantStatus(t, err, http.StatusNotFound)
}
