package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/types"
)

type ProblemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, problem *types.Problem) (*types.Problem, error)
	GetByID(ctx context.Context, tx *gorm.DB, problemID uint) (*types.Problem, error)
	GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uint) (*types.Problem, error)
	ExistsForProject(ctx context.Context, tx *gorm.DB, projectID uint) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, problem *types.Problem) (*types.Problem, error)
	Delete(ctx context.Context, tx *gorm.DB, problemID uint) error
}

type problemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProblemRepo(db *gorm.DB, baseLog *logger.Logger) ProblemRepo {
	return &problemRepo{db: db, log: baseLog.With("repo", "ProblemRepo")}
}

func (pr *problemRepo) Create(ctx context.Context, tx *gorm.DB, problem *types.Problem) (*types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(problem).Error; err != nil {
		return nil, err
	}
	return problem, nil
}

func (pr *problemRepo) GetByID(ctx context.Context, tx *gorm.DB, problemID uint) (*types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Problem
	if err := transaction.WithContext(ctx).
		Preload("DirectEffects.IndirectEffects").
		Preload("DirectCauses.IndirectCauses").
		First(&result, problemID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *problemRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uint) (*types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Problem
	if err := transaction.WithContext(ctx).
		Preload("DirectEffects.IndirectEffects").
		Preload("DirectCauses.IndirectCauses").
		Where("project_id = ?", projectID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *problemRepo) ExistsForProject(ctx context.Context, tx *gorm.DB, projectID uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Problem{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update writes scalar columns only; branch replacement is the service's
// concern and goes through the association API.
func (pr *problemRepo) Update(ctx context.Context, tx *gorm.DB, problem *types.Problem) (*types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Omit(clause.Associations).Save(problem).Error; err != nil {
		return nil, err
	}
	return problem, nil
}

func (pr *problemRepo) Delete(ctx context.Context, tx *gorm.DB, problemID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Select("DirectEffects", "DirectCauses").
		Delete(&types.Problem{ID: problemID}).Error
}
