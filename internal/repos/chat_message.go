package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/types"
)

type ChatMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, message *types.ChatMessage) (*types.ChatMessage, error)
	ListByProjectTab(ctx context.Context, tx *gorm.DB, projectID uint, tab string) ([]*types.ChatMessage, error)
	ListBySession(ctx context.Context, tx *gorm.DB, projectID uint, tab, sessionID string) ([]*types.ChatMessage, error)
	LatestSessionID(ctx context.Context, tx *gorm.DB, projectID uint, tab string) (string, error)
	DeleteByProjectTab(ctx context.Context, tx *gorm.DB, projectID uint, tab string) (int64, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{db: db, log: baseLog.With("repo", "ChatMessageRepo")}
}

func (cr *chatMessageRepo) Create(ctx context.Context, tx *gorm.DB, message *types.ChatMessage) (*types.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (cr *chatMessageRepo) ListByProjectTab(ctx context.Context, tx *gorm.DB, projectID uint, tab string) ([]*types.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ChatMessage
	if err := transaction.WithContext(ctx).
		Where("project_id = ? AND tab = ?", projectID, tab).
		Order("timestamp ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *chatMessageRepo) ListBySession(ctx context.Context, tx *gorm.DB, projectID uint, tab, sessionID string) ([]*types.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ChatMessage
	if err := transaction.WithContext(ctx).
		Where("project_id = ? AND tab = ? AND session_id = ?", projectID, tab, sessionID).
		Order("timestamp ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// LatestSessionID returns the session of the most recent turn for
// (project, tab), or empty when the conversation has no history yet.
func (cr *chatMessageRepo) LatestSessionID(ctx context.Context, tx *gorm.DB, projectID uint, tab string) (string, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var last types.ChatMessage
	err := transaction.WithContext(ctx).
		Where("project_id = ? AND tab = ?", projectID, tab).
		Order("timestamp DESC, id DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return last.SessionID, nil
}

func (cr *chatMessageRepo) DeleteByProjectTab(ctx context.Context, tx *gorm.DB, projectID uint, tab string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	result := transaction.WithContext(ctx).
		Where("project_id = ? AND tab = ?", projectID, tab).
		Delete(&types.ChatMessage{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
