package types

import (
	"time"

	"gorm.io/datatypes"
)

// Survey answers are free-form and never surfaced to the chat assistant.
type Survey struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   uint           `gorm:"not null;index;column:project_id" json:"project_id"`
	AnswersJSON datatypes.JSON `gorm:"column:answers_json" json:"answers_json,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Survey) TableName() string {
	return "survey"
}
