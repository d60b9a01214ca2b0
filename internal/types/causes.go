package types

import "time"

type DirectCause struct {
	ID             uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	ProblemID      uint             `gorm:"not null;index;column:problem_id" json:"problem_id"`
	Description    string           `gorm:"type:text;column:description" json:"description"`
	IndirectCauses []*IndirectCause `gorm:"foreignKey:DirectCauseID;constraint:OnDelete:CASCADE" json:"indirect_causes,omitempty"`
	CreatedAt      time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (DirectCause) TableName() string {
	return "direct_causes"
}

type IndirectCause struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DirectCauseID uint      `gorm:"not null;index;column:direct_cause_id" json:"direct_cause_id"`
	Description   string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (IndirectCause) TableName() string {
	return "indirect_causes"
}
