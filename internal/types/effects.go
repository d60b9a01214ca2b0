package types

import "time"

type DirectEffect struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	ProblemID       uint              `gorm:"not null;index;column:problem_id" json:"problem_id"`
	Description     string            `gorm:"type:text;column:description" json:"description"`
	IndirectEffects []*IndirectEffect `gorm:"foreignKey:DirectEffectID;constraint:OnDelete:CASCADE" json:"indirect_effects,omitempty"`
	CreatedAt       time.Time         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null;default:now()" json:"updated_at"`
}

func (DirectEffect) TableName() string {
	return "direct_effects"
}

type IndirectEffect struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DirectEffectID uint      `gorm:"not null;index;column:direct_effect_id" json:"direct_effect_id"`
	Description    string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (IndirectEffect) TableName() string {
	return "indirect_effects"
}
