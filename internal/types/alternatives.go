package types

import (
	"time"

	"gorm.io/datatypes"
)

type AlternativesGeneral struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SolutionAlternatives bool           `gorm:"not null;default:false;column:solution_alternatives" json:"solution_alternatives"`
	Cost                 bool           `gorm:"not null;default:false;column:cost" json:"cost"`
	Profitability        bool           `gorm:"not null;default:false;column:profitability" json:"profitability"`
	AlternativesJSON     datatypes.JSON `gorm:"column:alternatives_json" json:"alternatives_json,omitempty"`
	ProjectID            uint           `gorm:"not null;uniqueIndex;column:project_id" json:"project_id"`
	Alternatives         []*Alternative `gorm:"foreignKey:AlternativesGeneralID;constraint:OnDelete:CASCADE" json:"alternatives,omitempty"`
	CreatedAt            time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (AlternativesGeneral) TableName() string {
	return "alternatives_general"
}

type Alternative struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AlternativesGeneralID uint      `gorm:"not null;index;column:alternatives_general_id" json:"alternatives_general_id"`
	Description           string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt             time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Alternative) TableName() string {
	return "alternatives"
}
