package types

import (
	"time"

	"gorm.io/datatypes"
)

// Problem is the root of the problem tree. A project has at most one.
type Problem struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CentralProblem     string         `gorm:"type:text;not null;default:'';column:central_problem" json:"central_problem"`
	CurrentDescription string         `gorm:"type:text;not null;default:'';column:current_description" json:"current_description"`
	MagnitudeProblem   string         `gorm:"type:text;not null;default:'';column:magnitude_problem" json:"magnitude_problem"`
	ProblemTreeJSON    datatypes.JSON `gorm:"column:problem_tree_json" json:"problem_tree_json,omitempty"`
	ProjectID          uint           `gorm:"not null;uniqueIndex;column:project_id" json:"project_id"`
	DirectEffects      []*DirectEffect `gorm:"foreignKey:ProblemID;constraint:OnDelete:CASCADE" json:"direct_effects,omitempty"`
	DirectCauses       []*DirectCause  `gorm:"foreignKey:ProblemID;constraint:OnDelete:CASCADE" json:"direct_causes,omitempty"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Problem) TableName() string {
	return "problems"
}
