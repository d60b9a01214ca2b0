package types

import "time"

type Objective struct {
	ID                   uint                  `gorm:"primaryKey;autoIncrement" json:"id"`
	GeneralObjective     string                `gorm:"type:text;column:general_objective" json:"general_objective"`
	CauseRelations       string                `gorm:"type:text;column:cause_relations" json:"cause_relations"`
	ProjectID            uint                  `gorm:"not null;uniqueIndex;column:project_id" json:"project_id"`
	ObjectivesCauses     []*ObjectiveCause     `gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE" json:"objectives_causes,omitempty"`
	ObjectivesIndicators []*ObjectiveIndicator `gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE" json:"objectives_indicators,omitempty"`
	CreatedAt            time.Time             `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time             `gorm:"not null;default:now()" json:"updated_at"`
}

func (Objective) TableName() string {
	return "objectives"
}

type ObjectiveCause struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ObjectiveID         uint      `gorm:"not null;index;column:objective_id" json:"objective_id"`
	Type                string    `gorm:"type:text;column:type" json:"type"`
	CauseRelated        string    `gorm:"type:text;column:cause_related" json:"cause_related"`
	SpecificsObjectives string    `gorm:"type:text;column:specifics_objectives" json:"specifics_objectives"`
	CreatedAt           time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ObjectiveCause) TableName() string {
	return "objectives_causes"
}

type ObjectiveIndicator struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ObjectiveID      uint      `gorm:"not null;index;column:objective_id" json:"objective_id"`
	Indicator        string    `gorm:"type:text;not null;column:indicator" json:"indicator"`
	Unit             string    `gorm:"type:text;not null;column:unit" json:"unit"`
	Meta             float64   `gorm:"not null;default:0;column:meta" json:"meta"`
	SourceType       string    `gorm:"type:text;not null;column:source_type" json:"source_type"`
	SourceValidation string    `gorm:"type:text;not null;column:source_validation" json:"source_validation"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ObjectiveIndicator) TableName() string {
	return "objectives_indicator"
}
