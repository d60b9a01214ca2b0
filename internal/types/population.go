package types

import (
	"time"

	"gorm.io/datatypes"
)

type Population struct {
	ID                         uint                         `gorm:"primaryKey;autoIncrement" json:"id"`
	AffectedPopulationText     string                       `gorm:"type:text;column:affected_population_text" json:"affected_population_text"`
	TargetPopulation           string                       `gorm:"type:text;column:target_population" json:"target_population"`
	DemographicCharacteristics string                       `gorm:"type:text;column:demographic_characteristics" json:"demographic_characteristics"`
	PopulationJSON             datatypes.JSON               `gorm:"column:population_json" json:"population_json,omitempty"`
	ProjectID                  uint                         `gorm:"not null;uniqueIndex;column:project_id" json:"project_id"`
	AffectedPopulation         []*AffectedPopulation        `gorm:"foreignKey:PopulationID;constraint:OnDelete:CASCADE" json:"affected_population,omitempty"`
	InterventionPopulation     []*InterventionPopulation    `gorm:"foreignKey:PopulationID;constraint:OnDelete:CASCADE" json:"intervention_population,omitempty"`
	CharacteristicsPopulation  []*CharacteristicsPopulation `gorm:"foreignKey:PopulationID;constraint:OnDelete:CASCADE" json:"characteristics_population,omitempty"`
	CreatedAt                  time.Time                    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt                  time.Time                    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Population) TableName() string {
	return "population"
}

type AffectedPopulation struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PopulationID uint      `gorm:"not null;index;column:population_id" json:"population_id"`
	Region       string    `gorm:"type:text;column:region" json:"region"`
	Department   string    `gorm:"type:text;column:department" json:"department"`
	City         string    `gorm:"type:text;column:city" json:"city"`
	Description  string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (AffectedPopulation) TableName() string {
	return "affected_population"
}

type InterventionPopulation struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PopulationID     uint      `gorm:"not null;index;column:population_id" json:"population_id"`
	Region           string    `gorm:"type:text;not null;column:region" json:"region"`
	Department       string    `gorm:"not null;column:department" json:"department"`
	City             string    `gorm:"type:text;column:city" json:"city"`
	PopulationCenter string    `gorm:"type:text;column:population_center" json:"population_center"`
	LocationEntity   string    `gorm:"type:text;column:location_entity" json:"location_entity"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (InterventionPopulation) TableName() string {
	return "intervention_population"
}

type CharacteristicsPopulation struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PopulationID   uint      `gorm:"not null;index;column:population_id" json:"population_id"`
	Classification string    `gorm:"type:text;not null;column:classification" json:"classification"`
	Detail         string    `gorm:"not null;column:detail" json:"detail"`
	PeopleNumber   int       `gorm:"not null;column:people_number" json:"people_number"`
	Information    string    `gorm:"type:text;column:information" json:"information"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (CharacteristicsPopulation) TableName() string {
	return "characteristics_population"
}
