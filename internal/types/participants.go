package types

import (
	"time"

	"gorm.io/datatypes"
)

type ParticipantsGeneral struct {
	ID                    uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ParticipantsAnalisis  string         `gorm:"type:text;column:participants_analisis" json:"participants_analisis"`
	ParticipantsJSON      datatypes.JSON `gorm:"column:participants_json" json:"participants_json,omitempty"`
	ProjectID             uint           `gorm:"not null;uniqueIndex;column:project_id" json:"project_id"`
	Participants          []*Participant `gorm:"foreignKey:ParticipantsGeneralID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	CreatedAt             time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (ParticipantsGeneral) TableName() string {
	return "participants_general"
}

type Participant struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ParticipantsGeneralID uint      `gorm:"not null;index;column:participants_general_id" json:"participants_general_id"`
	ParticipantActor      string    `gorm:"type:text;column:participant_actor" json:"participant_actor"`
	ParticipantEntity     string    `gorm:"type:text;column:participant_entity" json:"participant_entity"`
	InterestExpectative   string    `gorm:"type:text;column:interest_expectative" json:"interest_expectative"`
	Rol                   string    `gorm:"type:text;column:rol" json:"rol"`
	ContributionConflicts string    `gorm:"type:text;column:contribution_conflicts" json:"contribution_conflicts"`
	CreatedAt             time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Participant) TableName() string {
	return "participants"
}
