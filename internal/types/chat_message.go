package types

import "time"

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one stored turn of the assistant conversation. Rows are
// append-only; the only mutation is the bulk clear per (project, tab).
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID uint      `gorm:"not null;index;column:project_id" json:"project_id"`
	Tab       string    `gorm:"not null;column:tab" json:"tab"`
	SessionID string    `gorm:"not null;index;column:session_id" json:"session_id"`
	Sender    string    `gorm:"not null;column:sender" json:"sender"`
	Message   string    `gorm:"type:text;not null;column:message" json:"message"`
	Timestamp time.Time `gorm:"not null;default:now();column:timestamp" json:"timestamp"`
}

func (ChatMessage) TableName() string {
	return "chat_history"
}
