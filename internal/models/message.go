package models

import "time"

// Message is a directed edge between two users. A conversation between two
// users is the set of messages whose {sender, receiver} equals that unordered
// pair. Messages are immutable except for the read flag, which is set when
// the recipient fetches the conversation.
type Message struct {
	BaseModel
	SenderID   string `gorm:"not null;index"`
	ReceiverID string `gorm:"not null;index"`
	Content    string `gorm:"not null"`
	SentAt     time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	IsRead     bool      `gorm:"default:false"`
	ReadAt     *time.Time
}
