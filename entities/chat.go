package entities

import "time"

type ChatMessage struct {
	MessageID uint      `gorm:"primaryKey" json:"message_id"`
	UserID    string    `json:"user_id" gorm:"index"`
	Role      string    `json:"role"` // user|assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
