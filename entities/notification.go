package entities

import "time"

type Notification struct {
	NotificationID uint       `gorm:"primaryKey" json:"notification_id"`
	UserID         string     `json:"user_id" gorm:"index"`
	Topic          string     `json:"topic"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	ReadAt         *time.Time `json:"read_at"`
	CreatedAt      time.Time  `json:"created_at"`
}
