package service

import "mycolab/entities"

// Topics used by the modules that notify users.
const (
	TopicSuggestion    = "suggestion"
	TopicContamination = "contamination"
)

type NotificationService interface {
	Notify(uid, topic, title, body string) (*entities.Notification, error)
	List(uid string, unreadOnly bool) ([]entities.Notification, error)
	UnreadCount(uid string) (int64, error)
	MarkRead(uid string, id uint) error
	MarkAllRead(uid string) (int64, error)
	Delete(uid string, id uint) error
}
