package repository

import (
	"time"

	"mycolab/entities"
)

type NotificationRepository interface {
	Create(n *entities.Notification) error
	List(uid string, unreadOnly bool, limit int) ([]entities.Notification, error)
	CountUnread(uid string) (int64, error)
	MarkRead(id uint, uid string, at time.Time) error
	MarkAllRead(uid string, at time.Time) (int64, error)
	Delete(id uint, uid string) error
}
