package serviceImp

import (
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	repo "mycolab/pkg/notification/repository"
	"mycolab/pkg/notification/service"
)

const listLimit = 200

type notificationSvc struct {
	r   repo.NotificationRepository
	now func() time.Time
}

func NewNotificationService(r repo.NotificationRepository) service.NotificationService {
	return &notificationSvc{r: r, now: time.Now}
}

func (s *notificationSvc) Notify(uid, topic, title, body string) (*entities.Notification, error) {
	if strings.TrimSpace(uid) == "" || strings.TrimSpace(title) == "" {
		return nil, apperr.Invalid("notification needs a user and a title")
	}
	n := &entities.Notification{UserID: uid, Topic: topic, Title: strings.TrimSpace(title), Body: body, CreatedAt: s.now()}
	if err := s.r.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notificationSvc) List(uid string, unreadOnly bool) ([]entities.Notification, error) {
	return s.r.List(uid, unreadOnly, listLimit)
}

func (s *notificationSvc) UnreadCount(uid string) (int64, error) { return s.r.CountUnread(uid) }

func (s *notificationSvc) MarkRead(uid string, id uint) error { return s.r.MarkRead(id, uid, s.now()) }

func (s *notificationSvc) MarkAllRead(uid string) (int64, error) { return s.r.MarkAllRead(uid, s.now()) }

func (s *notificationSvc) Delete(uid string, id uint) error { return s.r.Delete(id, uid) }
