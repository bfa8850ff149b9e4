package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/notification/repository"
)

type notificationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NotificationRepository { return &notificationRepo{db} }

func (r *notificationRepo) Create(n *entities.Notification) error {
	return database.Wrap(r.db.Create(n).Error, "create notification")
}

func (r *notificationRepo) List(uid string, unreadOnly bool, limit int) ([]entities.Notification, error) {
	q := r.db.Where("user_id = ?", uid)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []entities.Notification
	if err := q.Order("created_at DESC, notification_id DESC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list notifications")
	}
	return out, nil
}

func (r *notificationRepo) CountUnread(uid string) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Notification{}).Where("user_id = ? AND read_at IS NULL", uid).Count(&n).Error
	return n, database.Wrap(err, "count notifications")
}

func (r *notificationRepo) MarkRead(id uint, uid string, at time.Time) error {
	var n entities.Notification
	if err := r.db.Where("notification_id = ? AND user_id = ?", id, uid).First(&n).Error; err != nil {
		return database.Wrap(err, "notification")
	}
	if n.ReadAt != nil {
		return nil
	}
	return database.Wrap(r.db.Model(&n).Update("read_at", at).Error, "mark notification read")
}

func (r *notificationRepo) MarkAllRead(uid string, at time.Time) (int64, error) {
	res := r.db.Model(&entities.Notification{}).Where("user_id = ? AND read_at IS NULL", uid).Update("read_at", at)
	return res.RowsAffected, database.Wrap(res.Error, "mark notifications read")
}

func (r *notificationRepo) Delete(id uint, uid string) error {
	res := r.db.Where("notification_id = ? AND user_id = ?", id, uid).Delete(&entities.Notification{})
	if res.Error != nil {
		return database.Wrap(res.Error, "delete notification")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("notification")
	}
	return nil
}
