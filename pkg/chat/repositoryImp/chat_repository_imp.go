package repositoryImp

import (
	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Create(msgs ...*entities.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	return database.Wrap(r.db.Create(msgs).Error, "create chat messages")
}

func (r *chatRepo) Recent(uid string, limit int) ([]entities.ChatMessage, error) {
	q := r.db.Where("user_id = ?", uid).Order("created_at DESC, message_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []entities.ChatMessage
	if err := q.Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "chat history")
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *chatRepo) DeleteAll(uid string) (int64, error) {
	res := r.db.Where("user_id = ?", uid).Delete(&entities.ChatMessage{})
	return res.RowsAffected, database.Wrap(res.Error, "clear chat history")
}
