package repository

import "mycolab/entities"

type ChatRepository interface {
	Create(msgs ...*entities.ChatMessage) error
	// Recent returns the newest limit messages, oldest first.
	Recent(uid string, limit int) ([]entities.ChatMessage, error)
	DeleteAll(uid string) (int64, error)
}
