package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ChatGormRepository struct {
	db *gorm.DB
}

func NewChatGormRepository(db *gorm.DB) *ChatGormRepository {
	return &ChatGormRepository{db: db}
}

func (r *ChatGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("userId = ?", userID).
		Order("createdAt asc").
		Find(&msgs).Error
	if err != nil {
		return []model.ChatMessage{}, err
	}
	return msgs, nil
}

func (r *ChatGormRepository) Create(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// チャット履歴のあるユーザーを最新メッセージ順で返す
func (r *ChatGormRepository) ListChatUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Joins("JOIN chat_messages ON chat_messages.userId = users.id").
		Group("users.id").
		Order("MAX(chat_messages.createdAt) desc").
		Find(&users).Error
	if err != nil {
		return []model.User{}, err
	}
	return users, nil
}
