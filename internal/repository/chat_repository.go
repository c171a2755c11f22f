package repository

import (
	"context"

	"app/internal/domain/model"
)

type ChatRepository interface {
	//userIDのメッセージを古い順で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.ChatMessage, error)
	Create(ctx context.Context, msg *model.ChatMessage) error
	//チャット履歴のあるユーザー一覧（最新メッセージ順）
	ListChatUsers(ctx context.Context) ([]model.User, error)
}
