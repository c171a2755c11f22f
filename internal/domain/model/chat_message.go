package model

import "time"

type ChatSender string

const (
	ChatSenderUser  ChatSender = "user"
	ChatSenderAdmin ChatSender = "admin"
	ChatSenderBot   ChatSender = "bot"
)

// サポートチャットの1メッセージ
type ChatMessage struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64      `gorm:"column:userId;not null;index" json:"userId"`
	Sender    ChatSender `gorm:"type:varchar(10);not null" json:"sender"`
	Text      string     `gorm:"type:text" json:"text"`
	IsRead    bool       `gorm:"column:isRead;not null;default:false" json:"isRead"`
	CreatedAt time.Time  `gorm:"column:createdAt;not null;autoCreateTime" json:"createdAt"`
}
