package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 管理者の在席状態の参照
type PresenceChecker interface {
	Online() bool
}

// 新着ユーザーメッセージの通知先（管理画面のWebSocketフィード）。
// 未接続でも落とさないこと
type ChatNotifier interface {
	NotifyUserMessage(msg model.ChatMessage)
}

type ChatUsecase struct {
	chatRepo repo.ChatRepository
	userRepo repo.UserRepository
	presence PresenceChecker
	notifier ChatNotifier

	//botの返信を遅らせる時間（テストで短くできるように持つ）
	botDelay time.Duration
}

func NewChatUsecase(
	chatRepo repo.ChatRepository,
	userRepo repo.UserRepository,
	presence PresenceChecker,
	notifier ChatNotifier,
) *ChatUsecase {
	return &ChatUsecase{
		chatRepo: chatRepo,
		userRepo: userRepo,
		presence: presence,
		notifier: notifier,
		botDelay: time.Second,
	}
}

type ChatStatusOutput struct {
	Online bool `json:"online"`
}

func (u *ChatUsecase) Status(ctx context.Context) ChatStatusOutput {
	return ChatStatusOutput{Online: u.presence.Online()}
}

// 履歴は古い順。失敗しても空配列（ウィジェットを壊さない）
func (u *ChatUsecase) History(ctx context.Context, userID int64) []model.ChatMessage {
	if userID <= 0 {
		return []model.ChatMessage{}
	}
	msgs, err := u.chatRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []model.ChatMessage{}
	}
	return msgs
}

type SendMessageInput struct {
	UserID int64
	Sender model.ChatSender
	Text   string
}

// Send はメッセージを保存する。送信者がユーザーで管理者が不在なら、
// 台本どおりの自動返信を1秒後に入れる
func (u *ChatUsecase) Send(ctx context.Context, in SendMessageInput) (model.ChatMessage, error) {
	if in.UserID <= 0 {
		return model.ChatMessage{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if strings.TrimSpace(in.Text) == "" {
		return model.ChatMessage{}, NewHTTPError(http.StatusBadRequest, "text required")
	}
	switch in.Sender {
	case model.ChatSenderUser, model.ChatSenderAdmin:
	default:
		return model.ChatMessage{}, NewHTTPError(http.StatusBadRequest, "invalid sender")
	}

	//退会済みユーザーからのチャットは弾く
	if _, err := u.userRepo.FindByID(ctx, in.UserID); err != nil {
		if err == repo.ErrUserNotFound {
			return model.ChatMessage{}, NewHTTPError(http.StatusNotFound, "User not found. Please relogin.")
		}
		return model.ChatMessage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	msg := model.ChatMessage{
		UserID: in.UserID,
		Sender: in.Sender,
		Text:   in.Text,
	}
	if err := u.chatRepo.Create(ctx, &msg); err != nil {
		return model.ChatMessage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Sender == model.ChatSenderUser {
		if u.notifier != nil {
			u.notifier.NotifyUserMessage(msg)
		}

		if !u.presence.Online() {
			reply := BotReply(in.Text)
			//リクエストのcontextはすぐ死ぬので切り離す
			time.AfterFunc(u.botDelay, func() {
				botMsg := model.ChatMessage{
					UserID: in.UserID,
					Sender: model.ChatSenderBot,
					Text:   reply,
				}
				_ = u.chatRepo.Create(context.Background(), &botMsg)
			})
		}
	}

	return msg, nil
}

// BotReply は台本の自動返信を選ぶ。単純な文字列マッチ
func BotReply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "price"):
		return "Prices are listed on the product page."
	case strings.Contains(lower, "delivery"):
		return "We deliver within 24-48 hours."
	case strings.Contains(lower, "hello"):
		return "Hello! I am the Umang AI Assistant."
	default:
		return "Thanks for your message. An agent will reply shortly."
	}
}

// 管理画面用：チャット履歴のあるユーザー一覧
func (u *ChatUsecase) AdminChatUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.chatRepo.ListChatUsers(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}
