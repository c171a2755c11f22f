package usecase

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
)

// 白箱テスト：botDelayを縮めて自動返信まで確認する

type chatRepoFake struct {
	mu     sync.Mutex
	nextID int64
	msgs   []model.ChatMessage
	err    error
}

func (f *chatRepoFake) ListByUserID(ctx context.Context, userID int64) ([]model.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []model.ChatMessage{}
	for _, m := range f.msgs {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *chatRepoFake) Create(ctx context.Context, msg *model.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	msg.ID = f.nextID
	f.msgs = append(f.msgs, *msg)
	return nil
}

func (f *chatRepoFake) ListChatUsers(ctx context.Context) ([]model.User, error) {
	return nil, nil
}

func (f *chatRepoFake) senders() []model.ChatSender {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.ChatSender, 0, len(f.msgs))
	for _, m := range f.msgs {
		out = append(out, m.Sender)
	}
	return out
}

type chatUserRepoFake struct {
	exists bool
}

func (f *chatUserRepoFake) Create(ctx context.Context, user *model.User) error { return nil }

func (f *chatUserRepoFake) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	if !f.exists {
		return nil, repo.ErrUserNotFound
	}
	return &model.User{ID: userID}, nil
}

func (f *chatUserRepoFake) FindByContact(ctx context.Context, contact string) (*model.User, error) {
	return nil, repo.ErrUserNotFound
}

func (f *chatUserRepoFake) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, repo.ErrUserNotFound
}

func (f *chatUserRepoFake) List(ctx context.Context) ([]model.User, error) { return nil, nil }

func (f *chatUserRepoFake) Update(ctx context.Context, user *model.User) error { return nil }

func (f *chatUserRepoFake) Delete(ctx context.Context, userID int64) error { return nil }

func (f *chatUserRepoFake) SaveCartData(ctx context.Context, userID int64, cartData string) error {
	return nil
}

type presenceFake struct {
	online bool
}

func (p *presenceFake) Online() bool { return p.online }

type notifierSpy struct {
	mu   sync.Mutex
	msgs []model.ChatMessage
}

func (n *notifierSpy) NotifyUserMessage(msg model.ChatMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *notifierSpy) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.msgs)
}

func newChatFixture(online bool) (*ChatUsecase, *chatRepoFake, *notifierSpy) {
	chats := &chatRepoFake{}
	notifier := &notifierSpy{}
	uc := NewChatUsecase(chats, &chatUserRepoFake{exists: true}, &presenceFake{online: online}, notifier)
	uc.botDelay = time.Millisecond
	return uc, chats, notifier
}

func TestChatUsecase_Send_AdminOfflineGetsBotReply(t *testing.T) {
	uc, chats, notifier := newChatFixture(false)

	msg, err := uc.Send(context.Background(), SendMessageInput{UserID: 10, Sender: model.ChatSenderUser, Text: "What is the price?"})
	assert.NoError(t, err)
	assert.Equal(t, model.ChatSenderUser, msg.Sender)
	assert.Equal(t, 1, notifier.count())

	//遅延返信を待つ
	assert.Eventually(t, func() bool {
		return len(chats.senders()) == 2
	}, time.Second, 5*time.Millisecond)

	msgs, _ := chats.ListByUserID(context.Background(), 10)
	assert.Equal(t, model.ChatSenderBot, msgs[1].Sender)
	assert.Equal(t, "Prices are listed on the product page.", msgs[1].Text)
}

func TestChatUsecase_Send_AdminOnlineNoBot(t *testing.T) {
	uc, chats, _ := newChatFixture(true)

	_, err := uc.Send(context.Background(), SendMessageInput{UserID: 10, Sender: model.ChatSenderUser, Text: "hello"})
	assert.NoError(t, err)

	//botDelayより十分長く待っても返信は入らない
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []model.ChatSender{model.ChatSenderUser}, chats.senders())
}

func TestChatUsecase_Send_AdminMessageDoesNotNotify(t *testing.T) {
	uc, _, notifier := newChatFixture(false)

	_, err := uc.Send(context.Background(), SendMessageInput{UserID: 10, Sender: model.ChatSenderAdmin, Text: "How can I help?"})
	assert.NoError(t, err)
	assert.Equal(t, 0, notifier.count())
}

func TestChatUsecase_Send_UnknownUser(t *testing.T) {
	notifier := &notifierSpy{}
	uc := NewChatUsecase(&chatRepoFake{}, &chatUserRepoFake{exists: false}, &presenceFake{}, notifier)

	_, err := uc.Send(context.Background(), SendMessageInput{UserID: 10, Sender: model.ChatSenderUser, Text: "hi"})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "User not found. Please relogin.", he.Message)
}

func TestChatUsecase_History_FailureIsEmptySlice(t *testing.T) {
	uc := NewChatUsecase(&chatRepoFake{err: assert.AnError}, &chatUserRepoFake{exists: true}, &presenceFake{}, &notifierSpy{})

	msgs := uc.History(context.Background(), 10)
	assert.NotNil(t, msgs)
	assert.Len(t, msgs, 0)
}

func TestBotReply_Script(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"What is the PRICE of this?", "Prices are listed on the product page."},
		{"when is my delivery", "We deliver within 24-48 hours."},
		{"Hello there", "Hello! I am the Umang AI Assistant."},
		{"my order is broken", "Thanks for your message. An agent will reply shortly."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BotReply(tc.in), "input: %s", tc.in)
	}
}
