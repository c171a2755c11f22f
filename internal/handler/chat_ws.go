package handler

import (
	"encoding/json"
	"net/http"
	"sync"

	"app/internal/domain/model"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatHub は管理画面へ新着ユーザーメッセージを流すWebSocketのハブ。
// usecase.ChatNotifier を実装する
type ChatHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewChatHub() *ChatHub {
	return &ChatHub{clients: make(map[*websocket.Conn]bool)}
}

// GET /ws/admin/chats
func (h *ChatHub) Serve(c echo.Context) error {
	conn, err := wsUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	//切断検知のためだけに読む
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	return nil
}

// NotifyUserMessage は接続中の管理画面へメッセージを配る。
// 書き込みに失敗した接続はその場で外す
func (h *ChatHub) NotifyUserMessage(msg model.ChatMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
