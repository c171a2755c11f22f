package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	uc  *usecase.ChatUsecase
	hub *ChatHub
}

func NewChatHandler(uc *usecase.ChatUsecase, hub *ChatHub) *ChatHandler {
	return &ChatHandler{uc: uc, hub: hub}
}

type SendMessageRequest struct {
	UserID int64  `json:"userId"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/chat/status", h.status)
	g.GET("/chat/:userId", h.history)
	g.POST("/chat/send", h.send)
}

// 管理画面側のルート（ガード付きグループに登録する）
func (h *ChatHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/chats", h.adminChats)
}

// WebSocketフィード（e直下に登録する）
func (h *ChatHandler) RegisterWS(e *echo.Echo) {
	e.GET("/ws/admin/chats", h.hub.Serve)
}

func (h *ChatHandler) status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Status(c.Request().Context()))
}

// 失敗時も空配列（既存クライアントの挙動に合わせる）
func (h *ChatHandler) history(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusOK, []model.ChatMessage{})
	}
	return c.JSON(http.StatusOK, h.uc.History(c.Request().Context(), userID))
}

func (h *ChatHandler) send(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	msg, err := h.uc.Send(c.Request().Context(), usecase.SendMessageInput{
		UserID: req.UserID,
		Sender: model.ChatSender(req.Sender),
		Text:   req.Text,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *ChatHandler) adminChats(c echo.Context) error {
	out, err := h.uc.AdminChatUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
