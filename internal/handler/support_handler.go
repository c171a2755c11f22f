package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SupportHandler struct {
	uc *usecase.SupportUsecase
}

func NewSupportHandler(uc *usecase.SupportUsecase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

type CallRequestRequest struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

func (h *SupportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/support/call-request", h.create)
}

func (h *SupportHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/call-requests", h.list)
	g.PUT("/call-requests/:id", h.markCalled)
}

func (h *SupportHandler) create(c echo.Context) error {
	var req CallRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.CreateCallRequest(c.Request().Context(), usecase.CallRequestInput{
		UserID: req.UserID,
		Name:   req.Name,
		Phone:  req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *SupportHandler) list(c echo.Context) error {
	out, err := h.uc.ListCallRequests(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SupportHandler) markCalled(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.MarkCalled(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
