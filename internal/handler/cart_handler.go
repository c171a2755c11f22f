package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ミラーされたカートスナップショットのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type cartLineRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int64           `json:"qty"`
}

type SaveCartRequest struct {
	Cart []cartLineRequest `json:"cart"`
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.PUT("/users/:id/cart", h.saveCart)
}

// PUT /users/:id/cart
// 失敗してもクライアントはリトライしない（best effortな同期）
func (h *CartHandler) saveCart(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req SaveCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	lines := make([]usecase.SnapshotLineInput, 0, len(req.Cart))
	for _, l := range req.Cart {
		lines = append(lines, usecase.SnapshotLineInput{
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Qty,
		})
	}

	if err := h.uc.SaveSnapshot(c.Request().Context(), userID, lines); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
