package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// カート行のIDは数値（カタログ参照）のことも文字列（復元時の
// プレースホルダUUID）のこともあるので両方受ける
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = StringOrNumber(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = StringOrNumber(n.String())
	return nil
}

type orderItemRequest struct {
	ID    StringOrNumber  `json:"id"`
	Name  string          `json:"name"`
	Qty   int64           `json:"qty"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type CreateOrderRequest struct {
	UserID    int64              `json:"userId"`
	Items     []orderItemRequest `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	PaymentID string             `json:"paymentId"`
}

type CreateOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}

// DECIMAL(10,2)は常に小数2桁の文字列で返す
type orderItemResponse struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

type orderResponse struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"userId"`
	TotalAmount string              `json:"total_amount"`
	Status      string              `json:"status"`
	PaymentID   string              `json:"payment_id"`
	Date        time.Time           `json:"date"`
	Items       []orderItemResponse `json:"order_items"`
}

func toOrderResponse(o model.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ID:          it.ID,
			OrderID:     it.OrderID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price.StringFixed(2),
			Image:       it.Image,
		})
	}

	return orderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount.StringFixed(2),
		Status:      string(o.Status),
		PaymentID:   o.PaymentID,
		Date:        o.Date,
		Items:       items,
	}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", h.create)
	g.GET("/orders/:userId", h.listByUser)
	g.GET("/orders/:userId/:orderId/invoice", h.invoice)
}

// POST /orders
func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.CheckoutItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.CheckoutItemInput{
			ProductID: string(it.ID),
			Name:      it.Name,
			Quantity:  it.Qty,
			Price:     it.Price,
			Image:     it.Image,
		})
	}

	orderID, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		UserID:    req.UserID,
		Items:     items,
		Total:     req.Total,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CreateOrderResponse{Success: true, OrderID: orderID})
}

// GET /orders/:userId
func (h *OrderHandler) listByUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	orders, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, out)
}

// GET /orders/:userId/:orderId/invoice（プレーンテキスト）
func (h *OrderHandler) invoice(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	orderID, err := paramID(c, "orderId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	doc, err := h.uc.RenderInvoice(c.Request().Context(), userID, orderID)
	if err != nil {
		return writeError(c, err)
	}

	name := "Invoice_" + strings.TrimSpace(c.Param("orderId")) + ".txt"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.String(http.StatusOK, doc)
}
