package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type CreatePaymentRequest struct {
	//主要通貨単位（ルピー）
	Amount decimal.Decimal `json:"amount"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/payment/create", h.create)
	g.POST("/payment/verify", h.verify)
}

// POST /payment/create
func (h *PaymentHandler) create(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, err := h.uc.CreateSession(c.Request().Context(), req.Amount)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// POST /payment/verify
// 署名不一致は400 {success:false}。補償処理は無い
func (h *PaymentHandler) verify(c echo.Context) error {
	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	ok, err := h.uc.Verify(c.Request().Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, SuccessResponse{Success: false})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
