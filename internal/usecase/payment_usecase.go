package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/infra/payment"

	"github.com/shopspring/decimal"
)

// 外部決済ゲートウェイへの不透明な境界
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal) (payment.GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type PaymentUsecase struct {
	gateway PaymentGateway
}

func NewPaymentUsecase(gateway PaymentGateway) *PaymentUsecase {
	return &PaymentUsecase{gateway: gateway}
}

// CreateSession は支払いセッションを作成してゲートウェイの注文を返す。
// amountは主要通貨単位（ルピー）のまま渡す
func (u *PaymentUsecase) CreateSession(ctx context.Context, amount decimal.Decimal) (payment.GatewayOrder, error) {
	if amount.Sign() <= 0 {
		return payment.GatewayOrder{}, NewHTTPError(http.StatusBadRequest, "amount must be positive")
	}

	order, err := u.gateway.CreateOrder(ctx, amount)
	if err != nil {
		return payment.GatewayOrder{}, NewHTTPError(http.StatusInternalServerError, "payment gateway error")
	}
	return order, nil
}

// Verify は署名付き確定コールバックを検証する。
// 不一致はエラーではなくfalse（補償処理は存在しない）
func (u *PaymentUsecase) Verify(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(paymentID) == "" || strings.TrimSpace(signature) == "" {
		return false, NewHTTPError(http.StatusBadRequest, "missing payment fields")
	}

	return u.gateway.VerifySignature(orderID, paymentID, signature), nil
}
