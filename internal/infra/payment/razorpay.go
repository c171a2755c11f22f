package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ゲートウェイが返す注文オブジェクト。クライアント側のチェックアウトに渡す
type GatewayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type gatewayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Razorpay REST APIのクライアント
type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

// DI。baseURLが空ならRazorpay本番エンドポイント
func NewRazorpayClient(keyID, keySecret, baseURL string) *RazorpayClient {
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateOrder は支払いセッションを作成する。
// amountは主要通貨単位（ルピー）で受け取り、ここでpaiseへ正確に変換する。
// ×100の単位変換はここ1箇所だけで行う。
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount decimal.Decimal) (GatewayOrder, error) {
	paise := amount.Mul(decimal.NewFromInt(100))
	if !paise.IsInteger() {
		return GatewayOrder{}, fmt.Errorf("amount has sub-paise precision: %s", amount.String())
	}
	if paise.Sign() <= 0 {
		return GatewayOrder{}, fmt.Errorf("amount must be positive")
	}

	payload := map[string]interface{}{
		"amount":   paise.IntPart(),
		"currency": "INR",
		"receipt":  "order_" + uuid.NewString(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return GatewayOrder{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return GatewayOrder{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return GatewayOrder{}, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return GatewayOrder{}, err
	}

	if resp.StatusCode != http.StatusOK {
		var ge gatewayError
		if err := json.Unmarshal(respBody, &ge); err == nil && ge.Error.Description != "" {
			return GatewayOrder{}, fmt.Errorf("gateway error: %s", ge.Error.Description)
		}
		return GatewayOrder{}, fmt.Errorf("gateway error (%d)", resp.StatusCode)
	}

	var order GatewayOrder
	if err := json.Unmarshal(respBody, &order); err != nil {
		return GatewayOrder{}, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if order.ID == "" {
		return GatewayOrder{}, fmt.Errorf("gateway returned empty order id")
	}

	return order, nil
}

// VerifySignature は確定コールバックの署名を検証する。
// HMAC-SHA256("orderID|paymentID", keySecret) と比較。比較は定数時間
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
