package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// カート行IDは数値でもUUID文字列でも受ける
func TestStringOrNumber_Unmarshal(t *testing.T) {
	var req CreateOrderRequest
	body := `{
		"userId": 10,
		"items": [
			{"id": 3, "name": "Hammer", "qty": 2, "price": "250.00"},
			{"id": "1c0d6a4e-2b8f-4f6f-9c33-0c4f8f1a2b3c", "name": "Old Saw", "qty": 1, "price": 500}
		],
		"total": "1000.00",
		"paymentId": "pay_x"
	}`

	err := json.Unmarshal([]byte(body), &req)
	assert.NoError(t, err)
	assert.Equal(t, StringOrNumber("3"), req.Items[0].ID)
	assert.Equal(t, StringOrNumber("1c0d6a4e-2b8f-4f6f-9c33-0c4f8f1a2b3c"), req.Items[1].ID)
	assert.Equal(t, "250.00", req.Items[0].Price.StringFixed(2))
	assert.Equal(t, "500.00", req.Items[1].Price.StringFixed(2))
}

func TestStringOrNumber_RejectsObjects(t *testing.T) {
	var s StringOrNumber
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}
