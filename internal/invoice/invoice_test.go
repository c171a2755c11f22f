package invoice

import (
	"testing"
	"time"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender_SellerHeader(t *testing.T) {
	doc := Render(1, model.User{Name: "Ravi", Email: "ravi@example.com"}, nil, decimal.Zero, "pay_x", time.Now())

	assert.Contains(t, doc, "UMANG HARDWARE\n")
	assert.Contains(t, doc, "GSTIN: 10AAAAA0000A1Z5\n")
	assert.Contains(t, doc, "Patna, Bihar, India - 800020\n")
	assert.Contains(t, doc, "Contact: +91 98765 43210\n")
}

func TestRender_BillToAndTotals(t *testing.T) {
	items := []model.OrderItem{
		{ProductName: "Hammer", Quantity: 2, Price: decimal.RequireFromString("250.00")},
		{ProductName: "Drill", Quantity: 1, Price: decimal.RequireFromString("2000.00")},
	}
	date := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

	doc := Render(42, model.User{Name: "Ravi", Email: "ravi@example.com"}, items, decimal.RequireFromString("2500.00"), "pay_abc123", date)

	assert.Contains(t, doc, "Name: Ravi\n")
	assert.Contains(t, doc, "Email: ravi@example.com\n")
	assert.Contains(t, doc, "Order ID: #42\n")
	assert.Contains(t, doc, "Pay ID: pay_abc123\n")
	assert.Contains(t, doc, "Date: 09/03/2025\n")

	//明細は単価×数量
	assert.Contains(t, doc, "Hammer")
	assert.Contains(t, doc, "Rs. 500.00")
	assert.Contains(t, doc, "Rs. 2000.00")

	assert.Contains(t, doc, "Grand Total: Rs. 2500.00\n")
}

func TestRender_EmptyPaymentIDBecomesCOD(t *testing.T) {
	doc := Render(7, model.User{Name: "Ravi"}, nil, decimal.Zero, "", time.Now())

	assert.Contains(t, doc, "Pay ID: COD\n")
}
