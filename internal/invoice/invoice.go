package invoice

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 販売者の固定情報
const (
	sellerName    = "UMANG HARDWARE"
	sellerGSTIN   = "GSTIN: 10AAAAA0000A1Z5"
	sellerAddress = "Patna, Bihar, India - 800020"
	sellerContact = "Contact: +91 98765 43210"
)

// 通貨は常に "Rs." 固定（ロケール対応はしない）
func rs(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}

// Render は注文データから請求書テキストを作る純粋関数。
// 明細の金額は単価×数量の素朴な掛け算
func Render(orderID int64, user model.User, items []model.OrderItem, total decimal.Decimal, paymentID string, date time.Time) string {
	var b strings.Builder

	b.WriteString(sellerName + "\n")
	b.WriteString(sellerGSTIN + "\n")
	b.WriteString(sellerAddress + "\n")
	b.WriteString(sellerContact + "\n")
	b.WriteString(strings.Repeat("-", 60) + "\n\n")

	if paymentID == "" {
		paymentID = "COD"
	}

	b.WriteString("Bill To:\n")
	fmt.Fprintf(&b, "Name: %s\n", user.Name)
	fmt.Fprintf(&b, "Email: %s\n", user.Email)
	fmt.Fprintf(&b, "Order ID: #%d\n", orderID)
	fmt.Fprintf(&b, "Pay ID: %s\n", paymentID)
	fmt.Fprintf(&b, "Date: %s\n\n", date.Format("02/01/2006"))

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Item\tQty\tUnit Price\tTotal")
	for _, it := range items {
		extended := it.Price.Mul(decimal.NewFromInt(it.Quantity))
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", it.ProductName, it.Quantity, rs(it.Price), rs(extended))
	}
	w.Flush()

	b.WriteString("\n")
	fmt.Fprintf(&b, "Grand Total: %s\n", rs(total))

	return b.String()
}
