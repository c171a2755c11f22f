package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusPaid       OrderStatus = "Paid"
)

// 確定した注文。作成後はステータスを含めて一切遷移しない
type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64           `gorm:"column:userId;not null;index" json:"userId"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'Processing'" json:"status"`
	PaymentID   string          `gorm:"column:payment_id;type:varchar(255)" json:"payment_id"`
	Date        time.Time       `gorm:"not null;autoCreateTime" json:"date"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}
