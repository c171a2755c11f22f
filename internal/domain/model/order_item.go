package model

import "github.com/shopspring/decimal"

// 注文明細。商品名・価格・画像は注文時点のスナップショット。
// 後からカタログが編集されても過去の注文は変わらない。
type OrderItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64           `gorm:"column:orderId;not null;index" json:"orderId"`
	ProductID   int64           `gorm:"column:productId" json:"productId"`
	ProductName string          `gorm:"column:product_name;type:varchar(255)" json:"product_name"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image       string          `gorm:"type:varchar(500)" json:"image"`
}
