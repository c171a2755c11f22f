package model

import "github.com/shopspring/decimal"

// 商品。管理者の操作でのみ更新される
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Category    string          `gorm:"type:varchar(255);not null" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	Image       string          `gorm:"type:varchar(500)" json:"image"`
	Description string          `gorm:"type:text" json:"description"`
}
