package model

import "time"

// 会員。cart_data にカートのスナップショット（JSON文字列）を持つ
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"type:varchar(30)" json:"phone"`
	PasswordHash string `gorm:"column:password_hash" json:"-"`

	// 名前・価格・数量だけの軽量スナップショット（商品IDは持たない）
	CartData string `gorm:"column:cart_data;type:text" json:"-"`

	IsAdmin bool `gorm:"not null;default:false" json:"is_admin"`
	IsPrime bool `gorm:"not null;default:false" json:"is_prime"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
