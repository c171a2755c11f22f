package model

import "time"

// 商品レビュー
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"column:productId;not null;index" json:"productId"`
	UserID    int64     `gorm:"column:userId" json:"userId"`
	UserName  string    `gorm:"column:userName;type:varchar(255)" json:"userName"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Date      time.Time `gorm:"type:date;not null;autoCreateTime" json:"date"`
}
