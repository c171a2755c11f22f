package model

import "time"

// サイト全体へのレビュー（商品には紐付かない）
type SiteReview struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:userId" json:"userId"`
	UserName  string    `gorm:"column:userName;type:varchar(255)" json:"userName"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
