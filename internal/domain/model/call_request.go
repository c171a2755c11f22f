package model

import "time"

type CallRequestStatus string

const (
	CallRequestPending CallRequestStatus = "Pending"
	CallRequestCalled  CallRequestStatus = "Called"
)

// 折り返し電話の依頼
type CallRequest struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64             `gorm:"column:userId" json:"userId"`
	Name      string            `gorm:"type:varchar(255)" json:"name"`
	Phone     string            `gorm:"type:varchar(30)" json:"phone"`
	Status    CallRequestStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt time.Time         `gorm:"column:createdAt;not null;autoCreateTime" json:"createdAt"`
}
