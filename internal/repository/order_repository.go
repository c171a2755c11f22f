package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//明細込み・日付降順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
