package repository

import (
	"context"

	"app/internal/domain/model"
)

type CallRequestRepository interface {
	Create(ctx context.Context, req model.CallRequest) error
	//新しい順
	List(ctx context.Context) ([]model.CallRequest, error)
	UpdateStatus(ctx context.Context, id int64, status model.CallRequestStatus) error
}
