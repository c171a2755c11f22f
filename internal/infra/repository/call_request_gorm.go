package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CallRequestGormRepository struct {
	db *gorm.DB
}

func NewCallRequestGormRepository(db *gorm.DB) *CallRequestGormRepository {
	return &CallRequestGormRepository{db: db}
}

func (r *CallRequestGormRepository) Create(ctx context.Context, req model.CallRequest) error {
	return r.db.WithContext(ctx).Create(&req).Error
}

func (r *CallRequestGormRepository) List(ctx context.Context) ([]model.CallRequest, error) {
	var reqs []model.CallRequest
	err := r.db.WithContext(ctx).
		Order("createdAt desc").
		Find(&reqs).Error
	if err != nil {
		return []model.CallRequest{}, err
	}
	return reqs, nil
}

func (r *CallRequestGormRepository) UpdateStatus(ctx context.Context, id int64, status model.CallRequestStatus) error {
	res := r.db.WithContext(ctx).Model(&model.CallRequest{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
