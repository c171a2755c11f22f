package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("productId = ?", productID).
		Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return []model.Review{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) Create(ctx context.Context, review model.Review) error {
	return r.db.WithContext(ctx).Create(&review).Error
}

type SiteReviewGormRepository struct {
	db *gorm.DB
}

func NewSiteReviewGormRepository(db *gorm.DB) *SiteReviewGormRepository {
	return &SiteReviewGormRepository{db: db}
}

func (r *SiteReviewGormRepository) List(ctx context.Context) ([]model.SiteReview, error) {
	var reviews []model.SiteReview
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return []model.SiteReview{}, err
	}
	return reviews, nil
}

func (r *SiteReviewGormRepository) Create(ctx context.Context, review model.SiteReview) (model.SiteReview, error) {
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return model.SiteReview{}, err
	}
	return review, nil
}
