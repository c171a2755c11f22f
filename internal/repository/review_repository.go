package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	//商品レビュー（新しい順）
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, r model.Review) error
}

type SiteReviewRepository interface {
	//サイトレビュー（新しい順）
	List(ctx context.Context) ([]model.SiteReview, error)
	Create(ctx context.Context, r model.SiteReview) (model.SiteReview, error)
}
