package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo     repo.ReviewRepository
	siteReviewRepo repo.SiteReviewRepository
	productRepo    repo.ProductRepository
}

func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	siteReviewRepo repo.SiteReviewRepository,
	productRepo repo.ProductRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:     reviewRepo,
		siteReviewRepo: siteReviewRepo,
		productRepo:    productRepo,
	}
}

func (u *ReviewUsecase) ListProductReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

type CreateReviewInput struct {
	UserID   int64
	UserName string
	Rating   int
	Comment  string
}

func (u *ReviewUsecase) CreateProductReview(ctx context.Context, productID int64, in CreateReviewInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	//存在しない商品へのレビューは弾く
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err := u.reviewRepo.Create(ctx, model.Review{
		ProductID: productID,
		UserID:    in.UserID,
		UserName:  strings.TrimSpace(in.UserName),
		Rating:    in.Rating,
		Comment:   in.Comment,
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ReviewUsecase) ListSiteReviews(ctx context.Context) ([]model.SiteReview, error) {
	reviews, err := u.siteReviewRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) CreateSiteReview(ctx context.Context, in CreateReviewInput) (model.SiteReview, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return model.SiteReview{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	review, err := u.siteReviewRepo.Create(ctx, model.SiteReview{
		UserID:   in.UserID,
		UserName: strings.TrimSpace(in.UserName),
		Rating:   in.Rating,
		Comment:  in.Comment,
	})
	if err != nil {
		return model.SiteReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return review, nil
}
