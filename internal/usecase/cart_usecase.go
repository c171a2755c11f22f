package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/cart"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はミラーされたカートスナップショットの保存と復元。
// カート本体はクライアントが持ち、サーバー側はユーザー行のJSON文字列だけ
type CartUsecase struct {
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(userRepo repo.UserRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// PUT /users/:id/cart の1行分
type SnapshotLineInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// SaveSnapshot はクライアントのカートを軽量スナップショットにして
// ユーザー行に上書きする。商品IDと画像は意図的に落とす
func (u *CartUsecase) SaveSnapshot(ctx context.Context, userID int64, lines []SnapshotLineInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	ls := make(cart.Lines, 0, len(lines))
	for _, l := range lines {
		ls = append(ls, cart.Line{
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	raw, err := cart.EncodeSnapshot(ls)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := u.userRepo.SaveCartData(ctx, userID, raw); err != nil {
		if err == repo.ErrUserNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Restore はスナップショットを現在のカタログと突き合わせて復元する。
// カタログ取得に失敗したら空カートを返す（ログイン自体は通す）
func (u *CartUsecase) Restore(ctx context.Context, user *model.User) cart.Lines {
	if user == nil || user.CartData == "" {
		return cart.Lines{}
	}

	catalog, err := u.productRepo.List(ctx)
	if err != nil {
		return cart.Lines{}
	}

	return cart.Rehydrate(user.CartData, catalog)
}
