package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールか電話番号からユーザーを1件取得する
	FindByContact(ctx context.Context, contact string) (*model.User, error)
	//メールからユーザーを1件取得する
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//一覧（管理画面用）
	List(ctx context.Context) ([]model.User, error)
	// 名前・電話などの更新
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID int64) error

	//ミラーされたカートスナップショットの書き込み（last write wins）
	SaveCartData(ctx context.Context, userID int64, cartData string) error
}
