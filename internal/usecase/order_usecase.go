package usecase

import (
	"context"
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/invoice"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

// チェックアウト対象として選択されたカート行（カート全体とは限らない）
type CheckoutItemInput struct {
	ProductID string
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	Image     string
}

type CheckoutInput struct {
	UserID    int64
	Items     []CheckoutItemInput
	Total     decimal.Decimal
	PaymentID string
}

// Checkout は確認済みの支払いと選択行から注文を確定させる。
// 1トランザクションで Order 1件 + OrderItem N件を作成し、
// 商品表示項目はこの時点の値をスナップショットする。
//
// そのあとミラーされたカートは「全部」クリアする。選択外の行も
// サーバー側からは消える（クライアント側には次の同期まで残る）。
// 既存挙動の踏襲であり、ここでは直さない。
//
// totalはクライアント計算値をそのまま信頼する（明細合計との照合は無い）
func (u *OrderUsecase) Checkout(ctx context.Context, in CheckoutInput) (int64, error) {
	if in.UserID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if len(in.Items) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "no items selected")
	}
	if in.Total.Sign() <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid total")
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, model.Order{
			UserID:      in.UserID,
			TotalAmount: in.Total,
			Status:      model.OrderStatusPaid,
			PaymentID:   in.PaymentID,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, model.OrderItem{
				ProductID:   parseProductID(it.ProductID),
				ProductName: it.Name,
				Quantity:    it.Quantity,
				Price:       it.Price,
				Image:       it.Image,
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//ミラーされたカートを丸ごとクリア
		if err := r.Users().SaveCartData(ctx, in.UserID, "[]"); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// 自分の注文一覧（明細込み・日付降順）
func (u *OrderUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var orders []model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, err = r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// RenderInvoice は注文を請求書テキストにする。他人の注文は404扱い
func (u *OrderUsecase) RenderInvoice(ctx context.Context, userID int64, orderID int64) (string, error) {
	if userID <= 0 || orderID <= 0 {
		return "", NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var doc string
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		user, err := r.Users().FindByID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		doc = invoice.Render(o.ID, *user, o.Items, o.TotalAmount, o.PaymentID, o.Date)
		return nil
	})
	if err != nil {
		return "", err
	}
	return doc, nil
}

// クライアントのカート行IDは文字列（復元時のプレースホルダはUUID）。
// 数値に読めないIDは0＝カタログ参照なしとして保存する
func parseProductID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
