package cart

import (
	"encoding/json"
	"strconv"

	"app/internal/domain/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// カートの1行。商品参照はFKではなく、名前・価格のスナップショット
type Line struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int64           `json:"qty"`
}

// カート本体。商品IDは行内で一意、数量は常に1以上
type Lines []Line

// Add は同一商品なら数量+1、無ければ数量1で末尾に追加する
func (ls Lines) Add(p model.Product) Lines {
	id := idString(p.ID)
	for i, l := range ls {
		if l.ProductID == id {
			ls[i].Quantity++
			return ls
		}
	}
	return append(ls, Line{
		ProductID: id,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Decrease は数量-1。0になった行は残さず取り除く
func (ls Lines) Decrease(productID string) Lines {
	out := ls[:0]
	for _, l := range ls {
		if l.ProductID == productID {
			l.Quantity--
		}
		if l.Quantity >= 1 {
			out = append(out, l)
		}
	}
	return out
}

// Remove は数量に関わらず行を削除する
func (ls Lines) Remove(productID string) Lines {
	out := ls[:0]
	for _, l := range ls {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}

// Clear は空のカートを返す
func (ls Lines) Clear() Lines {
	return Lines{}
}

// 合計金額
func (ls Lines) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}

// snapshotEntry はユーザー行に保存する形。
// 商品IDと画像は落とす（ロード時にカタログと突き合わせて復元する）。
// Quantityキーの大文字は既存データとの互換のため変えない。
type snapshotEntry struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"Quantity"`
}

// EncodeSnapshot はカートをユーザー行向けのJSON文字列にする
func EncodeSnapshot(ls Lines) (string, error) {
	entries := make([]snapshotEntry, 0, len(ls))
	for _, l := range ls {
		entries = append(entries, snapshotEntry{
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Rehydrate はスナップショットを現在のカタログと突き合わせてカートに戻す。
// 商品名の完全一致で解決する。改名・削除済みの商品は一致せず、
// 代わりにUUIDのプレースホルダIDと空imageの行になる（データ欠損は仕様）。
// 壊れたJSONは空カート扱いでエラーにしない。
func Rehydrate(raw string, catalog []model.Product) Lines {
	if raw == "" {
		return Lines{}
	}

	var entries []snapshotEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return Lines{}
	}

	out := make(Lines, 0, len(entries))
	for _, e := range entries {
		line := Line{
			ProductID: uuid.NewString(),
			Name:      e.Name,
			Price:     e.Price,
			Quantity:  e.Quantity,
		}
		for _, p := range catalog {
			if p.Name == e.Name {
				line.ProductID = idString(p.ID)
				line.Image = p.Image
				break
			}
		}
		out = append(out, line)
	}
	return out
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
