package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 全件をid昇順で返す（ページングなし）
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// name/category/price/stock を上書き。対象が無ければ ErrNotFound。
	Update(ctx context.Context, p model.Product) error
	// 冪等削除。対象が無くてもエラーにしない。
	Delete(ctx context.Context, id int64) error
}
