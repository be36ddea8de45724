package repository

import "context"

type InventoryRepository interface {
	// 在庫が足りるときだけ減算（減らせたら true）
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
