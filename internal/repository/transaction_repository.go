package repository

import (
	"context"

	"pos/internal/domain/model"
)

// 売上履歴は作成のみ（更新・削除なし）
type TransactionRepository interface {
	Create(ctx context.Context, trx model.Transaction) error
}
