package repository

import (
	"context"
	"time"
)

// ダッシュボード用の読み取り専用集計
type StatsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	// since以降の売上件数と売上合計。該当なしなら revenue は 0。
	SalesSince(ctx context.Context, since time.Time) (count int64, revenue int64, err error)
}
