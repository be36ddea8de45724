package repository

import (
	"context"
	"time"

	"pos/internal/domain/model"

	"gorm.io/gorm"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

// 商品の総数
func (r *StatsGormRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// since以降の売上件数と売上合計。0件のときrevenueは0。
func (r *StatsGormRepository) SalesSince(ctx context.Context, since time.Time) (int64, int64, error) {
	var row struct {
		Count   int64
		Revenue int64
	}

	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Where("date >= ?", since).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}

	return row.Count, row.Revenue, nil
}
