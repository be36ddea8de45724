package repository

import (
	"context"

	"pos/internal/domain/model"

	"gorm.io/gorm"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

// 売上履歴の作成
func (r *TransactionGormRepository) Create(ctx context.Context, trx model.Transaction) error {
	if err := r.db.WithContext(ctx).Create(&trx).Error; err != nil {
		return err
	}
	return nil
}
