package db

import (
	"pos/internal/domain/model"

	"gorm.io/gorm"
)

// 初回起動時に products が空のとき投入する初期カタログ。
var seedCatalog = []model.Product{
	{Name: "Kopi Susu Senja", Category: "Coffee", Price: 18000, Stock: 50},
	{Name: "V60 Arabika", Category: "Coffee", Price: 22000, Stock: 30},
	{Name: "Green Tea Latte", Category: "Non-Coffee", Price: 24000, Stock: 40},
	{Name: "Nasi Goreng", Category: "Makanan", Price: 30000, Stock: 20},
	{Name: "Roti Bakar", Category: "Snack", Price: 15000, Stock: 25},
}

// Init はテーブル作成とシーディングを行う。毎回実行しても安全。
func Init(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Transaction{},
	); err != nil {
		return err
	}

	// productsが空のときだけ初期データを入れる
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := make([]model.Product, len(seedCatalog))
	copy(products, seedCatalog)
	return gormDB.Create(&products).Error
}
