package db

import (
	"pos/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
// 実際の接続は最初のクエリまで遅延する。DBが落ちていても起動は成功し、
// 以降のリクエストがエラーになる。
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		DisableAutomaticPing: true,
	})
}

// Close はプールを閉じる（shutdown用）。
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
