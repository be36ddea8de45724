package model

type Product struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Category string `gorm:"type:varchar(100);not null" json:"category"`
	Price    int64  `gorm:"not null" json:"price"`
	Stock    int64  `gorm:"not null" json:"stock"`
}
