package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// 売上1件あたりの明細行（商品名は購入時点のスナップショット）
type TransactionItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

// transactions.items（JSONB）との変換
type TransactionItems []TransactionItem

func (items TransactionItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *TransactionItems) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported items column type %T", src)
	}
}

// 売上履歴。作成されたら更新・削除はしない。
type Transaction struct {
	TrxID string           `gorm:"type:varchar(64);primaryKey" json:"trx_id"`
	Date  time.Time        `gorm:"not null;autoCreateTime;index" json:"date"`
	Items TransactionItems `gorm:"type:jsonb;not null" json:"items"`
	Total int64            `gorm:"not null" json:"total"`
}
