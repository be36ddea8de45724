package usecase

import (
	"context"
	"fmt"
	"net/http"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

// trx_id用のID生成（実装はuuid）
type IDGenerator interface {
	NewID() string
}

// 在庫不足。どの商品が・いくつ要求されて・いくつ残っているか。
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

type SaleUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
}

func NewSaleUsecase(tx repo.TransactionManager, idGen IDGenerator) *SaleUsecase {
	return &SaleUsecase{tx: tx, idGen: idGen}
}

type SaleItemInput struct {
	ProductID int64
	Quantity  int64
}

type RecordSaleInput struct {
	Items []SaleItemInput
	Total int64
}

type RecordSaleOutput struct {
	TrxID string `json:"trx_id"`
}

// RecordSaleは売上を1トランザクションで確定する。
// 全明細の在庫減算と履歴1行の作成が全部成功するか、全部なかったことになるか。
func (u *SaleUsecase) RecordSale(ctx context.Context, in RecordSaleInput) (RecordSaleOutput, error) {
	if len(in.Items) == 0 {
		return RecordSaleOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}
	if in.Total < 0 {
		return RecordSaleOutput{}, NewHTTPError(http.StatusBadRequest, "total must be >= 0")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return RecordSaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
		}
		if it.Quantity <= 0 {
			return RecordSaleOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
		}
	}

	trxID := "TRX-" + u.idGen.NewID()

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		lines := make(model.TransactionItems, 0, len(in.Items))

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", it.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if p.Stock < it.Quantity {
				return &InsufficientStockError{
					ProductID: p.ID,
					Name:      p.Name,
					Requested: it.Quantity,
					Available: p.Stock,
				}
			}

			//在庫減算（条件付きUPDATEなので負にはならない）
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				//読み取りと減算の間に他の売上が先に減らしたケース
				avail := p.Stock
				if cur, ferr := r.Products().FindByID(ctx, it.ProductID); ferr == nil {
					avail = cur.Stock
				}
				return &InsufficientStockError{
					ProductID: p.ID,
					Name:      p.Name,
					Requested: it.Quantity,
					Available: avail,
				}
			}

			//商品名は売上時点のスナップショット
			lines = append(lines, model.TransactionItem{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  it.Quantity,
			})
		}

		if err := r.Transactions().Create(ctx, model.Transaction{
			TrxID: trxID,
			Items: lines,
			Total: in.Total,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return RecordSaleOutput{}, err
	}
	return RecordSaleOutput{TrxID: trxID}, nil
}
