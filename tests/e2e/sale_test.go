package e2e

import (
	"net/http"
	"strings"
	"testing"
)

func TestRecordSaleDecrementsStock(t *testing.T) {
	c := NewTestClient(t)

	p := createProduct(t, c, uniqueName("Kopi"), "Coffee", 18000, 50)

	var ok SuccessResponse
	status := c.PostJSON(t, "/api/transaction", map[string]any{
		"items": []map[string]any{
			{"id": p.ID, "name": p.Name, "qty": 2},
		},
		"total": 36000,
	}, &ok)
	if status != http.StatusOK || !ok.Success {
		t.Fatalf("record sale: status %d", status)
	}
	if !strings.HasPrefix(ok.TrxID, "TRX-") {
		t.Fatalf("unexpected trx_id %q", ok.TrxID)
	}

	after, found := findProduct(c.ListProducts(t), p.ID)
	if !found {
		t.Fatalf("product disappeared")
	}
	if after.Stock != 48 {
		t.Fatalf("expected stock 48, got %d", after.Stock)
	}
}

func TestRecordSaleInsufficientStockRollsBack(t *testing.T) {
	c := NewTestClient(t)

	p := createProduct(t, c, uniqueName("V60"), "Coffee", 22000, 48)

	var errResp ErrorResponse
	status := c.PostJSON(t, "/api/transaction", map[string]any{
		"items": []map[string]any{
			{"id": p.ID, "qty": 1000},
		},
		"total": 22000000,
	}, &errResp)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if !strings.Contains(errResp.Error, "insufficient stock") {
		t.Fatalf("unexpected error %q", errResp.Error)
	}

	after, _ := findProduct(c.ListProducts(t), p.ID)
	if after.Stock != 48 {
		t.Fatalf("stock changed on failed sale: %d", after.Stock)
	}
}

// 途中の明細で失敗したら、先に通った明細の減算も残らない
func TestRecordSaleFailedLaterItemLeavesEarlierUntouched(t *testing.T) {
	c := NewTestClient(t)

	p := createProduct(t, c, uniqueName("Roti"), "Snack", 15000, 25)

	var errResp ErrorResponse
	status := c.PostJSON(t, "/api/transaction", map[string]any{
		"items": []map[string]any{
			{"id": p.ID, "qty": 2},
			{"id": 999999, "qty": 1},
		},
		"total": 30000,
	}, &errResp)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", status, errResp.Error)
	}

	after, _ := findProduct(c.ListProducts(t), p.ID)
	if after.Stock != 25 {
		t.Fatalf("earlier item's decrement leaked: stock %d", after.Stock)
	}
}

func TestRecordSaleRejectsEmptyItems(t *testing.T) {
	c := NewTestClient(t)

	var errResp ErrorResponse
	status := c.PostJSON(t, "/api/transaction", map[string]any{
		"items": []map[string]any{},
		"total": 0,
	}, &errResp)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}
