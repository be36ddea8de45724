package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionItems_ValueAndScan(t *testing.T) {
	items := TransactionItems{
		{ProductID: 1, Name: "Kopi Susu Senja", Quantity: 2},
		{ProductID: 4, Name: "Nasi Goreng", Quantity: 1},
	}

	v, err := items.Value()
	assert.NoError(t, err)

	raw, ok := v.([]byte)
	assert.True(t, ok)

	var got TransactionItems
	assert.NoError(t, got.Scan(raw))
	assert.Equal(t, items, got)

	//pgxはtextとして返すこともある
	var fromString TransactionItems
	assert.NoError(t, fromString.Scan(string(raw)))
	assert.Equal(t, items, fromString)
}

func TestTransactionItems_ScanRejectsUnknownType(t *testing.T) {
	var items TransactionItems
	assert.Error(t, items.Scan(42))
}
