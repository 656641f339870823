package export_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"foodmgmt/internal/domain/model"
	"foodmgmt/internal/export"
)

func TestFoodItems_WritesRows(t *testing.T) {
	items := []model.FoodItem{
		{
			ID:       1,
			Name:     "Tea",
			Price:    decimal.NewFromFloat(1.50),
			Stock:    100,
			Category: &model.Category{Name: "Beverages"},
			Supplier: &model.Supplier{Name: "Chiyoda Foods"},
		},
		{
			ID:    2,
			Name:  "Samosa",
			Price: decimal.NewFromFloat(0.80),
			Stock: 50,
		},
	}

	buf, err := export.FoodItems(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"FoodItems"}, f.GetSheetList())

	rows, err := f.GetRows("FoodItems")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Category", "Supplier", "Price", "Stock"}, rows[0])

	assert.Equal(t, "Tea", rows[1][0])
	assert.Equal(t, "Beverages", rows[1][1])
	assert.Equal(t, "Chiyoda Foods", rows[1][2])
	assert.Equal(t, "1.5", rows[1][3])
	assert.Equal(t, "100", rows[1][4])

	assert.Equal(t, "Samosa", rows[2][0])
	// 参照未解決は空欄
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "", rows[2][2])
}

func TestFoodItems_EmptyListStillWritesHeader(t *testing.T) {
	buf, err := export.FoodItems(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("FoodItems")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Name", "Category", "Supplier", "Price", "Stock"}, rows[0])
}
