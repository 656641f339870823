package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"foodmgmt/internal/domain/model"
)

// FoodItems は商品一覧をxlsxにして返す。カテゴリ・仕入先は名前を解決済みの前提。
func FoodItems(items []model.FoodItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "FoodItems"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	// デフォルトのSheet1は残さない
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Name", "Category", "Supplier", "Price", "Stock"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, item := range items {
		category := ""
		if item.Category != nil {
			category = item.Category.Name
		}
		supplier := ""
		if item.Supplier != nil {
			supplier = item.Supplier.Name
		}

		values := []interface{}{
			item.Name,
			category,
			supplier,
			item.Price.InexactFloat64(),
			item.Stock,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf, nil
}
