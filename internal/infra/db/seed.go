package db

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodmgmt/internal/domain/model"
)

// Seed は空のDBに初期データを入れる。既にデータがあれば何もしない。
func Seed(gormDB *gorm.DB) error {
	var n int64
	if err := gormDB.Model(&model.Category{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		categories := []model.Category{
			{Name: "Beverages", Description: "Drinks"},
			{Name: "Snacks", Description: "Quick bites"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		supplier := model.Supplier{Name: "Local Supplier", Phone: "9800000000", Email: "local@supplier.com"}
		if err := tx.Create(&supplier).Error; err != nil {
			return err
		}

		items := []model.FoodItem{
			{
				Name:        "Tea",
				Description: "Hot beverage",
				Price:       decimal.NewFromFloat(1.5),
				Stock:       100,
				CategoryID:  categories[0].ID,
				SupplierID:  &supplier.ID,
			},
			{
				Name:        "Samosa",
				Description: "Fried snack",
				Price:       decimal.NewFromFloat(0.8),
				Stock:       50,
				CategoryID:  categories[1].ID,
				SupplierID:  &supplier.ID,
			},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		customer := model.Customer{FullName: "Sample Customer", Email: "cust@example.com", Phone: "9801111111"}
		return tx.Create(&customer).Error
	})
}
