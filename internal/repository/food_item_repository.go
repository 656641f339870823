package repository

import (
	"context"

	"foodmgmt/internal/domain/model"
)

type FoodItemRepository interface {
	// searchは商品名・カテゴリ名・仕入先名の部分一致
	List(ctx context.Context, search string) ([]model.FoodItem, error)
	FindByID(ctx context.Context, id int64) (model.FoodItem, error)
	Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error)
	Update(ctx context.Context, f model.FoodItem) error
	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
	CountByCategoryID(ctx context.Context, categoryID int64) (int64, error)
	CountBySupplierID(ctx context.Context, supplierID int64) (int64, error)
	ListLowStock(ctx context.Context, threshold int64) ([]model.FoodItem, error)

	// 在庫が足りるときだけ減らす
	DecreaseStockIfEnough(ctx context.Context, id int64, qty int64) (bool, error)
	// 在庫戻し（注文の編集・削除）
	IncreaseStock(ctx context.Context, id int64, qty int64) error
}
