package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type FoodItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewFoodItemGormRepository(db *gorm.DB) *FoodItemGormRepository {
	return &FoodItemGormRepository{db: db}
}

// 商品名・カテゴリ名・仕入先名の部分一致で絞り込み。カテゴリと仕入先も解決して返す。
func (r *FoodItemGormRepository) List(ctx context.Context, search string) ([]model.FoodItem, error) {
	tx := r.db.WithContext(ctx).Model(&model.FoodItem{}).
		Preload("Category").
		Preload("Supplier")

	if strings.TrimSpace(search) != "" {
		like := "%" + strings.TrimSpace(search) + "%"
		tx = tx.
			Joins("LEFT JOIN categories ON categories.id = food_items.category_id").
			Joins("LEFT JOIN suppliers ON suppliers.id = food_items.supplier_id").
			Where("food_items.name ILIKE ? OR categories.name ILIKE ? OR suppliers.name ILIKE ?", like, like, like)
	}

	var items []model.FoodItem
	if err := tx.Order("food_items.name asc").Find(&items).Error; err != nil {
		return []model.FoodItem{}, err
	}
	return items, nil
}

func (r *FoodItemGormRepository) FindByID(ctx context.Context, id int64) (model.FoodItem, error) {
	var f model.FoodItem
	err := r.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FoodItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FoodItem{}, err
	}
	return f, nil
}

func (r *FoodItemGormRepository) Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.FoodItem{}, translateError(err)
	}
	return f, nil
}

func (r *FoodItemGormRepository) Update(ctx context.Context, f model.FoodItem) error {
	res := r.db.WithContext(ctx).Model(&model.FoodItem{}).Where("id = ?", f.ID).Updates(map[string]interface{}{
		"name":        f.Name,
		"description": f.Description,
		"price":       f.Price,
		"stock":       f.Stock,
		"category_id": f.CategoryID,
		"supplier_id": f.SupplierID,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *FoodItemGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.FoodItem{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *FoodItemGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.FoodItem{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *FoodItemGormRepository) CountByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FoodItem{}).
		Where("category_id = ?", categoryID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *FoodItemGormRepository) CountBySupplierID(ctx context.Context, supplierID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FoodItem{}).
		Where("supplier_id = ?", supplierID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

// 在庫僅少（threshold未満）の商品
func (r *FoodItemGormRepository) ListLowStock(ctx context.Context, threshold int64) ([]model.FoodItem, error) {
	var items []model.FoodItem
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock asc").
		Find(&items).Error
	if err != nil {
		return []model.FoodItem{}, err
	}
	return items, nil
}

// 在庫が足りるときだけ減らす
func (r *FoodItemGormRepository) DecreaseStockIfEnough(ctx context.Context, id int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.FoodItem{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し
func (r *FoodItemGormRepository) IncreaseStock(ctx context.Context, id int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.FoodItem{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
