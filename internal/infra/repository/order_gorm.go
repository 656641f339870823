package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindByIDWithDetails(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Preload("Details.FoodItem").
		First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 未完了の注文。searchは顧客名または注文IDの部分一致。
func (r *OrderGormRepository) ListPending(ctx context.Context, search string) ([]model.Order, error) {
	tx := r.db.WithContext(ctx).Model(&model.Order{}).
		Preload("Customer").
		Preload("Details").
		Preload("Details.FoodItem").
		Where("orders.is_completed = ?", false)

	if strings.TrimSpace(search) != "" {
		like := "%" + strings.TrimSpace(search) + "%"
		tx = tx.
			Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
			Where("customers.full_name ILIKE ? OR CAST(orders.id AS TEXT) LIKE ?", like, like)
	}

	var orders []model.Order
	if err := tx.Order("orders.order_date desc").Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListCompleted(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Preload("Details.FoodItem").
		Where("is_completed = ?", true).
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return 0, translateError(err)
	}
	return o.ID, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, o model.Order) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"customer_id": o.CustomerID,
		"order_date":  o.OrderDate,
		"grand_total": o.GrandTotal,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 完了フラグを立てる（冪等）
func (r *OrderGormRepository) MarkCompleted(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("is_completed", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *OrderGormRepository) CountCompleted(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("is_completed = ?", true).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *OrderGormRepository) CountByCustomerID(ctx context.Context, customerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("customer_id = ?", customerID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
