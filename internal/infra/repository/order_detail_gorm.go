package repository

import (
	"context"

	"gorm.io/gorm"

	"foodmgmt/internal/domain/model"
)

type OrderDetailGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderDetailGormRepository(db *gorm.DB) *OrderDetailGormRepository {
	return &OrderDetailGormRepository{db: db}
}

func (r *OrderDetailGormRepository) CreateBulk(ctx context.Context, orderID int64, details []model.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	for i := range details {
		details[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&details).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *OrderDetailGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	var details []model.OrderDetail
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&details).Error
	if err != nil {
		return []model.OrderDetail{}, err
	}
	return details, nil
}

func (r *OrderDetailGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderDetail{}).Error
}

func (r *OrderDetailGormRepository) CountByFoodItemID(ctx context.Context, foodItemID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrderDetail{}).
		Where("food_item_id = ?", foodItemID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
