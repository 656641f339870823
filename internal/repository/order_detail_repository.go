package repository

import (
	"context"

	"foodmgmt/internal/domain/model"
)

type OrderDetailRepository interface {
	CreateBulk(ctx context.Context, orderID int64, details []model.OrderDetail) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
	CountByFoodItemID(ctx context.Context, foodItemID int64) (int64, error)
}
