package repository

import (
	"context"

	"foodmgmt/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (model.Order, error)
	// 顧客と明細（商品込み）を解決して返す
	FindByIDWithDetails(ctx context.Context, id int64) (model.Order, error)
	ListPending(ctx context.Context, search string) ([]model.Order, error)
	ListCompleted(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, o model.Order) (int64, error)
	Update(ctx context.Context, o model.Order) error
	MarkCompleted(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
	CountByCustomerID(ctx context.Context, customerID int64) (int64, error)
}
