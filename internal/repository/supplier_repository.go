package repository

import (
	"context"

	"foodmgmt/internal/domain/model"
)

type SupplierRepository interface {
	List(ctx context.Context, search string) ([]model.Supplier, error)
	FindByID(ctx context.Context, id int64) (model.Supplier, error)
	Create(ctx context.Context, s model.Supplier) (model.Supplier, error)
	Update(ctx context.Context, s model.Supplier) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
