package repository

import (
	"context"

	"foodmgmt/internal/domain/model"
)

type CustomerRepository interface {
	List(ctx context.Context, search string) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
