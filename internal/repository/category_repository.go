package repository

import (
	"context"

	"foodmgmt/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context, search string) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
