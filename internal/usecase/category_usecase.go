package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	foodItemRepo repo.FoodItemRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository, foodItemRepo repo.FoodItemRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, foodItemRepo: foodItemRepo}
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func validateCategory(in CategoryInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if len(in.Name) > 100 {
		return NewHTTPError(http.StatusBadRequest, "name too long")
	}
	if len(in.Description) > 300 {
		return NewHTTPError(http.StatusBadRequest, "description too long")
	}
	return nil
}

func (u *CategoryUsecase) List(ctx context.Context, search string) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx, search)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	if err := validateCategory(in); err != nil {
		return model.Category{}, err
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Category{}, NewHTTPError(http.StatusConflict, "category already exists")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id int64, in CategoryInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateCategory(in); err != nil {
		return err
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
	// 並行して消されていたらnot foundで返す
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrDuplicate) {
		return NewHTTPError(http.StatusConflict, "category already exists")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 商品が紐付いている間は消せない。DB制約に任せず先に数える。
func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	n, err := u.foodItemRepo.CountByCategoryID(ctx, id)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return NewHTTPError(http.StatusConflict, "cannot delete category with existing food items")
	}

	err = u.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKey) {
		return NewHTTPError(http.StatusConflict, "cannot delete category with existing food items")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
