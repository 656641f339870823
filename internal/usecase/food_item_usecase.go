package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type FoodItemUsecase struct {
	foodItemRepo    repo.FoodItemRepository
	categoryRepo    repo.CategoryRepository
	supplierRepo    repo.SupplierRepository
	orderDetailRepo repo.OrderDetailRepository
}

// DI
func NewFoodItemUsecase(
	foodItemRepo repo.FoodItemRepository,
	categoryRepo repo.CategoryRepository,
	supplierRepo repo.SupplierRepository,
	orderDetailRepo repo.OrderDetailRepository,
) *FoodItemUsecase {
	return &FoodItemUsecase{
		foodItemRepo:    foodItemRepo,
		categoryRepo:    categoryRepo,
		supplierRepo:    supplierRepo,
		orderDetailRepo: orderDetailRepo,
	}
}

type FoodItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	CategoryID  int64           `json:"category_id"`
	SupplierID  *int64          `json:"supplier_id"`
}

var (
	minPrice = decimal.NewFromFloat(0.01)
	maxPrice = decimal.NewFromInt(100000)
)

func validateFoodItem(in FoodItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if len(in.Name) > 150 {
		return NewHTTPError(http.StatusBadRequest, "name too long")
	}
	if len(in.Description) > 500 {
		return NewHTTPError(http.StatusBadRequest, "description too long")
	}
	if in.Price.LessThan(minPrice) || in.Price.GreaterThan(maxPrice) {
		return NewHTTPError(http.StatusBadRequest, "price must be between 0.01 and 100000")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "category_id required")
	}
	if in.SupplierID != nil && *in.SupplierID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid supplier_id")
	}
	return nil
}

// カテゴリ必須・仕入先任意の参照を確認する
func (u *FoodItemUsecase) checkRefs(ctx context.Context, in FoodItemInput) error {
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "category not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.SupplierID != nil {
		if _, err := u.supplierRepo.FindByID(ctx, *in.SupplierID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "supplier not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}

func (u *FoodItemUsecase) List(ctx context.Context, search string) ([]model.FoodItem, error) {
	items, err := u.foodItemRepo.List(ctx, search)
	if err != nil {
		return []model.FoodItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *FoodItemUsecase) Get(ctx context.Context, id int64) (model.FoodItem, error) {
	if id <= 0 {
		return model.FoodItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	f, err := u.foodItemRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.FoodItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.FoodItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return f, nil
}

// 現在価格だけ返す読み取りAPI用
func (u *FoodItemUsecase) GetPrice(ctx context.Context, id int64) (decimal.Decimal, error) {
	f, err := u.Get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return f.Price, nil
}

func (u *FoodItemUsecase) Create(ctx context.Context, in FoodItemInput) (model.FoodItem, error) {
	if err := validateFoodItem(in); err != nil {
		return model.FoodItem{}, err
	}
	if err := u.checkRefs(ctx, in); err != nil {
		return model.FoodItem{}, err
	}

	f, err := u.foodItemRepo.Create(ctx, model.FoodItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.FoodItem{}, NewHTTPError(http.StatusConflict, "food item already exists")
	}
	if errors.Is(err, repo.ErrForeignKey) {
		// 事前チェックとのすき間で参照先が消えた場合
		return model.FoodItem{}, NewHTTPError(http.StatusConflict, "referenced category or supplier no longer exists")
	}
	if err != nil {
		return model.FoodItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return f, nil
}

func (u *FoodItemUsecase) Update(ctx context.Context, id int64, in FoodItemInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateFoodItem(in); err != nil {
		return err
	}
	if err := u.checkRefs(ctx, in); err != nil {
		return err
	}

	err := u.foodItemRepo.Update(ctx, model.FoodItem{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKey) {
		return NewHTTPError(http.StatusConflict, "referenced category or supplier no longer exists")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 注文明細から参照されている間は消せない
func (u *FoodItemUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	n, err := u.orderDetailRepo.CountByFoodItemID(ctx, id)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return NewHTTPError(http.StatusConflict, "cannot delete item with existing orders")
	}

	err = u.foodItemRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKey) {
		return NewHTTPError(http.StatusConflict, "cannot delete item with existing orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
