package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type SupplierUsecase struct {
	supplierRepo repo.SupplierRepository
	foodItemRepo repo.FoodItemRepository
}

// DI
func NewSupplierUsecase(supplierRepo repo.SupplierRepository, foodItemRepo repo.FoodItemRepository) *SupplierUsecase {
	return &SupplierUsecase{supplierRepo: supplierRepo, foodItemRepo: foodItemRepo}
}

type SupplierInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func validateSupplier(in SupplierInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if len(in.Name) > 150 {
		return NewHTTPError(http.StatusBadRequest, "name too long")
	}
	if len(in.Phone) > 20 {
		return NewHTTPError(http.StatusBadRequest, "phone too long")
	}
	if len(in.Email) > 150 {
		return NewHTTPError(http.StatusBadRequest, "email too long")
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return NewHTTPError(http.StatusBadRequest, "invalid email")
		}
	}
	return nil
}

func (u *SupplierUsecase) List(ctx context.Context, search string) ([]model.Supplier, error) {
	suppliers, err := u.supplierRepo.List(ctx, search)
	if err != nil {
		return []model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return suppliers, nil
}

func (u *SupplierUsecase) Get(ctx context.Context, id int64) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s, err := u.supplierRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SupplierUsecase) Create(ctx context.Context, in SupplierInput) (model.Supplier, error) {
	if err := validateSupplier(in); err != nil {
		return model.Supplier{}, err
	}

	s, err := u.supplierRepo.Create(ctx, model.Supplier{
		Name:  strings.TrimSpace(in.Name),
		Phone: in.Phone,
		Email: in.Email,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Supplier{}, NewHTTPError(http.StatusConflict, "supplier already exists")
	}
	if err != nil {
		return model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SupplierUsecase) Update(ctx context.Context, id int64, in SupplierInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateSupplier(in); err != nil {
		return err
	}

	err := u.supplierRepo.Update(ctx, model.Supplier{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Phone: in.Phone,
		Email: in.Email,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 商品が紐付いている間は消せない
func (u *SupplierUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	n, err := u.foodItemRepo.CountBySupplierID(ctx, id)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return NewHTTPError(http.StatusConflict, "cannot delete supplier with existing food items")
	}

	err = u.supplierRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKey) {
		return NewHTTPError(http.StatusConflict, "cannot delete supplier with existing food items")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
