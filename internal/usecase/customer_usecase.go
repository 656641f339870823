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

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	orderRepo    repo.OrderRepository
}

// DI
func NewCustomerUsecase(customerRepo repo.CustomerRepository, orderRepo repo.OrderRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo, orderRepo: orderRepo}
}

type CustomerInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func validateCustomer(in CustomerInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return NewHTTPError(http.StatusBadRequest, "full_name required")
	}
	if len(in.FullName) > 150 {
		return NewHTTPError(http.StatusBadRequest, "full_name too long")
	}
	if len(in.Email) > 150 {
		return NewHTTPError(http.StatusBadRequest, "email too long")
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return NewHTTPError(http.StatusBadRequest, "invalid email")
		}
	}
	if len(in.Phone) > 20 {
		return NewHTTPError(http.StatusBadRequest, "phone too long")
	}
	return nil
}

func (u *CustomerUsecase) List(ctx context.Context, search string) ([]model.Customer, error) {
	customers, err := u.customerRepo.List(ctx, search)
	if err != nil {
		return []model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return customers, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, id int64) (model.Customer, error) {
	if id <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.customerRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Create(ctx context.Context, in CustomerInput) (model.Customer, error) {
	if err := validateCustomer(in); err != nil {
		return model.Customer{}, err
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		FullName: strings.TrimSpace(in.FullName),
		Email:    in.Email,
		Phone:    in.Phone,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Customer{}, NewHTTPError(http.StatusConflict, "customer already exists")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, id int64, in CustomerInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateCustomer(in); err != nil {
		return err
	}

	err := u.customerRepo.Update(ctx, model.Customer{
		ID:       id,
		FullName: strings.TrimSpace(in.FullName),
		Email:    in.Email,
		Phone:    in.Phone,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 注文が残っている間は消せない
func (u *CustomerUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	n, err := u.orderRepo.CountByCustomerID(ctx, id)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return NewHTTPError(http.StatusConflict, "cannot delete customer with existing orders")
	}

	err = u.customerRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrForeignKey) {
		return NewHTTPError(http.StatusConflict, "cannot delete customer with existing orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
