package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
	"foodmgmt/internal/usecase"
)

type SupSupplierRepoMock struct{ mock.Mock }

func (m *SupSupplierRepoMock) List(ctx context.Context, search string) ([]model.Supplier, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]model.Supplier)
	return items, args.Error(1)
}
func (m *SupSupplierRepoMock) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}
func (m *SupSupplierRepoMock) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Supplier)
	return created, args.Error(1)
}
func (m *SupSupplierRepoMock) Update(ctx context.Context, s model.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *SupSupplierRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *SupSupplierRepoMock) Count(ctx context.Context) (int64, error) {
	panic("not used in SupplierUsecase tests")
}

type SupFoodItemRepoMock struct{ CatFoodItemRepoMock }

func (m *SupFoodItemRepoMock) CountBySupplierID(ctx context.Context, supplierID int64) (int64, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSupplierUsecase_Create_InvalidEmail(t *testing.T) {
	uc := usecase.NewSupplierUsecase(new(SupSupplierRepoMock), new(SupFoodItemRepoMock))

	_, err := uc.Create(context.Background(), usecase.SupplierInput{Name: "Local Supplier", Email: "not-an-email"})
	assertErrContains(t, err, "invalid email")
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestSupplierUsecase_Create_EmailOptional(t *testing.T) {
	sRepo := new(SupSupplierRepoMock)
	uc := usecase.NewSupplierUsecase(sRepo, new(SupFoodItemRepoMock))

	sRepo.On("Create", mock.Anything, mock.Anything).Return(model.Supplier{ID: 1, Name: "Local Supplier"}, nil)

	out, err := uc.Create(context.Background(), usecase.SupplierInput{Name: "Local Supplier"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

func TestSupplierUsecase_Delete_BlockedByFoodItems(t *testing.T) {
	sRepo := new(SupSupplierRepoMock)
	fRepo := new(SupFoodItemRepoMock)
	uc := usecase.NewSupplierUsecase(sRepo, fRepo)

	fRepo.On("CountBySupplierID", mock.Anything, int64(1)).Return(int64(2), nil)

	err := uc.Delete(context.Background(), 1)
	assertErrContains(t, err, "cannot delete supplier with existing food items")
	assertHTTPStatus(t, err, http.StatusConflict)
	sRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSupplierUsecase_Delete_NoDependents(t *testing.T) {
	sRepo := new(SupSupplierRepoMock)
	fRepo := new(SupFoodItemRepoMock)
	uc := usecase.NewSupplierUsecase(sRepo, fRepo)

	fRepo.On("CountBySupplierID", mock.Anything, int64(1)).Return(int64(0), nil)
	sRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), 1))
	sRepo.AssertExpectations(t)
}

func TestSupplierUsecase_Update_GoneRowIsNotFound(t *testing.T) {
	sRepo := new(SupSupplierRepoMock)
	uc := usecase.NewSupplierUsecase(sRepo, new(SupFoodItemRepoMock))

	sRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	assertHTTPStatus(t, uc.Update(context.Background(), 5, usecase.SupplierInput{Name: "Local Supplier"}), http.StatusNotFound)
}
