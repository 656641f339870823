package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodmgmt/internal/domain/model"
	"foodmgmt/internal/usecase"
)

type DashCustomerRepoMock struct{ CustCustomerRepoMock }

func (m *DashCustomerRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type DashSupplierRepoMock struct{ FISupplierRepoMock }

func (m *DashSupplierRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type DashFoodItemRepoMock struct{ FIFoodItemRepoMock }

func (m *DashFoodItemRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *DashFoodItemRepoMock) ListLowStock(ctx context.Context, threshold int64) ([]model.FoodItem, error) {
	args := m.Called(ctx, threshold)
	items, _ := args.Get(0).([]model.FoodItem)
	return items, args.Error(1)
}

type DashOrderRepoMock struct{ CustOrderRepoMock }

func (m *DashOrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *DashOrderRepoMock) CountCompleted(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardUsecase_Summary(t *testing.T) {
	cRepo := new(DashCustomerRepoMock)
	sRepo := new(DashSupplierRepoMock)
	fRepo := new(DashFoodItemRepoMock)
	oRepo := new(DashOrderRepoMock)
	uc := usecase.NewDashboardUsecase(cRepo, sRepo, fRepo, oRepo)

	lowStock := []model.FoodItem{{ID: 2, Name: "Samosa", Stock: 3}}

	cRepo.On("Count", mock.Anything).Return(int64(4), nil)
	sRepo.On("Count", mock.Anything).Return(int64(2), nil)
	fRepo.On("Count", mock.Anything).Return(int64(10), nil)
	oRepo.On("Count", mock.Anything).Return(int64(7), nil)
	oRepo.On("CountCompleted", mock.Anything).Return(int64(5), nil)
	fRepo.On("ListLowStock", mock.Anything, int64(5)).Return(lowStock, nil)

	out, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.TotalCustomers)
	assert.Equal(t, int64(2), out.TotalSuppliers)
	assert.Equal(t, int64(10), out.TotalFoodItems)
	assert.Equal(t, int64(7), out.TotalOrders)
	assert.Equal(t, int64(5), out.CompletedOrders)
	assert.Equal(t, int64(2), out.PendingOrders)
	assert.Equal(t, lowStock, out.LowStockItems)
}

func TestDashboardUsecase_Summary_LowStockUsesThresholdFive(t *testing.T) {
	cRepo := new(DashCustomerRepoMock)
	sRepo := new(DashSupplierRepoMock)
	fRepo := new(DashFoodItemRepoMock)
	oRepo := new(DashOrderRepoMock)
	uc := usecase.NewDashboardUsecase(cRepo, sRepo, fRepo, oRepo)

	cRepo.On("Count", mock.Anything).Return(int64(0), nil)
	sRepo.On("Count", mock.Anything).Return(int64(0), nil)
	fRepo.On("Count", mock.Anything).Return(int64(0), nil)
	oRepo.On("Count", mock.Anything).Return(int64(0), nil)
	oRepo.On("CountCompleted", mock.Anything).Return(int64(0), nil)
	fRepo.On("ListLowStock", mock.Anything, int64(5)).Return([]model.FoodItem{}, nil)

	_, err := uc.Summary(context.Background())
	require.NoError(t, err)
	fRepo.AssertCalled(t, "ListLowStock", mock.Anything, int64(5))
}

func TestDashboardUsecase_Summary_CountError(t *testing.T) {
	cRepo := new(DashCustomerRepoMock)
	uc := usecase.NewDashboardUsecase(cRepo, new(DashSupplierRepoMock), new(DashFoodItemRepoMock), new(DashOrderRepoMock))

	cRepo.On("Count", mock.Anything).Return(int64(0), assert.AnError)

	_, err := uc.Summary(context.Background())
	assertHTTPStatus(t, err, http.StatusInternalServerError)
}
