package usecase

import (
	"context"
	"net/http"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

// 在庫僅少の境界（これ未満で警告対象）
const lowStockThreshold = 5

type DashboardUsecase struct {
	customerRepo repo.CustomerRepository
	supplierRepo repo.SupplierRepository
	foodItemRepo repo.FoodItemRepository
	orderRepo    repo.OrderRepository
}

// DI
func NewDashboardUsecase(
	customerRepo repo.CustomerRepository,
	supplierRepo repo.SupplierRepository,
	foodItemRepo repo.FoodItemRepository,
	orderRepo repo.OrderRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		foodItemRepo: foodItemRepo,
		orderRepo:    orderRepo,
	}
}

type DashboardOutput struct {
	TotalCustomers  int64            `json:"total_customers"`
	TotalSuppliers  int64            `json:"total_suppliers"`
	TotalFoodItems  int64            `json:"total_food_items"`
	TotalOrders     int64            `json:"total_orders"`
	CompletedOrders int64            `json:"completed_orders"`
	PendingOrders   int64            `json:"pending_orders"`
	LowStockItems   []model.FoodItem `json:"low_stock_items"`
}

// 集計はスナップショットの古さを許容する読み取り（txなし）。
func (u *DashboardUsecase) Summary(ctx context.Context) (DashboardOutput, error) {
	customers, err := u.customerRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	suppliers, err := u.supplierRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	foodItems, err := u.foodItemRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	orders, err := u.orderRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	completed, err := u.orderRepo.CountCompleted(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	lowStock, err := u.foodItemRepo.ListLowStock(ctx, lowStockThreshold)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardOutput{
		TotalCustomers:  customers,
		TotalSuppliers:  suppliers,
		TotalFoodItems:  foodItems,
		TotalOrders:     orders,
		CompletedOrders: completed,
		PendingOrders:   orders - completed,
		LowStockItems:   lowStock,
	}, nil
}
