package repository

import (
	"context"

	"gorm.io/gorm"

	repo "foodmgmt/internal/repository"
)

type txReposGorm struct {
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
	foodItems    repo.FoodItemRepository
	customers    repo.CustomerRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) OrderDetails() repo.OrderDetailRepository { return r.orderDetails }
func (r *txReposGorm) FoodItems() repo.FoodItemRepository       { return r.foodItems }
func (r *txReposGorm) Customers() repo.CustomerRepository       { return r.customers }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返したら全体をrollbackする。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:       NewOrderGormRepository(tx),
			orderDetails: NewOrderDetailGormRepository(tx),
			foodItems:    NewFoodItemGormRepository(tx),
			customers:    NewCustomerGormRepository(tx),
		}
		return fn(r)
	})
}
