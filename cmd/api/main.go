package main

import (
	"log"

	"github.com/joho/godotenv"

	"foodmgmt/internal/config"
	"foodmgmt/internal/domain/model"
	"foodmgmt/internal/handler"
	"foodmgmt/internal/infra/db"
	infraRepo "foodmgmt/internal/infra/repository"
	"foodmgmt/internal/server"
	"foodmgmt/internal/usecase"
)

func main() {
	// .envはあれば読む（本番は環境変数そのまま）
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Supplier{},
		&model.FoodItem{},
		&model.Customer{},
		&model.Order{},
		&model.OrderDetail{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//空のDBなら初期データを入れる
	if err := db.Seed(gormDB); err != nil {
		log.Fatalf("seed: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	foodItemRepo := infraRepo.NewFoodItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderDetailRepo := infraRepo.NewOrderDetailGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, foodItemRepo)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo, foodItemRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo, orderRepo)
	foodItemUC := usecase.NewFoodItemUsecase(foodItemRepo, categoryRepo, supplierRepo, orderDetailRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo)
	dashboardUC := usecase.NewDashboardUsecase(customerRepo, supplierRepo, foodItemRepo, orderRepo)

	//Handler生成とServer起動
	e := server.New(cfg, server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Categories: handler.NewCategoryHandler(categoryUC),
		Suppliers:  handler.NewSupplierHandler(supplierUC),
		Customers:  handler.NewCustomerHandler(customerUC),
		FoodItems:  handler.NewFoodItemHandler(foodItemUC),
		Orders:     handler.NewOrderHandler(orderUC),
		Dashboard:  handler.NewDashboardHandler(dashboardUC),
	})

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
