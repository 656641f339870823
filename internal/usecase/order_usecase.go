package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
}

// DI（ordersは読み取り専用パス用、書き込みはtx経由）
func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders}
}

type OrderLineInput struct {
	FoodItemID int64 `json:"food_item_id"`
	Quantity   int64 `json:"quantity"`
}

type PlaceOrderInput struct {
	CustomerID int64            `json:"customer_id"`
	Items      []OrderLineInput `json:"items"`
}

type OrderLineOutput struct {
	FoodItemID int64           `json:"food_item_id"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

type OrderOutput struct {
	ID           int64             `json:"id"`
	CustomerID   int64             `json:"customer_id"`
	CustomerName string            `json:"customer_name,omitempty"`
	OrderDate    time.Time         `json:"order_date"`
	GrandTotal   decimal.Decimal   `json:"grand_total"`
	IsCompleted  bool              `json:"is_completed"`
	Items        []OrderLineOutput `json:"items"`
}

const maxLineQuantity = 10000

// 明細入力の形式チェック。在庫や存在はtx内で確認する。
func validateOrderLines(customerID int64, items []OrderLineInput) error {
	if customerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid customer_id")
	}
	if len(items) == 0 {
		return NewHTTPError(http.StatusBadRequest, "add at least one item")
	}
	for _, it := range items {
		if it.FoodItemID <= 0 || it.Quantity <= 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid food item or quantity")
		}
		if it.Quantity > maxLineQuantity {
			return NewHTTPError(http.StatusBadRequest, "quantity too large")
		}
	}
	return nil
}

// 各行の在庫を条件付きUPDATEで減らし、現在価格をスナップショットした明細と合計を作る。
// どこかで失敗したらerrorを返し、囲っているtxごとrollbackさせる。
func buildOrderDetails(ctx context.Context, r repo.TxRepos, items []OrderLineInput) ([]model.OrderDetail, []OrderLineOutput, decimal.Decimal, error) {
	details := make([]model.OrderDetail, 0, len(items))
	lines := make([]OrderLineOutput, 0, len(items))
	total := decimal.Zero

	for _, it := range items {
		fi, err := r.FoodItems().FindByID(ctx, it.FoodItemID)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, "invalid food item or quantity")
		}
		if err != nil {
			return nil, nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ok, err := r.FoodItems().DecreaseStockIfEnough(ctx, fi.ID, it.Quantity)
		if err != nil {
			return nil, nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			// 残量はここで読み直す（並行注文で既に変わっているかもしれない）
			current, err := r.FoodItems().FindByID(ctx, fi.ID)
			if err != nil {
				return nil, nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("insufficient stock for %s: %d left", fi.Name, current.Stock))
		}

		lineTotal := fi.Price.Mul(decimal.NewFromInt(it.Quantity))
		details = append(details, model.OrderDetail{
			FoodItemID: fi.ID,
			Quantity:   it.Quantity,
			UnitPrice:  fi.Price,
		})
		lines = append(lines, OrderLineOutput{
			FoodItemID: fi.ID,
			Name:       fi.Name,
			Quantity:   it.Quantity,
			UnitPrice:  fi.Price,
			LineTotal:  lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return details, lines, total, nil
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if err := validateOrderLines(in.CustomerID, in.Items); err != nil {
		return OrderOutput{}, err
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		customer, err := r.Customers().FindByID(ctx, in.CustomerID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "customer not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		details, lines, total, err := buildOrderDetails(ctx, r, in.Items)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerID: in.CustomerID,
			OrderDate:  now,
			GrandTotal: total,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderDetails().CreateBulk(ctx, orderID, details); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{
			ID:           orderID,
			CustomerID:   in.CustomerID,
			CustomerName: customer.FullName,
			OrderDate:    now,
			GrandTotal:   total,
			Items:        lines,
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 既存明細の在庫を戻してから新しい明細で作り直す。全部1トランザクション。
func (u *OrderUsecase) EditOrder(ctx context.Context, orderID int64, in PlaceOrderInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateOrderLines(in.CustomerID, in.Items); err != nil {
		return OrderOutput{}, err
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		customer, err := r.Customers().FindByID(ctx, in.CustomerID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "customer not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 在庫戻し
		olds, err := r.OrderDetails().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		for _, od := range olds {
			if err := r.FoodItems().IncreaseStock(ctx, od.FoodItemID, od.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.OrderDetails().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 新しい明細で検証と在庫減算をやり直す
		details, lines, total, err := buildOrderDetails(ctx, r, in.Items)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		order.CustomerID = in.CustomerID
		order.GrandTotal = total
		order.OrderDate = now
		if err := r.Orders().Update(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderDetails().CreateBulk(ctx, orderID, details); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{
			ID:           orderID,
			CustomerID:   in.CustomerID,
			CustomerName: customer.FullName,
			OrderDate:    now,
			GrandTotal:   total,
			IsCompleted:  order.IsCompleted,
			Items:        lines,
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 在庫を戻してから明細と注文を消す。全部1トランザクション。
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		details, err := r.OrderDetails().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		for _, od := range details {
			if err := r.FoodItems().IncreaseStock(ctx, od.FoodItemID, od.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.OrderDetails().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

// 完了フラグを立てるだけ。在庫も合計も触らない。
func (u *OrderUsecase) CompleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.orders.MarkCompleted(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByIDWithDetails(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o), nil
}

// 未完了の注文。searchは顧客名または注文IDの部分一致。
func (u *OrderUsecase) ListPending(ctx context.Context, search string) ([]OrderOutput, error) {
	orders, err := u.orders.ListPending(ctx, search)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutputs(orders), nil
}

func (u *OrderUsecase) ListCompleted(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orders.ListCompleted(ctx)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutputs(orders), nil
}

func toOrderOutput(o model.Order) OrderOutput {
	lines := make([]OrderLineOutput, 0, len(o.Details))
	for _, od := range o.Details {
		name := ""
		if od.FoodItem != nil {
			name = od.FoodItem.Name
		}
		lines = append(lines, OrderLineOutput{
			FoodItemID: od.FoodItemID,
			Name:       name,
			Quantity:   od.Quantity,
			UnitPrice:  od.UnitPrice,
			LineTotal:  od.LineTotal(),
		})
	}

	out := OrderOutput{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate,
		GrandTotal:  o.GrandTotal,
		IsCompleted: o.IsCompleted,
		Items:       lines,
	}
	if o.Customer != nil {
		out.CustomerName = o.Customer.FullName
	}
	return out
}

func toOrderOutputs(orders []model.Order) []OrderOutput {
	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return outs
}
