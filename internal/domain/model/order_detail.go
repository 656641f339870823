package model

import "github.com/shopspring/decimal"

type OrderDetail struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64  `gorm:"not null;index" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`

	FoodItemID int64     `gorm:"not null;index" json:"food_item_id"`
	FoodItem   *FoodItem `gorm:"foreignKey:FoodItemID;constraint:OnDelete:RESTRICT" json:"food_item,omitempty"`

	Quantity int64 `gorm:"not null" json:"quantity"`

	// 注文時点の単価スナップショット（後で商品価格が変わっても動かさない）
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

// 行合計
func (d OrderDetail) LineTotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(d.Quantity))
}
