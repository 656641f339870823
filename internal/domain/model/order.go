package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"customer,omitempty"`

	OrderDate time.Time `gorm:"not null" json:"order_date"`

	// 確定時点の合計スナップショット
	GrandTotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"grand_total"`
	IsCompleted bool            `gorm:"not null;default:false;index" json:"is_completed"`

	Details []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}
