package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(150);not null" json:"name"`
	Description string          `gorm:"type:varchar(500)" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`

	CategoryID int64     `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`

	// 仕入先は任意（削除時はNULLに戻す）
	SupplierID *int64    `gorm:"index" json:"supplier_id"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"supplier,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
