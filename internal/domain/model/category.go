package model

type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(300)" json:"description"`

	// 逆参照（所有ではなくクエリで引く）
	FoodItems []FoodItem `gorm:"foreignKey:CategoryID" json:"-"`
}
