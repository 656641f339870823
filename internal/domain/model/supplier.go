package model

type Supplier struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(150);not null" json:"name"`
	Phone string `gorm:"type:varchar(20)" json:"phone"`
	Email string `gorm:"type:varchar(150)" json:"email"`

	FoodItems []FoodItem `gorm:"foreignKey:SupplierID" json:"-"`
}
