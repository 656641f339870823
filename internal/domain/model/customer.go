package model

type Customer struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"type:varchar(150);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(150)" json:"email"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}
