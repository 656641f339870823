package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// 氏名・メールの部分一致で絞り込み
func (r *CustomerGormRepository) List(ctx context.Context, search string) ([]model.Customer, error) {
	tx := r.db.WithContext(ctx).Model(&model.Customer{})

	if strings.TrimSpace(search) != "" {
		like := "%" + strings.TrimSpace(search) + "%"
		tx = tx.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var customers []model.Customer
	if err := tx.Order("full_name asc").Find(&customers).Error; err != nil {
		return []model.Customer{}, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Customer{}, translateError(err)
	}
	return c, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"full_name": c.FullName,
		"email":     c.Email,
		"phone":     c.Phone,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
