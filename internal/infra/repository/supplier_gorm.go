package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

// DI
func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

// 名前・メール・電話の部分一致で絞り込み
func (r *SupplierGormRepository) List(ctx context.Context, search string) ([]model.Supplier, error) {
	tx := r.db.WithContext(ctx).Model(&model.Supplier{})

	if strings.TrimSpace(search) != "" {
		like := "%" + strings.TrimSpace(search) + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var suppliers []model.Supplier
	if err := tx.Order("name asc").Find(&suppliers).Error; err != nil {
		return []model.Supplier{}, err
	}
	return suppliers, nil
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Supplier{}, translateError(err)
	}
	return s, nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s model.Supplier) error {
	res := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":  s.Name,
		"phone": s.Phone,
		"email": s.Email,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupplierGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupplierGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Supplier{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
