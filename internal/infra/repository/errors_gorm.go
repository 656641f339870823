package repository

import (
	"errors"

	"gorm.io/gorm"

	repo "foodmgmt/internal/repository"
)

// gormのエラーをrepo層のsentinelに変換する
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrDuplicate
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return repo.ErrForeignKey
	}
	return err
}
