package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 一意制約違反
	ErrDuplicate = errors.New("duplicate key")

	// 外部キー制約違反（事前チェックを抜けた場合の最後の砦）
	ErrForeignKey = errors.New("foreign key violated")
)
