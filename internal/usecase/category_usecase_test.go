package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
	"foodmgmt/internal/usecase"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CatCategoryRepoMock struct{ mock.Mock }

func (m *CatCategoryRepoMock) List(ctx context.Context, search string) ([]model.Category, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CatCategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CatCategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CatCategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CatCategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CatCategoryRepoMock) Count(ctx context.Context) (int64, error) {
	panic("not used in CategoryUsecase tests")
}

type CatFoodItemRepoMock struct{ mock.Mock }

func (m *CatFoodItemRepoMock) List(ctx context.Context, search string) ([]model.FoodItem, error) {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) FindByID(ctx context.Context, id int64) (model.FoodItem, error) {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error) {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) Update(ctx context.Context, f model.FoodItem) error {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) Count(ctx context.Context) (int64, error) {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) CountByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *CatFoodItemRepoMock) CountBySupplierID(ctx context.Context, supplierID int64) (int64, error) {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) ListLowStock(ctx context.Context, threshold int64) ([]model.FoodItem, error) {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) DecreaseStockIfEnough(ctx context.Context, id int64, qty int64) (bool, error) {
	panic("not used in CategoryUsecase tests")
}
func (m *CatFoodItemRepoMock) IncreaseStock(ctx context.Context, id int64, qty int64) error {
	panic("not used in CategoryUsecase tests")
}

// =====================
// Create / Update
// =====================

func TestCategoryUsecase_Create_NameRequired(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CatCategoryRepoMock), new(CatFoodItemRepoMock))

	_, err := uc.Create(context.Background(), usecase.CategoryInput{Name: "  "})
	assertErrContains(t, err, "name required")
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCategoryUsecase_Create_NameTooLong(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CatCategoryRepoMock), new(CatFoodItemRepoMock))

	_, err := uc.Create(context.Background(), usecase.CategoryInput{Name: strings.Repeat("x", 101)})
	assertErrContains(t, err, "name too long")
}

func TestCategoryUsecase_Create_DescriptionTooLong(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CatCategoryRepoMock), new(CatFoodItemRepoMock))

	_, err := uc.Create(context.Background(), usecase.CategoryInput{
		Name:        "Beverages",
		Description: strings.Repeat("x", 301),
	})
	assertErrContains(t, err, "description too long")
}

func TestCategoryUsecase_Create_Success(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, new(CatFoodItemRepoMock))

	in := model.Category{Name: "Beverages", Description: "Drinks"}
	cRepo.On("Create", mock.Anything, in).Return(model.Category{ID: 1, Name: "Beverages", Description: "Drinks"}, nil)

	out, err := uc.Create(context.Background(), usecase.CategoryInput{Name: "Beverages", Description: "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_Create_Duplicate(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, new(CatFoodItemRepoMock))

	cRepo.On("Create", mock.Anything, mock.Anything).Return(model.Category{}, repo.ErrDuplicate)

	_, err := uc.Create(context.Background(), usecase.CategoryInput{Name: "Beverages"})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestCategoryUsecase_Update_GoneRowIsNotFound(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, new(CatFoodItemRepoMock))

	cRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.Update(context.Background(), 7, usecase.CategoryInput{Name: "Beverages"})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

// =====================
// Delete guard
// =====================

func TestCategoryUsecase_Delete_BlockedByFoodItems(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	fRepo := new(CatFoodItemRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, fRepo)

	fRepo.On("CountByCategoryID", mock.Anything, int64(1)).Return(int64(3), nil)

	err := uc.Delete(context.Background(), 1)
	assertErrContains(t, err, "cannot delete category with existing food items")
	assertHTTPStatus(t, err, http.StatusConflict)

	// deleteは発行されない
	cRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryUsecase_Delete_NoDependents(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	fRepo := new(CatFoodItemRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, fRepo)

	fRepo.On("CountByCategoryID", mock.Anything, int64(1)).Return(int64(0), nil)
	cRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), 1))
	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_Delete_NotFound(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	fRepo := new(CatFoodItemRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, fRepo)

	fRepo.On("CountByCategoryID", mock.Anything, int64(9)).Return(int64(0), nil)
	cRepo.On("Delete", mock.Anything, int64(9)).Return(repo.ErrNotFound)

	assertHTTPStatus(t, uc.Delete(context.Background(), 9), http.StatusNotFound)
}

// =====================
// List
// =====================

func TestCategoryUsecase_List_PassesSearch(t *testing.T) {
	cRepo := new(CatCategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, new(CatFoodItemRepoMock))

	items := []model.Category{{ID: 1, Name: "Beverages"}}
	cRepo.On("List", mock.Anything, "bev").Return(items, nil)

	out, err := uc.List(context.Background(), "bev")
	require.NoError(t, err)
	assert.Equal(t, items, out)
}
