package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"brasserie/internal/domain"
	"brasserie/internal/mocks"
	"brasserie/internal/service"
)

func TestCatalogService_Menu(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	svc := service.NewCatalogService(mockRepo)

	filter := domain.DishFilter{Search: "salade", OnlyAvailable: true}
	categories := []domain.Category{{ID: 1, Name: "Entrées"}}
	dishes := []domain.Dish{{ID: 1, Name: "Salade César", Price: decimal.NewFromInt(2500)}}
	mockRepo.On("ListCategories").Return(categories, nil).Once()
	mockRepo.On("ListDishes", filter).Return(dishes, nil).Once()

	gotCategories, gotDishes, err := svc.Menu(filter)

	assert.NoError(t, err)
	assert.Equal(t, categories, gotCategories)
	assert.Equal(t, dishes, gotDishes)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateDishValidation(t *testing.T) {
	tests := []struct {
		name string
		dish domain.Dish
	}{
		{name: "empty name", dish: domain.Dish{Price: decimal.NewFromInt(1000), CategoryID: 1}},
		{name: "zero price", dish: domain.Dish{Name: "Soupe", CategoryID: 1}},
		{name: "negative price", dish: domain.Dish{Name: "Soupe", Price: decimal.NewFromInt(-100), CategoryID: 1}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.CatalogRepository)
			svc := service.NewCatalogService(mockRepo)

			err := svc.CreateDish(&testCase.dish)

			assert.ErrorIs(t, err, domain.ErrValidation)
			mockRepo.AssertNotCalled(t, "CreateDish", mock.Anything)
		})
	}
}

func TestCatalogService_CreateDishUnknownCategory(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	svc := service.NewCatalogService(mockRepo)

	mockRepo.On("GetCategory", 9).Return(nil, domain.ErrNotFound).Once()

	err := svc.CreateDish(&domain.Dish{Name: "Soupe", Price: decimal.NewFromInt(1000), CategoryID: 9})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "CreateDish", mock.Anything)
}

func TestCatalogService_CreateCategoryRequiresName(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	svc := service.NewCatalogService(mockRepo)

	err := svc.CreateCategory(&domain.Category{})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "CreateCategory", mock.Anything)
}

func TestTableService_CreateValidation(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	svc := service.NewTableService(mockRepo)

	assert.ErrorIs(t, svc.Create(&domain.Table{Number: 0, Capacity: 4}), domain.ErrValidation)
	assert.ErrorIs(t, svc.Create(&domain.Table{Number: 1, Capacity: 0}), domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "CreateTable", mock.Anything)
}

func TestTableService_CreateDuplicateNumber(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	svc := service.NewTableService(mockRepo)

	mockRepo.On("CreateTable", mock.AnythingOfType("*domain.Table")).Return(domain.ErrTableNumberTaken).Once()

	err := svc.Create(&domain.Table{Number: 3, Capacity: 4})

	assert.ErrorIs(t, err, domain.ErrTableNumberTaken)
	mockRepo.AssertExpectations(t)
}

func TestTableService_Toggle(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	svc := service.NewTableService(mockRepo)

	mockRepo.On("ToggleTable", 2).Return(&domain.Table{ID: 2, Number: 2, Available: false}, nil).Once()

	table, err := svc.Toggle(2)

	assert.NoError(t, err)
	assert.False(t, table.Available)
	mockRepo.AssertExpectations(t)
}
