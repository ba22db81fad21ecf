package category_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fintrack/ledger/internal/fixtures/mocks"
	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	categorysvc "github.com/fintrack/ledger/pkg/service/category"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(uow *mocks.MockUnitOfWork) *categorysvc.Service {
	return categorysvc.NewService(config.Deps{Uow: uow, Logger: slog.Default()})
}

func TestResolve_ExplicitCategory(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)
	categoryID := uuid.New()

	uow.EXPECT().CategoryRepository().Return(categoryRepo, nil).Once()
	categoryRepo.EXPECT().Get(mock.Anything, categoryID).
		Return(&dto.CategoryRead{ID: categoryID, Name: "Groceries"}, nil).Once()

	svc := newService(uow)
	c, err := svc.Resolve(context.Background(), &categoryID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", c.Name)
}

func TestResolve_ExplicitCategoryMissing(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)
	categoryID := uuid.New()

	uow.EXPECT().CategoryRepository().Return(categoryRepo, nil).Once()
	categoryRepo.EXPECT().Get(mock.Anything, categoryID).Return(nil, domain.ErrNotFound).Once()

	svc := newService(uow)
	_, err := svc.Resolve(context.Background(), &categoryID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_DefaultAlreadyExists(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)
	def := &dto.CategoryRead{ID: uuid.New(), Name: ledger.DefaultCategoryName, IsDefault: true}

	uow.EXPECT().CategoryRepository().Return(categoryRepo, nil).Once()
	categoryRepo.EXPECT().FindDefault(mock.Anything).Return(def, nil).Once()

	svc := newService(uow)
	c, err := svc.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, c.IsDefault)
}

func TestResolve_DefaultCreatedOnFirstUse(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)
	def := &dto.CategoryRead{ID: uuid.New(), Name: ledger.DefaultCategoryName, IsDefault: true}

	uow.EXPECT().CategoryRepository().Return(categoryRepo, nil).Once()
	categoryRepo.EXPECT().FindDefault(mock.Anything).Return(nil, domain.ErrNotFound).Once()
	categoryRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(
		func(ctx context.Context, create dto.CategoryCreate) {
			assert.Equal(t, ledger.DefaultCategoryName, create.Name)
			assert.Equal(t, ledger.DefaultCategoryDescription, create.Description)
			assert.True(t, create.IsDefault)
		},
	).Return(nil).Once()
	categoryRepo.EXPECT().FindDefault(mock.Anything).Return(def, nil).Once()

	svc := newService(uow)
	c, err := svc.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, def.ID, c.ID)
}

// A losing racer's insert is rejected by the uniqueness constraint; it must
// fall back to the row the winner created.
func TestResolve_DefaultLostRaceUsesWinner(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)
	winner := &dto.CategoryRead{ID: uuid.New(), Name: ledger.DefaultCategoryName, IsDefault: true}

	uow.EXPECT().CategoryRepository().Return(categoryRepo, nil).Once()
	categoryRepo.EXPECT().FindDefault(mock.Anything).Return(nil, domain.ErrNotFound).Once()
	categoryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists).Once()
	categoryRepo.EXPECT().FindDefault(mock.Anything).Return(winner, nil).Once()

	svc := newService(uow)
	c, err := svc.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, c.ID)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)

	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
	uow.EXPECT().CategoryRepository().Return(categoryRepo, nil).Once()
	categoryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists).Once()

	svc := newService(uow)
	_, err := svc.CreateCategory(context.Background(), "Groceries", "")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestListCategories(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)

	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
	uow.EXPECT().CategoryRepository().Return(categoryRepo, nil).Once()
	categoryRepo.EXPECT().List(mock.Anything).Return([]*dto.CategoryRead{
		{Name: "Groceries"},
		{Name: "Rent"},
	}, nil).Once()

	svc := newService(uow)
	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Groceries", categories[0].Name)
}

func TestResolve_RepoUnavailable(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().CategoryRepository().Return(nil, errors.New("not registered")).Once()

	svc := newService(uow)
	_, err := svc.Resolve(context.Background(), nil)
	require.Error(t, err)
}
