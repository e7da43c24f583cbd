package holiday_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Harendra62/leave-management/internal/holiday"
	holidayerrors "github.com/Harendra62/leave-management/internal/holiday/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeHolidayRepository struct {
	createFn        func(ctx context.Context, h *holiday.Holiday) error
	findAllFn       func(ctx context.Context, year int) ([]holiday.Holiday, error)
	findAllActiveFn func(ctx context.Context) ([]holiday.Holiday, error)
	findByIDFn      func(ctx context.Context, id string) (*holiday.Holiday, error)
	updateFn        func(ctx context.Context, h *holiday.Holiday) error
	deactivateFn    func(ctx context.Context, id string) error
}

func (f *fakeHolidayRepository) WithTx(tx *gorm.DB) holiday.Repository {
	return f
}

func (f *fakeHolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) FindAll(ctx context.Context, year int) ([]holiday.Holiday, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, year)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindAllActive(ctx context.Context) ([]holiday.Holiday, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHolidayRepository) Update(ctx context.Context, h *holiday.Holiday) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) Deactivate(ctx context.Context, id string) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil
}

type holidayServiceDeps struct {
	sqlDB     *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   holiday.Service
	repo      *fakeHolidayRepository
	redisMock redismock.ClientMock
}

func setupHolidayServiceTest(t *testing.T) *holidayServiceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeHolidayRepository{}
	svc := holiday.NewService(gdb, repo, rdb)

	return &holidayServiceDeps{
		sqlDB:     sqlDB,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func TestHolidayService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		req := holiday.CreateHolidayRequest{
			Name:        "Independence Day",
			Date:        "2026-08-15",
			IsRecurring: true,
		}

		deps.repo.createFn = func(ctx context.Context, h *holiday.Holiday) error {
			assert.Equal(t, "Independence Day", h.Name)
			assert.True(t, h.IsRecurring)
			assert.True(t, h.IsActive)
			return nil
		}
		deps.redisMock.ExpectDel(holiday.ActiveHolidaysCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-08-15", resp.Date)
		assert.True(t, resp.IsActive)
	})

	t.Run("negative invalid date", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		req := holiday.CreateHolidayRequest{Name: "Bad", Date: "15/08/2026"}

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, holidayerrors.ErrInvalidHolidayDate)
	})
}

func TestHolidayService_ActiveInRange(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss - loads from repository and expands recurring", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		deps.redisMock.ExpectGet(holiday.ActiveHolidaysCacheKey).RedisNil()
		deps.repo.findAllActiveFn = func(ctx context.Context) ([]holiday.Holiday, error) {
			return []holiday.Holiday{
				{
					ID:          uuid.New(),
					Name:        "New Year",
					Date:        time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
					IsRecurring: true,
					IsActive:    true,
				},
				{
					ID:       uuid.New(),
					Name:     "Company Day",
					Date:     time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
					IsActive: true,
				},
				{
					ID:       uuid.New(),
					Name:     "Out of Range",
					Date:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
					IsActive: true,
				},
			}, nil
		}

		start := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

		occurrences, err := deps.service.ActiveInRange(ctx, start, end)

		assert.NoError(t, err)
		assert.Len(t, occurrences, 2)
		assert.Equal(t, "New Year", occurrences[0].Name)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), occurrences[0].Date)
		assert.Equal(t, "Company Day", occurrences[1].Name)
	})

	t.Run("cache hit - repository untouched", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		cached := []holiday.Holiday{
			{
				ID:       uuid.New(),
				Name:     "Cached Day",
				Date:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				IsActive: true,
			},
		}
		jsonData, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(holiday.ActiveHolidaysCacheKey).SetVal(string(jsonData))

		deps.repo.findAllActiveFn = func(ctx context.Context) ([]holiday.Holiday, error) {
			t.Fatal("repository should not be called on cache hit")
			return nil, nil
		}

		occurrences, err := deps.service.ActiveInRange(ctx,
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		)

		assert.NoError(t, err)
		assert.Len(t, occurrences, 1)
		assert.Equal(t, "Cached Day", occurrences[0].Name)
	})

	t.Run("negative repository error", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		deps.redisMock.ExpectGet(holiday.ActiveHolidaysCacheKey).RedisNil()
		deps.repo.findAllActiveFn = func(ctx context.Context) ([]holiday.Holiday, error) {
			return nil, errors.New("db connection lost")
		}

		occurrences, err := deps.service.ActiveInRange(ctx,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		)

		assert.Error(t, err)
		assert.Nil(t, occurrences)
		assert.Contains(t, err.Error(), "db connection lost")
	})
}

func TestHolidayService_Deactivate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*holiday.Holiday, error) {
			return &holiday.Holiday{ID: id, IsActive: true}, nil
		}
		deps.redisMock.ExpectDel(holiday.ActiveHolidaysCacheKey).SetVal(1)

		err := deps.service.Deactivate(ctx, id.String())

		assert.NoError(t, err)
	})

	t.Run("negative already inactive", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*holiday.Holiday, error) {
			return &holiday.Holiday{ID: id, IsActive: false}, nil
		}

		err := deps.service.Deactivate(ctx, id.String())

		assert.Error(t, err)
		assert.ErrorIs(t, err, holidayerrors.ErrHolidayInactive)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.sqlDB.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*holiday.Holiday, error) {
			return nil, gorm.ErrRecordNotFound
		}

		err := deps.service.Deactivate(ctx, id.String())

		assert.Error(t, err)
		assert.ErrorIs(t, err, holidayerrors.ErrHolidayNotFound)
	})
}
