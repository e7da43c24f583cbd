package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	holidayerrors "github.com/Harendra62/leave-management/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ActiveHolidaysCacheKey = "holidays:active"

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context, year int) ([]HolidayResponse, error)
	GetByID(ctx context.Context, id string) (HolidayResponse, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Deactivate(ctx context.Context, id string) error

	// ActiveInRange resolves active holidays to concrete dates within
	// [start, end]. Recurring holidays are expanded for each year covered.
	ActiveInRange(ctx context.Context, start, end time.Time) ([]Occurrence, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	s.logger.Debug("create holiday requested", zap.String("name", req.Name))

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		s.logger.Warn("create holiday invalid date", zap.String("date", req.Date), zap.Error(err))
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayDate
	}

	h := &Holiday{
		ID:          uuid.New(),
		Name:        req.Name,
		Date:        date,
		IsRecurring: req.IsRecurring,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	s.logger.Info("create holiday success",
		zap.String("holiday_id", h.ID.String()),
		zap.String("name", h.Name),
	)

	return mapToResponse(*h), nil
}

func (s *service) GetAll(ctx context.Context, year int) ([]HolidayResponse, error) {
	s.logger.Debug("get all holidays requested", zap.Int("year", year))
	holidays, err := s.repo.FindAll(ctx, year)
	if err != nil {
		s.logger.Error("get all holidays failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(holidays), nil
}

func (s *service) GetByID(ctx context.Context, id string) (HolidayResponse, error) {
	s.logger.Debug("get holiday by id requested", zap.String("holiday_id", id))
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get holiday by id failed", zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*h), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error) {
	s.logger.Debug("update holiday requested", zap.String("holiday_id", id))

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		s.logger.Warn("update holiday invalid date", zap.String("date", req.Date), zap.Error(err))
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayDate
	}

	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update holiday fetch existing failed", zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	h.Name = req.Name
	h.Date = date
	h.IsRecurring = req.IsRecurring
	h.Description = req.Description

	if err := s.repo.Update(ctx, h); err != nil {
		s.logger.Error("update holiday persist failed", zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	s.logger.Info("update holiday success", zap.String("holiday_id", id))

	return mapToResponse(*h), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	s.logger.Debug("deactivate holiday requested", zap.String("holiday_id", id))

	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("deactivate holiday fetch existing failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !h.IsActive {
		s.logger.Warn("deactivate holiday already inactive", zap.String("holiday_id", id))
		return holidayerrors.ErrHolidayInactive
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		s.logger.Error("deactivate holiday failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	s.logger.Info("deactivate holiday success", zap.String("holiday_id", id))
	return nil
}

func (s *service) ActiveInRange(ctx context.Context, start, end time.Time) ([]Occurrence, error) {
	holidays, err := s.loadActive(ctx)
	if err != nil {
		return nil, err
	}

	var occurrences []Occurrence
	for _, h := range holidays {
		if h.IsRecurring {
			for year := start.Year(); year <= end.Year(); year++ {
				occ := time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
				if !occ.Before(start) && !occ.After(end) {
					occurrences = append(occurrences, Occurrence{Name: h.Name, Date: occ})
				}
			}
			continue
		}
		d := time.Date(h.Date.Year(), h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
		if !d.Before(start) && !d.After(end) {
			occurrences = append(occurrences, Occurrence{Name: h.Name, Date: d})
		}
	}

	return occurrences, nil
}

func (s *service) loadActive(ctx context.Context) ([]Holiday, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveHolidaysCacheKey).Result(); err == nil {
			var holidays []Holiday
			if json.Unmarshal([]byte(cached), &holidays) == nil {
				return holidays, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveHolidaysCacheKey, func() (interface{}, error) {
		holidays, err := s.repo.FindAllActive(ctx)
		if err != nil {
			s.logger.Error("load active holidays failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(holidays); err == nil {
				s.rdb.Set(ctx, ActiveHolidaysCacheKey, jsonData, 1*time.Hour)
			}
		}

		return holidays, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Holiday), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveHolidaysCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate holiday cache",
			zap.Error(err),
			zap.String("key", ActiveHolidaysCacheKey),
		)
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return holidayerrors.ErrHolidayNotFound
	}
	return err
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		IsRecurring: h.IsRecurring,
		Description: h.Description,
		IsActive:    h.IsActive,
	}
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	res := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		res[i] = mapToResponse(h)
	}
	return res
}
