// Package catalog содержит бизнес-логику чтения каталога курсов и репетиторов:
// загрузку через шлюз удалённого сервиса, кеширование и простую фильтрацию.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/linguaplay/booking/internal/models"
)

// Ключи кеша справочников.
const (
	coursesCacheKey = "catalog:courses"
	tutorsCacheKey  = "catalog:tutors"
)

// Gateway определяет методы чтения удалённого каталога.
type Gateway interface {
	// Courses возвращает все курсы.
	Courses(ctx context.Context) ([]models.Course, error)
	// CourseByID возвращает курс по ID.
	CourseByID(ctx context.Context, id int) (*models.Course, error)
	// Tutors возвращает всех репетиторов.
	Tutors(ctx context.Context) ([]models.Tutor, error)
	// TutorByID возвращает репетитора по ID.
	TutorByID(ctx context.Context, id int) (*models.Tutor, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
}

// Service реализует чтение каталога с кешированием списков.
// Записи каталога неизменяемы, поэтому кеш не инвалидируется,
// а просто истекает по TTL.
type Service struct {
	gateway Gateway
	cache   Cache
	ttl     time.Duration
	log     *slog.Logger
}

// New создает новый Service каталога.
func New(gateway Gateway, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		cache:   cache,
		ttl:     ttl,
		log:     log,
	}
}

// Courses возвращает все курсы, беря их из кеша, когда он свеж.
// Ошибки кеша не фатальны: при любой проблеме список читается из каталога.
func (s *Service) Courses(ctx context.Context) ([]models.Course, error) {
	var cached []models.Course
	found, err := s.cache.Get(coursesCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read courses from cache", slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	courses, err := s.gateway.Courses(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(coursesCacheKey, courses, s.ttl); err != nil {
		s.log.Warn("failed to cache courses", slog.Any("err", err))
	}
	return courses, nil
}

// Tutors возвращает всех репетиторов, беря их из кеша, когда он свеж.
func (s *Service) Tutors(ctx context.Context) ([]models.Tutor, error) {
	var cached []models.Tutor
	found, err := s.cache.Get(tutorsCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read tutors from cache", slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	tutors, err := s.gateway.Tutors(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(tutorsCacheKey, tutors, s.ttl); err != nil {
		s.log.Warn("failed to cache tutors", slog.Any("err", err))
	}
	return tutors, nil
}

// CourseByID возвращает курс, по возможности находя его в закешированном списке.
func (s *Service) CourseByID(ctx context.Context, id int) (*models.Course, error) {
	var cached []models.Course
	if found, _ := s.cache.Get(coursesCacheKey, &cached); found {
		for i := range cached {
			if cached[i].ID == id {
				return &cached[i], nil
			}
		}
	}
	return s.gateway.CourseByID(ctx, id)
}

// TutorByID возвращает репетитора, по возможности находя его в закешированном списке.
func (s *Service) TutorByID(ctx context.Context, id int) (*models.Tutor, error) {
	var cached []models.Tutor
	if found, _ := s.cache.Get(tutorsCacheKey, &cached); found {
		for i := range cached {
			if cached[i].ID == id {
				return &cached[i], nil
			}
		}
	}
	return s.gateway.TutorByID(ctx, id)
}

// FilterCourses оставляет курсы, подходящие под подстроку названия и уровень.
// Пустые значения фильтров пропускают все записи.
func FilterCourses(courses []models.Course, name, level string) []models.Course {
	name = strings.ToLower(strings.TrimSpace(name))

	var out []models.Course
	for _, c := range courses {
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		if level != "" && c.Level != level {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterTutors оставляет репетиторов с подходящим уровнем языка
// и стажем не меньше minExperience лет.
func FilterTutors(tutors []models.Tutor, level string, minExperience int) []models.Tutor {
	var out []models.Tutor
	for _, t := range tutors {
		if level != "" && t.LanguageLevel != level {
			continue
		}
		if t.WorkExperience < minExperience {
			continue
		}
		out = append(out, t)
	}
	return out
}
