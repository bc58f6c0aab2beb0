// Package list реализует HTTP-обработчик списка курсов каталога
// с фильтрацией по подстроке названия и уровню.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/linguaplay/booking/internal/http/response"
	"github.com/linguaplay/booking/internal/lib/sl"
	"github.com/linguaplay/booking/internal/models"
	catalogservice "github.com/linguaplay/booking/internal/services/catalog"
)

// Handler обрабатывает запросы на получение списка курсов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис чтения каталога
}

// Service описывает интерфейс чтения курсов каталога.
type Service interface {
	Courses(ctx context.Context) ([]models.Course, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список курсов
// @Description Возвращает курсы каталога; параметры name и level фильтруют список.
// @Tags Courses
// @Produce  json
// @Param name query string false "Подстрока названия"
// @Param level query string false "Уровень (Beginner/Intermediate/Advanced)"
// @Success 200 {object} map[string]any "Список курсов"
// @Failure 502 {object} response.ErrorResponse "Каталог недоступен"
// @Router /courses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	courses, err := h.service.Courses(r.Context())
	if err != nil {
		log.Error("failed to list courses", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not list courses"))
		return
	}

	filtered := catalogservice.FilterCourses(
		courses,
		r.URL.Query().Get("name"),
		r.URL.Query().Get("level"),
	)

	log.Info("list courses", "count", len(filtered))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(filtered),
		"courses":    filtered,
	}))
}
