// Package list реализует HTTP-обработчик списка репетиторов каталога
// с фильтрацией по уровню языка и минимальному стажу.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/linguaplay/booking/internal/http/response"
	"github.com/linguaplay/booking/internal/lib/sl"
	"github.com/linguaplay/booking/internal/models"
	catalogservice "github.com/linguaplay/booking/internal/services/catalog"
)

// Handler обрабатывает запросы на получение списка репетиторов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис чтения каталога
}

// Service описывает интерфейс чтения репетиторов каталога.
type Service interface {
	Tutors(ctx context.Context) ([]models.Tutor, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список репетиторов
// @Description Возвращает репетиторов; параметры level и min_experience фильтруют список.
// @Tags Tutors
// @Produce  json
// @Param level query string false "Уровень языка"
// @Param min_experience query int false "Минимальный стаж в годах"
// @Success 200 {object} map[string]any "Список репетиторов"
// @Failure 502 {object} response.ErrorResponse "Каталог недоступен"
// @Router /tutors [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tutor.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tutors, err := h.service.Tutors(r.Context())
	if err != nil {
		log.Error("failed to list tutors", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not list tutors"))
		return
	}

	minExperience := 0
	if raw := r.URL.Query().Get("min_experience"); raw != "" {
		minExperience, err = strconv.Atoi(raw)
		if err != nil {
			log.Error("failed to decode min_experience", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("min_experience must be a number"))
			return
		}
	}

	filtered := catalogservice.FilterTutors(tutors, r.URL.Query().Get("level"), minExperience)

	log.Info("list tutors", "count", len(filtered))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(filtered),
		"tutors":     filtered,
	}))
}
