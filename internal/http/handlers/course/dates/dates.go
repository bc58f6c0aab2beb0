// Package dates реализует HTTP-обработчик списка дат начала курса.
//
// Слоты курса группируются по календарным датам: несколько слотов
// в один день дают одну дату в списке выбора.
package dates

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/linguaplay/booking/internal/http/response"
	"github.com/linguaplay/booking/internal/lib/sl"
)

// Handler обрабатывает запросы на получение дат начала курса.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заявок
}

// Service описывает интерфейс получения дат начала курса.
type Service interface {
	AvailableDates(ctx context.Context, courseID int) ([]string, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение дат начала курса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.dates"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	dates, err := h.service.AvailableDates(r.Context(), id)
	if err != nil {
		log.Error("failed to resolve dates", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not resolve dates"))
		return
	}

	log.Info("resolved dates", slog.Int("course_id", id), slog.Int("count", len(dates)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"dates": dates,
	}))
}
