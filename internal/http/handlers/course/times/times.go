// Package times реализует HTTP-обработчик списка слотов времени курса
// на выбранную дату. Для даты без слотов возвращается пустой список:
// устаревшая дата из отредактированной заявки — не ошибка.
package times

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
	"github.com/linguaplay/booking/internal/lib/slots"
)

// Handler обрабатывает запросы на получение слотов времени курса.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заявок
}

// Service описывает интерфейс получения слотов времени на дату.
type Service interface {
	AvailableTimes(ctx context.Context, courseID int, date string) ([]slots.Slot, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение слотов времени.
// Дата передаётся параметром запроса date в формате 2006-01-02.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.times"

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

	date := r.URL.Query().Get("date")
	if date == "" {
		log.Error("missing date query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing date query parameter"))
		return
	}

	times, err := h.service.AvailableTimes(r.Context(), id, date)
	if err != nil {
		log.Error("failed to resolve times", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not resolve times"))
		return
	}

	log.Info("resolved times", slog.Int("course_id", id), slog.String("date", date), slog.Int("count", len(times)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"times": times,
	}))
}
