// Package read реализует HTTP-обработчик для получения карточки заявки по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения
// заявки и возвращает её с подставленным названием курса и преподавателем.
package read

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
	"github.com/linguaplay/booking/internal/models"
)

// Handler обрабатывает запросы на получение заявки по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заявок
}

// Service описывает интерфейс бизнес-логики чтения заявки.
type Service interface {
	Details(ctx context.Context, id int) (*models.OrderDetails, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение заявки по ID.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.read"

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

	details, err := h.service.Details(r.Context(), id)
	if err != nil {
		log.Error("failed to read order", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not read order"))
		return
	}

	log.Info("success to read order", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"order": details,
	}))
}
