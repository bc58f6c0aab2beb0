// Package list реализует HTTP-обработчик списка заявок личного кабинета.
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
)

// Handler обрабатывает запросы на получение списка заявок.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заявок
}

// Service описывает интерфейс бизнес-логики списка заявок.
type Service interface {
	List(ctx context.Context) ([]models.OrderRow, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает строки списка заявок: для каждой заявки
// подставлено название курса или имя репетитора, для повисших
// ссылок — заглушка.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rows, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not list orders"))
		return
	}

	log.Info("list orders", "count", len(rows))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(rows),
		"orders":     rows,
	}))
}
