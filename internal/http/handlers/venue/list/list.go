// Package list реализует HTTP-обработчик справочника площадок.
// Справочник статический, поэтому обработчик работает без сервиса:
// фильтрация выполняется прямо по встроенным данным.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/linguaplay/booking/internal/http/response"
	"github.com/linguaplay/booking/internal/venues"
)

// Handler обрабатывает запросы списка площадок.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP возвращает площадки, подходящие под параметры type и query.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.venue.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filtered := venues.Filter(
		r.URL.Query().Get("type"),
		r.URL.Query().Get("query"),
	)

	log.Info("list venues", "count", len(filtered))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(filtered),
		"venues":     filtered,
	}))
}
