// Package update реализует HTTP-обработчик редактирования заявки.
//
// Handler извлекает ID из URL, валидирует данные формы и прогоняет их
// через тот же конвейер сборки, что и создание заявки: расхождение цены
// между двумя потоками для одинаковой формы считается дефектом.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/linguaplay/booking/internal/http/response"
	"github.com/linguaplay/booking/internal/lib/sl"
	"github.com/linguaplay/booking/internal/models"
	orderservice "github.com/linguaplay/booking/internal/services/order"
)

// Handler управляет HTTP-запросами на редактирование заявок.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики заявок
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики обновления заявки.
type Service interface {
	Update(ctx context.Context, id int, draft models.OrderDraft) (*models.Order, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить заявку
// @Description Целиком заменяет заявку, пересчитав стоимость по текущим данным формы.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Param id path int true "ID заявки"
// @Param request body models.OrderDraft true "Данные формы заявки"
// @Success 200 {object} map[string]any "Обновлённая заявка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Каталог недоступен"
// @Router /orders/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.update"
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

	var draft models.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(draft); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.service.Update(r.Context(), id, draft)
	if err != nil {
		if ve, ok := orderservice.IsValidation(err); ok {
			log.Error("order preconditions failed", sl.Err(ve))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(ve.Error()))
			return
		}
		log.Error("failed to update order", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not update order"))
		return
	}

	log.Info("success to update order", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"order": updated,
	}))
}
