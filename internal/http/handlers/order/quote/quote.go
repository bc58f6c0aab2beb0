// Package quote реализует HTTP-обработчик живого пересчёта стоимости.
//
// Интерфейс вызывает этот эндпоинт на каждое изменение поля формы:
// ответ содержит актуальную стоимость, автоматические опции и список
// замечаний, мешающих отправке формы в текущем виде. Пересчёт выполняется
// и для незаполненной формы, чтобы отображаемая цена никогда не устаревала.
package quote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/linguaplay/booking/internal/http/response"
	"github.com/linguaplay/booking/internal/lib/sl"
	"github.com/linguaplay/booking/internal/models"
	orderservice "github.com/linguaplay/booking/internal/services/order"
)

// Handler управляет HTTP-запросами пересчёта стоимости.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики заявок
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики пересчёта стоимости.
type Service interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
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
// @Summary Пересчитать стоимость заявки
// @Description Возвращает стоимость, автоматические опции и замечания для текущего состояния формы.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Param request body models.QuoteRequest true "Состояние формы"
// @Success 200 {object} map[string]any "Результат пересчёта"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Не выбран курс или репетитор"
// @Failure 502 {object} response.ErrorResponse "Каталог недоступен"
// @Router /orders/quote [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.quote"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	quote, err := h.service.Quote(r.Context(), req)
	if err != nil {
		if ve, ok := orderservice.IsValidation(err); ok {
			log.Error("quote preconditions failed", sl.Err(ve))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(ve.Error()))
			return
		}
		log.Error("failed to calculate quote", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not calculate quote"))
		return
	}

	log.Info("quote calculated", slog.Int("price", quote.Price))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"quote": quote,
	}))
}
