// Package create реализует HTTP-обработчик для создания новой заявки.
//
// Handler принимает JSON-запрос с данными формы, валидирует их,
// вызывает бизнес-логику сборки и отправки заявки через сервис
// и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

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

// Handler управляет HTTP-запросами на создание заявок.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для сборки и отправки заявки,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики заявок
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания заявки.
type Service interface {
	Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
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
// @Summary Создать новую заявку
// @Description Собирает заявку из данных формы, считает стоимость и отправляет её в каталог.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Param request body models.OrderDraft true "Данные формы заявки"
// @Success 200 {object} map[string]any "Созданная заявка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Каталог недоступен"
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var draft models.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", draft))

	if err := h.validate.Struct(draft); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	created, err := h.service.Create(r.Context(), draft)
	if err != nil {
		if ve, ok := orderservice.IsValidation(err); ok {
			log.Error("order preconditions failed", sl.Err(ve))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(ve.Error()))
			return
		}
		log.Error("failed to create order", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not create order"))
		return
	}

	log.Info("success to create order", slog.Int("id", created.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"order": created,
	}))
}
