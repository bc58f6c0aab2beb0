// Package catalog реализует клиент удалённого сервиса каталога:
// курсы и репетиторы доступны только на чтение, заявки поддерживают
// полный CRUD. Ко всем запросам добавляется статический api_key.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linguaplay/booking/internal/lib/sl"
	"github.com/linguaplay/booking/internal/models"
)

// Client — HTTP-клиент каталога.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// New создаёт клиент каталога с таймаутом на запрос.
func New(baseURL, apiKey string, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// errorBody — тело ответа сервиса при неуспешном статусе.
type errorBody struct {
	Error string `json:"error"`
}

// do выполняет запрос к каталогу и декодирует JSON-ответ в out.
// Неуспешный статус превращается в ошибку с текстом из поля error ответа,
// а если сервис его не прислал — с кодом статуса.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	const op = "catalog.do"

	separator := "?"
	if strings.Contains(endpoint, "?") {
		separator = "&"
	}
	url := c.baseURL + endpoint + separator + "api_key=" + c.apiKey

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	log := c.log.With(
		slog.String("op", op),
		slog.String("catalog_request_id", requestID),
		slog.String("method", method),
		slog.String("endpoint", endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("catalog request failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Error == "" {
			eb.Error = fmt.Sprintf("ошибка %d", resp.StatusCode)
		}
		log.Error("catalog returned error", slog.Int("status", resp.StatusCode), slog.String("message", eb.Error))
		return fmt.Errorf("%s: %s", op, eb.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Error("failed to decode catalog response", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	log.Debug("catalog request done", slog.Int("status", resp.StatusCode))
	return nil
}

// Courses возвращает все курсы каталога.
func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseByID возвращает курс по идентификатору.
func (c *Client) CourseByID(ctx context.Context, id int) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Tutors возвращает всех репетиторов каталога.
func (c *Client) Tutors(ctx context.Context) ([]models.Tutor, error) {
	var tutors []models.Tutor
	if err := c.do(ctx, http.MethodGet, "/tutors", nil, &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

// TutorByID возвращает репетитора по идентификатору.
func (c *Client) TutorByID(ctx context.Context, id int) (*models.Tutor, error) {
	var tutor models.Tutor
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tutors/%d", id), nil, &tutor); err != nil {
		return nil, err
	}
	return &tutor, nil
}

// Orders возвращает все заявки пользователя.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderByID возвращает заявку по идентификатору.
func (c *Client) OrderByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder отправляет новую заявку и возвращает созданную запись.
func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrder целиком заменяет заявку по идентификатору (семантика PUT).
func (c *Client) UpdateOrder(ctx context.Context, id int, order models.Order) (*models.Order, error) {
	var updated models.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), order, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOrder удаляет заявку по идентификатору.
func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}
