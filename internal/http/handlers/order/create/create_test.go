package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linguaplay/booking/internal/models"
	orderservice "github.com/linguaplay/booking/internal/services/order"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := models.OrderDraft{
		CourseID:  42,
		DateStart: "2026-06-10",
		TimeStart: "10:00",
		Persons:   2,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное создание заявки",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("models.OrderDraft")).
					Return(&models.Order{ID: 1, CourseID: 42, Price: 8400}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":8400`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка валидации",
			requestBody: models.OrderDraft{
				CourseID: 42,
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field DateStart is a required field, field TimeStart is a required field, field Persons is a required field"}`,
		},
		{
			name: "нарушены предусловия формы",
			requestBody: models.OrderDraft{
				CourseID:  42,
				DateStart: "2026-06-11",
				TimeStart: "10:00",
				Persons:   2,
			},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("models.OrderDraft")).
					Return(nil, &orderservice.ValidationError{
						Violations: []string{"выбранная дата недоступна для этого курса"},
					})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"выбранная дата недоступна для этого курса"}`,
		},
		{
			name:        "каталог недоступен",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("models.OrderDraft")).
					Return(nil, errors.New("gateway timeout"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"could not create order"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
