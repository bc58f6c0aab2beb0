package order

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/linguaplay/booking/internal/models"
)

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) CourseByID(ctx context.Context, id int) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *GatewayMock) TutorByID(ctx context.Context, id int) (*models.Tutor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tutor), args.Error(1)
}

func (m *GatewayMock) Courses(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *GatewayMock) Tutors(ctx context.Context) ([]models.Tutor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tutor), args.Error(1)
}

func (m *GatewayMock) Orders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *GatewayMock) OrderByID(ctx context.Context, id int) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *GatewayMock) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *GatewayMock) UpdateOrder(ctx context.Context, id int, order models.Order) (*models.Order, error) {
	args := m.Called(ctx, id, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *GatewayMock) DeleteOrder(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

// testNow — зафиксированный момент "сейчас": понедельник 1 июня 2026.
var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)

func newTestService(gateway *GatewayMock) *Service {
	s := New(gateway, newNoopLogger())
	s.now = func() time.Time { return testNow }
	return s
}

func testCourse() *models.Course {
	return &models.Course{
		ID:               42,
		Name:             "Английский с нуля",
		Teacher:          "А. П. Иванова",
		Level:            models.LevelBeginner,
		TotalLength:      4,
		WeekLength:       2,
		CourseFeePerHour: 1000,
		StartDates: []time.Time{
			time.Date(2026, 6, 10, 10, 0, 0, 0, time.Local),
			time.Date(2026, 6, 10, 18, 0, 0, 0, time.Local),
			time.Date(2026, 6, 12, 9, 30, 0, 0, time.Local),
		},
	}
}

func validDraft() models.OrderDraft {
	return models.OrderDraft{
		CourseID:  42,
		DateStart: "2026-06-10",
		TimeStart: "10:00",
		Persons:   1,
	}
}

func TestCreate_BuildsFullOrder(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	gateway.On("CourseByID", mock.Anything, 42).Return(testCourse(), nil)
	gateway.On("CreateOrder", mock.Anything, mock.AnythingOfType("models.Order")).
		Return(&models.Order{ID: 1, Price: 8400}, nil)

	created, err := service.Create(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	// Проверяем собранную заявку: цена 8400 (утренняя надбавка, будний день),
	// продолжительность скопирована из курса, авто-опции — снимок на момент отправки.
	sent := gateway.Calls[len(gateway.Calls)-1].Arguments.Get(1).(models.Order)
	assert.Equal(t, 42, sent.CourseID)
	assert.Equal(t, "2026-06-10", sent.DateStart)
	assert.Equal(t, "10:00", sent.TimeStart)
	assert.Equal(t, 4, sent.Duration)
	assert.Equal(t, 1, sent.Persons)
	assert.Equal(t, 8400, sent.Price)
	assert.Equal(t, models.AutoOptions{}, sent.AutoOptions)
}

func TestCreate_MissingDateRejectedWithoutGatewayCalls(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	draft := validDraft()
	draft.DateStart = ""

	_, err := service.Create(context.Background(), draft)

	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Violations, "выберите дату начала курса")

	// Отклонение по предусловиям происходит до любого сетевого вызова.
	gateway.AssertNotCalled(t, "CourseByID", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreate_MissingTimeRejectedWithoutGatewayCalls(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	draft := validDraft()
	draft.TimeStart = ""

	_, err := service.Create(context.Background(), draft)

	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Violations, "выберите время занятия")
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreate_StaleTimeRejectedBeforeMutation(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	gateway.On("CourseByID", mock.Anything, 42).Return(testCourse(), nil)

	draft := validDraft()
	draft.TimeStart = "12:00"

	_, err := service.Create(context.Background(), draft)

	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Violations, "выбранное время недоступно на эту дату")
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreate_GatewayFailureLeavesNoLocalState(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	gateway.On("CourseByID", mock.Anything, 42).Return(testCourse(), nil)
	gateway.On("CreateOrder", mock.Anything, mock.AnythingOfType("models.Order")).
		Return(nil, errors.New("каталог недоступен"))

	_, err := service.Create(context.Background(), validDraft())
	require.Error(t, err)

	_, ok := IsValidation(err)
	assert.False(t, ok)
}

func TestUpdate_SamePriceAsCreateForSameForm(t *testing.T) {
	draft := validDraft()
	draft.Persons = 5
	draft.Excursions = true

	createGateway := new(GatewayMock)
	createService := newTestService(createGateway)
	createGateway.On("CourseByID", mock.Anything, 42).Return(testCourse(), nil)
	createGateway.On("CreateOrder", mock.Anything, mock.AnythingOfType("models.Order")).
		Return(&models.Order{ID: 1}, nil)

	_, err := createService.Create(context.Background(), draft)
	require.NoError(t, err)

	updateGateway := new(GatewayMock)
	updateService := newTestService(updateGateway)
	updateGateway.On("CourseByID", mock.Anything, 42).Return(testCourse(), nil)
	updateGateway.On("UpdateOrder", mock.Anything, 9, mock.AnythingOfType("models.Order")).
		Return(&models.Order{ID: 9}, nil)

	_, err = updateService.Update(context.Background(), 9, draft)
	require.NoError(t, err)

	// Оба потока проходят через общий конвейер:
	// для одинаковой формы цена и снимок авто-опций обязаны совпасть.
	sentCreate := createGateway.Calls[len(createGateway.Calls)-1].Arguments.Get(1).(models.Order)
	sentUpdate := updateGateway.Calls[len(updateGateway.Calls)-1].Arguments.Get(2).(models.Order)
	assert.Equal(t, sentCreate.Price, sentUpdate.Price)
	assert.Equal(t, sentCreate.AutoOptions, sentUpdate.AutoOptions)
}

func TestQuote_ClampsPersons(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)
	gateway.On("CourseByID", mock.Anything, 42).Return(testCourse(), nil)

	over, err := service.Quote(context.Background(), models.QuoteRequest{
		CourseID: 42, DateStart: "2026-06-10", TimeStart: "10:00", Persons: 50,
	})
	require.NoError(t, err)

	exact, err := service.Quote(context.Background(), models.QuoteRequest{
		CourseID: 42, DateStart: "2026-06-10", TimeStart: "10:00", Persons: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, exact.Price, over.Price)
	assert.True(t, over.Auto.GroupEnrollment)
}

func TestQuote_IncompleteFormStillPriced(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)
	gateway.On("CourseByID", mock.Anything, 42).Return(testCourse(), nil)

	quote, err := service.Quote(context.Background(), models.QuoteRequest{CourseID: 42})
	require.NoError(t, err)

	// Форма без даты и времени: цена считается по выбранному,
	// а недостающие поля попадают в замечания.
	assert.Equal(t, 8000, quote.Price)
	assert.Contains(t, quote.Violations, "выберите дату начала курса")
	assert.Contains(t, quote.Violations, "выберите время занятия")
}

func TestQuote_NoTargetRejected(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	_, err := service.Quote(context.Background(), models.QuoteRequest{})

	_, ok := IsValidation(err)
	assert.True(t, ok)
}

func TestQuote_TutorTarget(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)
	gateway.On("TutorByID", mock.Anything, 7).Return(&models.Tutor{
		ID: 7, Name: "М. Смирнов", PricePerHour: 1200,
	}, nil)

	quote, err := service.Quote(context.Background(), models.QuoteRequest{
		TutorID: 7, DateStart: "2026-06-10", TimeStart: "14:00", Persons: 1, Duration: 2,
	})
	require.NoError(t, err)

	// Репетитор без курса: две недели по часу, без надбавок. 1200*2 = 2400.
	assert.Equal(t, 2400, quote.Price)
	assert.Empty(t, quote.Violations)
}

func TestList_FallbackLabelForDanglingReference(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	gateway.On("Orders", mock.Anything).Return([]models.Order{
		{ID: 7, CourseID: 99, DateStart: "2026-06-10", Price: 8400},
		{ID: 8, CourseID: 42, DateStart: "2026-06-12", Price: 9000},
		{ID: 9, TutorID: 7, DateStart: "2026-06-15", Price: 2400},
	}, nil)
	gateway.On("Courses", mock.Anything).Return([]models.Course{*testCourse()}, nil)
	gateway.On("Tutors", mock.Anything).Return([]models.Tutor{{ID: 7, Name: "М. Смирнов"}}, nil)

	rows, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Курс 99 исчез из каталога — строка получает заглушку, а не ошибку.
	assert.Equal(t, "Заявка #7", rows[0].Label)
	assert.Equal(t, "Английский с нуля", rows[1].Label)
	assert.Equal(t, "М. Смирнов", rows[2].Label)
}

func TestDetails_EnrichesOrder(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)

	gateway.On("OrderByID", mock.Anything, 8).Return(&models.Order{
		ID: 8, CourseID: 42, DateStart: "2026-06-10", TimeStart: "10:00", Price: 8400,
	}, nil)
	gateway.On("Courses", mock.Anything).Return([]models.Course{*testCourse()}, nil)
	gateway.On("Tutors", mock.Anything).Return([]models.Tutor{}, nil)

	details, err := service.Details(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "Английский с нуля", details.Label)
	assert.Equal(t, "А. П. Иванова", details.Teacher)
}

func TestRemove_DelegatesToGateway(t *testing.T) {
	gateway := new(GatewayMock)
	service := newTestService(gateway)
	gateway.On("DeleteOrder", mock.Anything, 5).Return(nil)

	require.NoError(t, service.Remove(context.Background(), 5))
	gateway.AssertExpectations(t)
}
