// Package order содержит бизнес-логику заявок: живой пересчёт стоимости,
// проверку формы и единый конвейер сборки заявки, общий для создания
// и редактирования. Обе операции проходят через buildOrder, поэтому
// для одинакового итогового состояния формы они всегда дают одну и ту же цену.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/linguaplay/booking/internal/lib/pricing"
	"github.com/linguaplay/booking/internal/lib/rules"
	"github.com/linguaplay/booking/internal/lib/slots"
	"github.com/linguaplay/booking/internal/models"
)

// Тексты замечаний формы.
const (
	violationNoTarget    = "выберите курс или репетитора"
	violationNoDate      = "выберите дату начала курса"
	violationNoTime      = "выберите время занятия"
	violationStaleDate   = "выбранная дата недоступна для этого курса"
	violationStaleTime   = "выбранное время недоступно на эту дату"
	fallbackLabelPattern = "Заявка #%d"
)

// Занятия с репетитором без курса: длительность по умолчанию одна неделя,
// интенсивность считается равной одному часу в неделю.
const (
	tutorDefaultWeeks = 1
	tutorWeekHours    = 1
)

// ValidationError — нарушение предусловий формы. Заявка с такими нарушениями
// не отправляется в каталог: шлюз не вызывается вовсе.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// Gateway определяет методы шлюза каталога, нужные сервису заявок.
type Gateway interface {
	// CourseByID возвращает курс по ID.
	CourseByID(ctx context.Context, id int) (*models.Course, error)
	// TutorByID возвращает репетитора по ID.
	TutorByID(ctx context.Context, id int) (*models.Tutor, error)
	// Courses возвращает все курсы.
	Courses(ctx context.Context) ([]models.Course, error)
	// Tutors возвращает всех репетиторов.
	Tutors(ctx context.Context) ([]models.Tutor, error)
	// Orders возвращает все заявки.
	Orders(ctx context.Context) ([]models.Order, error)
	// OrderByID возвращает заявку по ID.
	OrderByID(ctx context.Context, id int) (*models.Order, error)
	// CreateOrder создаёт заявку и возвращает созданную запись.
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	// UpdateOrder целиком заменяет заявку по ID.
	UpdateOrder(ctx context.Context, id int, order models.Order) (*models.Order, error)
	// DeleteOrder удаляет заявку по ID.
	DeleteOrder(ctx context.Context, id int) error
}

// Service реализует бизнес-логику заявок поверх шлюза каталога.
// Все вычисления синхронны; момент "сейчас" берётся из поля now,
// чтобы правило ранней регистрации было воспроизводимо в тестах.
type Service struct {
	gateway Gateway
	log     *slog.Logger
	now     func() time.Time
}

// New создает новый Service заявок.
func New(gateway Gateway, log *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		log:     log,
		now:     time.Now,
	}
}

// AvailableDates возвращает уникальные календарные даты начала курса.
func (s *Service) AvailableDates(ctx context.Context, courseID int) ([]string, error) {
	course, err := s.gateway.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return slots.Dates(course.StartDates), nil
}

// AvailableTimes возвращает слоты времени курса на выбранную дату.
// Для даты без слотов возвращается пустой список.
func (s *Service) AvailableTimes(ctx context.Context, courseID int, date string) ([]slots.Slot, error) {
	course, err := s.gateway.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return slots.Times(course.StartDates, date, course.WeekLength), nil
}

// target — расчётные параметры выбранного курса либо репетитора.
type target struct {
	courseID   int
	tutorID    int
	feePerHour float64
	weeks      int
	weekLength int
	course     *models.Course
}

// resolveTarget загружает курс или репетитора и выделяет параметры расчёта.
func (s *Service) resolveTarget(ctx context.Context, courseID, tutorID, draftDuration int) (*target, error) {
	switch {
	case courseID != 0:
		course, err := s.gateway.CourseByID(ctx, courseID)
		if err != nil {
			return nil, err
		}
		return &target{
			courseID:   courseID,
			tutorID:    tutorID,
			feePerHour: course.CourseFeePerHour,
			weeks:      course.TotalLength,
			weekLength: course.WeekLength,
			course:     course,
		}, nil
	case tutorID != 0:
		tutor, err := s.gateway.TutorByID(ctx, tutorID)
		if err != nil {
			return nil, err
		}
		weeks := draftDuration
		if weeks < 1 {
			weeks = tutorDefaultWeeks
		}
		return &target{
			tutorID:    tutorID,
			feePerHour: tutor.PricePerHour,
			weeks:      weeks,
			weekLength: tutorWeekHours,
		}, nil
	default:
		return nil, &ValidationError{Violations: []string{violationNoTarget}}
	}
}

// Quote пересчитывает стоимость и автоматические опции по текущему
// состоянию формы. Вызывается на каждое изменение поля, поэтому работает
// и с незаполненной формой: недостающие поля попадают в Violations,
// а стоимость считается по тому, что уже выбрано.
func (s *Service) Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	tgt, err := s.resolveTarget(ctx, req.CourseID, req.TutorID, req.Duration)
	if err != nil {
		return nil, err
	}

	persons := rules.ClampPersons(req.Persons)
	violations := s.checkSlots(tgt, req.DateStart, req.TimeStart)

	auto := rules.Evaluate(req.DateStart, persons, tgt.weekLength, s.now())
	price := pricing.Total(pricing.Input{
		FeePerHour:  tgt.feePerHour,
		TotalLength: tgt.weeks,
		WeekLength:  tgt.weekLength,
		Date:        req.DateStart,
		Time:        req.TimeStart,
		Persons:     persons,
		Auto:        auto,
		Options:     req.OrderOptions,
	})

	return &models.Quote{Price: price, Auto: auto, Violations: violations}, nil
}

// checkSlots проверяет дату и время формы против слотов выбранной цели.
func (s *Service) checkSlots(tgt *target, date, timeStart string) []string {
	var violations []string

	if date == "" {
		violations = append(violations, violationNoDate)
	} else if tgt.course != nil && len(slots.Times(tgt.course.StartDates, date, tgt.weekLength)) == 0 {
		violations = append(violations, violationStaleDate)
	}

	if timeStart == "" {
		violations = append(violations, violationNoTime)
	} else if tgt.course != nil && date != "" &&
		!slots.Contains(tgt.course.StartDates, date, timeStart, tgt.weekLength) {
		violations = append(violations, violationStaleTime)
	}

	return violations
}

// buildOrder — единый конвейер отправки формы: проверка предусловий,
// снимок автоматических опций, расчёт стоимости и сборка полной заявки.
// Создание и редактирование отличаются только тем, куда уходит результат.
//
// Пустая дата или время отклоняются до какого-либо обращения к каталогу:
// заявка с нарушенными предусловиями не порождает ни одного сетевого вызова.
func (s *Service) buildOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	var missing []string
	if draft.DateStart == "" {
		missing = append(missing, violationNoDate)
	}
	if draft.TimeStart == "" {
		missing = append(missing, violationNoTime)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Violations: missing}
	}

	tgt, err := s.resolveTarget(ctx, draft.CourseID, draft.TutorID, draft.Duration)
	if err != nil {
		return nil, err
	}

	persons := rules.ClampPersons(draft.Persons)
	if violations := s.checkSlots(tgt, draft.DateStart, draft.TimeStart); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	auto := rules.Evaluate(draft.DateStart, persons, tgt.weekLength, s.now())
	price := pricing.Total(pricing.Input{
		FeePerHour:  tgt.feePerHour,
		TotalLength: tgt.weeks,
		WeekLength:  tgt.weekLength,
		Date:        draft.DateStart,
		Time:        draft.TimeStart,
		Persons:     persons,
		Auto:        auto,
		Options:     draft.OrderOptions,
	})

	return &models.Order{
		CourseID:     tgt.courseID,
		TutorID:      tgt.tutorID,
		DateStart:    draft.DateStart,
		TimeStart:    draft.TimeStart,
		Duration:     tgt.weeks,
		Persons:      persons,
		Price:        price,
		AutoOptions:  auto,
		OrderOptions: draft.OrderOptions,
	}, nil
}

// Create собирает заявку по данным формы и отправляет её в каталог.
// При нарушении предусловий шлюз не вызывается.
func (s *Service) Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	order, err := s.buildOrder(ctx, draft)
	if err != nil {
		return nil, err
	}

	created, err := s.gateway.CreateOrder(ctx, *order)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new order", slog.Int("id", created.ID), slog.Int("price", created.Price))
	return created, nil
}

// Update прогоняет данные формы через тот же конвейер, что и Create,
// и целиком заменяет заявку в каталоге (семантика PUT).
func (s *Service) Update(ctx context.Context, id int, draft models.OrderDraft) (*models.Order, error) {
	order, err := s.buildOrder(ctx, draft)
	if err != nil {
		return nil, err
	}

	updated, err := s.gateway.UpdateOrder(ctx, id, *order)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated order", slog.Int("id", id), slog.Int("price", updated.Price))
	return updated, nil
}

// Remove удаляет заявку по ID.
func (s *Service) Remove(ctx context.Context, id int) error {
	if err := s.gateway.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed order", slog.Int("id", id))
	return nil
}

// List возвращает строки списка заявок личного кабинета. Название курса
// либо имя репетитора подставляется из свежезагруженного каталога;
// повисшая ссылка выводится заглушкой, а не ошибкой.
func (s *Service) List(ctx context.Context) ([]models.OrderRow, error) {
	orders, err := s.gateway.Orders(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.gateway.Courses(ctx)
	if err != nil {
		return nil, err
	}
	tutors, err := s.gateway.Tutors(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, models.OrderRow{
			ID:        o.ID,
			Label:     label(o, courses, tutors),
			DateStart: o.DateStart,
			Price:     o.Price,
		})
	}
	return rows, nil
}

// Details возвращает карточку заявки с названием курса и преподавателем.
func (s *Service) Details(ctx context.Context, id int) (*models.OrderDetails, error) {
	order, err := s.gateway.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	courses, err := s.gateway.Courses(ctx)
	if err != nil {
		return nil, err
	}
	tutors, err := s.gateway.Tutors(ctx)
	if err != nil {
		return nil, err
	}

	details := &models.OrderDetails{
		Order:   *order,
		Label:   label(*order, courses, tutors),
		Teacher: "—",
	}
	if course := findCourse(courses, order.CourseID); course != nil {
		details.Teacher = course.Teacher
	} else if tutor := findTutor(tutors, order.TutorID); tutor != nil {
		details.Teacher = tutor.Name
	}
	return details, nil
}

// IsValidation сообщает, является ли ошибка нарушением предусловий формы.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func label(o models.Order, courses []models.Course, tutors []models.Tutor) string {
	if course := findCourse(courses, o.CourseID); course != nil {
		return course.Name
	}
	if tutor := findTutor(tutors, o.TutorID); tutor != nil {
		return tutor.Name
	}
	return fmt.Sprintf(fallbackLabelPattern, o.ID)
}

func findCourse(courses []models.Course, id int) *models.Course {
	for i := range courses {
		if id != 0 && courses[i].ID == id {
			return &courses[i]
		}
	}
	return nil
}

func findTutor(tutors []models.Tutor, id int) *models.Tutor {
	for i := range tutors {
		if id != 0 && tutors[i].ID == id {
			return &tutors[i]
		}
	}
	return nil
}
