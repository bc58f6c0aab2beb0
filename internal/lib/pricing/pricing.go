// Package pricing вычисляет итоговую стоимость заявки.
//
// Конвейер расчёта фиксирован и чувствителен к порядку: мультипликативные
// и аддитивные поправки не коммутируют, поэтому шаги применяются строго
// в той последовательности, в которой они описаны в Total.
package pricing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/linguaplay/booking/internal/models"
)

// Тарифы поправок стоимости.
const (
	weekendMultiplier = 1.5  // Суббота и воскресенье
	morningSurcharge  = 400  // Начало занятия в [9, 12)
	eveningSurcharge  = 1000 // Начало занятия в [18, 20)

	earlyRegistrationMul = 0.9
	groupEnrollmentMul   = 0.85
	intensiveCourseMul   = 1.2

	supplementaryPerPerson = 2000
	personalizedPerWeek    = 1500
	excursionsMul          = 1.25
	assessmentFlat         = 300
	interactiveMul         = 1.5
)

// Input — исходные данные расчёта. Date и Time могут быть пустыми:
// пока они не выбраны, соответствующие поправки не применяются,
// но стоимость всё равно считается, чтобы форма никогда не показывала
// устаревшее значение.
type Input struct {
	FeePerHour  float64
	TotalLength int    // Недель
	WeekLength  int    // Часов в неделю
	Date        string // 2006-01-02, опционально
	Time        string // 15:04, опционально
	Persons     int
	Auto        models.AutoOptions
	Options     models.OrderOptions
}

// Total считает стоимость заявки и округляет её до целого.
//
// Порядок шагов:
//  1. totalHours = недели × часов в неделю;
//  2. множитель выходного дня по дате;
//  3. утренняя либо вечерняя надбавка по часу начала (диапазоны не пересекаются);
//  4. база = (ставка × часы × множитель + надбавки) × студенты;
//  5. автоматические опции: ×0.9, ×0.85, ×1.2 — перемножаются при совпадении;
//  6. ручные опции строго по порядку: +2000×студенты, +1500×недели, ×1.25, +300, ×1.5.
func Total(in Input) int {
	totalHours := float64(in.TotalLength * in.WeekLength)

	weekendMul := 1.0
	if day, ok := weekday(in.Date); ok && (day == time.Saturday || day == time.Sunday) {
		weekendMul = weekendMultiplier
	}

	var morningSur, eveningSur float64
	if hour, ok := startHour(in.Time); ok {
		switch {
		case hour >= 9 && hour < 12:
			morningSur = morningSurcharge
		case hour >= 18 && hour < 20:
			eveningSur = eveningSurcharge
		}
	}

	cost := (in.FeePerHour*totalHours*weekendMul + morningSur + eveningSur) * float64(in.Persons)

	if in.Auto.EarlyRegistration {
		cost *= earlyRegistrationMul
	}
	if in.Auto.GroupEnrollment {
		cost *= groupEnrollmentMul
	}
	if in.Auto.IntensiveCourse {
		cost *= intensiveCourseMul
	}

	if in.Options.Supplementary {
		cost += supplementaryPerPerson * float64(in.Persons)
	}
	if in.Options.Personalized {
		cost += personalizedPerWeek * float64(in.TotalLength)
	}
	if in.Options.Excursions {
		cost *= excursionsMul
	}
	if in.Options.Assessment {
		cost += assessmentFlat
	}
	if in.Options.Interactive {
		cost *= interactiveMul
	}

	return int(math.Round(cost))
}

func weekday(date string) (time.Weekday, bool) {
	if date == "" {
		return 0, false
	}
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, false
	}
	return d.Weekday(), true
}

func startHour(t string) (int, bool) {
	if t == "" {
		return 0, false
	}
	parts := strings.SplitN(t, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return hour, true
}
