// Package rules вычисляет автоматические скидки и надбавки заявки.
// Функция чистая: все три признака независимы друг от друга
// и не зависят ни от ручных опций, ни от стоимости.
package rules

import (
	"math"
	"time"

	"github.com/linguaplay/booking/internal/models"
)

// Пороговые значения автоматических правил.
const (
	earlyRegistrationDays = 30 // Минимум дней до начала для ранней регистрации
	groupEnrollmentMin    = 5  // Минимум студентов для групповой скидки
	intensiveWeekHours    = 5  // Минимум часов в неделю для интенсива
)

// Evaluate возвращает набор автоматических опций для выбранной даты начала
// (формат 2006-01-02, пустая строка — дата не выбрана), количества студентов
// и интенсивности курса. Момент "сейчас" передаётся параметром,
// чтобы правило ранней регистрации было воспроизводимо в тестах.
//
// Дата в прошлом даёт отрицательную разницу и раннюю регистрацию не включает.
func Evaluate(dateStart string, persons, weekLength int, now time.Time) models.AutoOptions {
	var opts models.AutoOptions

	if dateStart != "" {
		if start, err := time.ParseInLocation("2006-01-02", dateStart, now.Location()); err == nil {
			diffDays := math.Ceil(start.Sub(now).Hours() / 24)
			if diffDays >= earlyRegistrationDays {
				opts.EarlyRegistration = true
			}
		}
	}
	if persons >= groupEnrollmentMin {
		opts.GroupEnrollment = true
	}
	if weekLength >= intensiveWeekHours {
		opts.IntensiveCourse = true
	}
	return opts
}

// ClampPersons приводит количество студентов к допустимому диапазону [1, 20].
// Выполняется перед любым расчётом стоимости.
func ClampPersons(persons int) int {
	if persons < 1 {
		return 1
	}
	if persons > 20 {
		return 20
	}
	return persons
}
