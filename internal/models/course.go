// Package models содержит доменные структуры каталога языковой школы:
// курсы, репетиторы и заявки, а также вспомогательные типы
// для приёма данных из JSON-запросов.
package models

import "time"

// Уровни владения языком, приходящие из каталога.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course представляет курс из удалённого каталога.
// Записи неизменяемы после загрузки: каталог доступен только на чтение.
// Каждый элемент StartDates — это один предлагаемый слот начала занятий,
// несколько слотов могут приходиться на одну календарную дату.
type Course struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Teacher          string      `json:"teacher"`
	Level            string      `json:"level"`
	TotalLength      int         `json:"total_length"`        // Длительность курса в неделях
	WeekLength       int         `json:"week_length"`         // Часов в неделю
	CourseFeePerHour float64     `json:"course_fee_per_hour"` // Ставка за час
	StartDates       []time.Time `json:"start_dates"`
	CreatedAt        time.Time   `json:"created_at,omitempty"`
}

// Tutor представляет репетитора из удалённого каталога.
type Tutor struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	WorkExperience   int      `json:"work_experience"` // Стаж в годах
	LanguagesOffered []string `json:"languages_offered"`
	LanguageLevel    string   `json:"language_level"`
	PricePerHour     float64  `json:"price_per_hour"`
}
