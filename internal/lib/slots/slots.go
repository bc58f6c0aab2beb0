// Package slots превращает список слотов начала занятий курса
// в варианты выбора даты и времени для формы заявки.
package slots

import (
	"sort"
	"time"
)

// DateLayout — формат календарной даты, используемый формой и заявками.
const DateLayout = "2006-01-02"

// TimeLayout — формат времени занятия.
const TimeLayout = "15:04"

// Slot — один вариант времени занятия на выбранную дату.
type Slot struct {
	Start string `json:"start"` // Начало, 15:04
	End   string `json:"end"`   // Окончание, 15:04
}

// Dates группирует слоты курса по календарным датам в локальном времени
// и возвращает отсортированный список уникальных дат. Несколько слотов,
// отличающихся только временем суток, схлопываются в одну дату.
func Dates(startDates []time.Time) []string {
	seen := make(map[string]struct{}, len(startDates))
	var dates []string
	for _, dt := range startDates {
		key := dt.Local().Format(DateLayout)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates
}

// Times возвращает слоты, приходящиеся на выбранную дату, в порядке
// следования по времени. Окончание занятия считается как начало плюс
// weekLength часов: каталог переиспользует поле "часов в неделю" как
// длительность одного занятия, поведение сохранено намеренно.
//
// Для даты без слотов (например, устаревшей после правки курса)
// возвращается пустой список, а не ошибка.
func Times(startDates []time.Time, date string, weekLength int) []Slot {
	if weekLength < 1 {
		weekLength = 1
	}
	var starts []time.Time
	for _, dt := range startDates {
		local := dt.Local()
		if local.Format(DateLayout) == date {
			starts = append(starts, local)
		}
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		end := start.Add(time.Duration(weekLength) * time.Hour)
		slots = append(slots, Slot{
			Start: start.Format(TimeLayout),
			End:   end.Format(TimeLayout),
		})
	}
	return slots
}

// Contains сообщает, есть ли среди слотов на дату слот с данным временем начала.
func Contains(startDates []time.Time, date, timeStart string, weekLength int) bool {
	for _, slot := range Times(startDates, date, weekLength) {
		if slot.Start == timeStart {
			return true
		}
	}
	return false
}
