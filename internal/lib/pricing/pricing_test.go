package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linguaplay/booking/internal/models"
)

// Понедельник и суббота для проверки множителя выходного дня.
const (
	weekdayDate = "2026-06-01"
	weekendDate = "2026-06-06"
)

func baseInput() Input {
	return Input{
		FeePerHour:  1000,
		TotalLength: 4,
		WeekLength:  2,
		Date:        weekdayDate,
		Time:        "10:00",
		Persons:     1,
	}
}

func TestTotal_BasePipeline(t *testing.T) {
	// totalHours = 4*2 = 8, будний день, утренняя надбавка 400:
	// (1000*8*1 + 400) * 1 = 8400
	assert.Equal(t, 8400, Total(baseInput()))
}

func TestTotal_GroupDiscountWithExcursions(t *testing.T) {
	in := baseInput()
	in.Auto = models.AutoOptions{GroupEnrollment: true}
	in.Options = models.OrderOptions{Excursions: true}

	// 8400 * 0.85 * 1.25 = 8925
	assert.Equal(t, 8925, Total(in))
}

func TestTotal_PersonsMultiplyBase(t *testing.T) {
	in := baseInput()
	in.Persons = 5
	in.Auto = models.AutoOptions{GroupEnrollment: true}
	in.Options = models.OrderOptions{Excursions: true}

	// База умножается на студентов до скидок: (8400*5) * 0.85 * 1.25 = 44625
	assert.Equal(t, 44625, Total(in))
}

func TestTotal_WeekendMultiplier(t *testing.T) {
	in := baseInput()
	in.Date = weekendDate
	in.Time = ""

	// 1000*8*1.5 = 12000
	assert.Equal(t, 12000, Total(in))
}

func TestTotal_EveningSurcharge(t *testing.T) {
	in := baseInput()
	in.Time = "18:30"

	assert.Equal(t, 9000, Total(in))
}

func TestTotal_NoSurchargeOutsideWindows(t *testing.T) {
	in := baseInput()
	in.Time = "14:00"

	assert.Equal(t, 8000, Total(in))
}

func TestTotal_EmptyDateAndTime(t *testing.T) {
	in := baseInput()
	in.Date = ""
	in.Time = ""

	// Пересчёт не ждёт заполнения формы: без даты и времени
	// множитель выходного дня и надбавки просто не применяются.
	assert.Equal(t, 8000, Total(in))
}

func TestTotal_OptionOrderIsLoadBearing(t *testing.T) {
	in := baseInput()
	in.Time = ""
	in.Options = models.OrderOptions{Assessment: true, Interactive: true}

	// Сертификация добавляется до интерактивного множителя:
	// (8000 + 300) * 1.5 = 12450, а не 8000*1.5 + 300 = 12300.
	assert.Equal(t, 12450, Total(in))
}

func TestTotal_AllAdjustmentsCompound(t *testing.T) {
	in := Input{
		FeePerHour:  1000,
		TotalLength: 4,
		WeekLength:  5,
		Date:        weekendDate,
		Time:        "10:00",
		Persons:     5,
		Auto: models.AutoOptions{
			EarlyRegistration: true,
			GroupEnrollment:   true,
			IntensiveCourse:   true,
		},
		Options: models.OrderOptions{
			Supplementary: true,
			Personalized:  true,
			Excursions:    true,
			Assessment:    true,
			Interactive:   true,
		},
	}

	// totalHours = 20, выходной: 1000*20*1.5 = 30000; +400 утро; *5 студентов = 152000
	// авто: *0.9*0.85*1.2 = 139536
	// опции: +2000*5 = 149536; +1500*4 = 155536; *1.25 = 194420; +300 = 194720; *1.5 = 292080
	assert.Equal(t, 292080, Total(in))
}

func TestTotal_Deterministic(t *testing.T) {
	in := baseInput()
	in.Persons = 3
	in.Options = models.OrderOptions{Supplementary: true, Assessment: true}

	first := Total(in)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Total(in))
	}
}
