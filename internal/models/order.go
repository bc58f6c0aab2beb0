package models

import "time"

// AutoOptions — результат вычисления автоматических скидок и надбавок.
// В заявке эти флаги сохраняются как снимок на момент отправки формы
// и в дальнейшем не пересчитываются при чтении.
type AutoOptions struct {
	EarlyRegistration bool `json:"early_registration"` // Дата начала не раньше чем через 30 дней: −10%
	GroupEnrollment   bool `json:"group_enrollment"`   // От 5 студентов: −15%
	IntensiveCourse   bool `json:"intensive_course"`   // От 5 часов в неделю: +20%
}

// OrderOptions — дополнительные опции, отмечаемые пользователем вручную.
type OrderOptions struct {
	Supplementary bool `json:"supplementary"` // Доп. материалы: +2000 за студента
	Personalized  bool `json:"personalized"`  // Персональный план: +1500 за неделю
	Excursions    bool `json:"excursions"`    // Экскурсии: +25%
	Assessment    bool `json:"assessment"`    // Сертификация: +300
	Interactive   bool `json:"interactive"`   // Интерактивные занятия: +50%
}

// Order — заявка на курс или занятия с репетитором, как её хранит
// удалённый сервис. CourseID и TutorID равны нулю, если соответствующая
// цель не выбрана. Price — округлённый результат калькулятора стоимости
// на момент создания или обновления заявки, сервисом не перепроверяется.
type Order struct {
	ID        int    `json:"id"`
	CourseID  int    `json:"course_id,omitempty"`
	TutorID   int    `json:"tutor_id,omitempty"`
	DateStart string `json:"date_start"` // Формат 2006-01-02
	TimeStart string `json:"time_start"` // Формат 15:04
	Duration  int    `json:"duration"`   // Недель, копируется из курса при отправке
	Persons   int    `json:"persons"`
	Price     int    `json:"price"`
	AutoOptions
	OrderOptions
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// OrderDraft используется для приёма данных формы заявки из JSON-запроса,
// прежде чем сервис соберёт из них полную Order. Дата и время обязательны:
// без них заявка отклоняется до обращения к каталогу.
type OrderDraft struct {
	CourseID  int    `json:"course_id" validate:"omitempty,gt=0"`
	TutorID   int    `json:"tutor_id" validate:"omitempty,gt=0"`
	DateStart string `json:"date_start" validate:"required,datetime=2006-01-02"`
	TimeStart string `json:"time_start" validate:"required,datetime=15:04"`
	Duration  int    `json:"duration" validate:"omitempty,gt=0"`
	Persons   int    `json:"persons" validate:"required,gte=1,lte=20"`
	OrderOptions
}

// QuoteRequest — состояние формы для живого пересчёта стоимости.
// В отличие от OrderDraft дата и время могут отсутствовать:
// пересчёт выполняется на каждое изменение поля, даже пока форма не заполнена.
type QuoteRequest struct {
	CourseID  int    `json:"course_id" validate:"omitempty,gt=0"`
	TutorID   int    `json:"tutor_id" validate:"omitempty,gt=0"`
	DateStart string `json:"date_start" validate:"omitempty,datetime=2006-01-02"`
	TimeStart string `json:"time_start" validate:"omitempty,datetime=15:04"`
	Duration  int    `json:"duration" validate:"omitempty,gt=0"`
	Persons   int    `json:"persons"`
	OrderOptions
}

// Quote — ответ живого пересчёта: стоимость, автоматические опции
// и список замечаний, мешающих отправить форму в текущем виде.
type Quote struct {
	Price      int         `json:"price"`
	Auto       AutoOptions `json:"auto_options"`
	Violations []string    `json:"violations,omitempty"`
}

// OrderRow — строка списка заявок личного кабинета. Label подставляет
// название курса либо имя репетитора; если ссылка "повисла" и цель
// не найдена в свежем каталоге, выводится заглушка вместо ошибки.
type OrderRow struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	DateStart string `json:"date_start"`
	Price     int    `json:"price"`
}

// OrderDetails — карточка заявки с подробностями для модального окна.
type OrderDetails struct {
	Order
	Label   string `json:"label"`
	Teacher string `json:"teacher"`
}
