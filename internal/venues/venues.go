// Package venues содержит статический справочник площадок для изучения
// языков в Москве. Данные встроены в сервис: карта на стороне интерфейса
// только отображает отфильтрованный список и метки по координатам.
package venues

import "strings"

// Типы площадок.
const (
	TypeSchool  = "school"
	TypeLibrary = "library"
	TypeCafe    = "cafe"
	TypeCenter  = "center"
	TypeClub    = "club"
)

// Venue — площадка каталога: языковая школа, библиотека, кафе, центр или клуб.
type Venue struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	TypeName    string     `json:"type_name"`
	Coordinates [2]float64 `json:"coordinates"` // Широта, долгота
	Address     string     `json:"address"`
	Hours       string     `json:"hours"`
	Phone       string     `json:"phone"`
	Description string     `json:"description"`
}

var directory = []Venue{
	{
		ID: 1, Name: "Языковая школа \"Полиглот\"", Type: TypeSchool, TypeName: "языковая школа",
		Coordinates: [2]float64{55.7558, 37.6173}, Address: "ул. Тверская, 12, Москва",
		Hours: "Пн-Пт: 9:00-21:00, Сб: 10:00-18:00", Phone: "+7 (495) 123-45-67",
		Description: "Курсы английского, немецкого, французского языков. Подготовка к IELTS, TOEFL.",
	},
	{
		ID: 2, Name: "Библиотека иностранной литературы", Type: TypeLibrary, TypeName: "библиотека",
		Coordinates: [2]float64{55.7470, 37.6377}, Address: "ул. Николоямская, 1, Москва",
		Hours: "Пн-Сб: 10:00-20:00, Вс: выходной", Phone: "+7 (495) 915-36-36",
		Description: "Богатая коллекция книг на иностранных языках. Разговорные клубы.",
	},
	{
		ID: 3, Name: "Language Cafe \"Speak Up\"", Type: TypeCafe, TypeName: "языковое кафе",
		Coordinates: [2]float64{55.7612, 37.6084}, Address: "Камергерский пер., 5, Москва",
		Hours: "Ежедневно: 12:00-23:00", Phone: "+7 (495) 987-65-43",
		Description: "Разговорная практика с носителями языка. Тематические вечера.",
	},
	{
		ID: 4, Name: "Британский культурный центр", Type: TypeCenter, TypeName: "культурный центр",
		Coordinates: [2]float64{55.7539, 37.5978}, Address: "Николоямская ул., 1, Москва",
		Hours: "Пн-Пт: 10:00-19:00", Phone: "+7 (495) 782-02-00",
		Description: "Культурные мероприятия, лекции, выставки на английском языке.",
	},
	{
		ID: 5, Name: "Клуб любителей немецкого языка", Type: TypeClub, TypeName: "языковой клуб",
		Coordinates: [2]float64{55.7650, 37.6200}, Address: "ул. Петровка, 25, Москва",
		Hours: "Ср, Пт: 18:00-21:00", Phone: "+7 (495) 111-22-33",
		Description: "Разговорный клуб для изучающих немецкий. Встречи с носителями.",
	},
	{
		ID: 6, Name: "Институт Сервантеса", Type: TypeCenter, TypeName: "культурный центр",
		Coordinates: [2]float64{55.7580, 37.6100}, Address: "Новинский бульвар, 20А, Москва",
		Hours: "Пн-Пт: 9:00-20:00, Сб: 10:00-14:00", Phone: "+7 (495) 937-34-40",
		Description: "Курсы испанского языка, культурные мероприятия, библиотека.",
	},
	{
		ID: 7, Name: "Французский институт", Type: TypeCenter, TypeName: "культурный центр",
		Coordinates: [2]float64{55.7480, 37.5900}, Address: "Милютинский пер., 7а, Москва",
		Hours: "Пн-Пт: 10:00-19:00", Phone: "+7 (495) 937-34-00",
		Description: "Курсы французского, кинопоказы, выставки, медиатека.",
	},
	{
		ID: 8, Name: "Библиотека им. Достоевского", Type: TypeLibrary, TypeName: "библиотека",
		Coordinates: [2]float64{55.7700, 37.6350}, Address: "Чистопрудный бульвар, 23, Москва",
		Hours: "Пн-Сб: 11:00-21:00", Phone: "+7 (495) 621-53-01",
		Description: "Отдел иностранной литературы, языковые курсы для читателей.",
	},
	{
		ID: 9, Name: "English First", Type: TypeSchool, TypeName: "языковая школа",
		Coordinates: [2]float64{55.7520, 37.6250}, Address: "Покровский бульвар, 11, Москва",
		Hours: "Пн-Пт: 8:00-22:00, Сб-Вс: 9:00-18:00", Phone: "+7 (495) 926-93-00",
		Description: "Международная сеть языковых школ. Все уровни английского.",
	},
	{
		ID: 10, Name: "Итальянский культурный центр", Type: TypeCenter, TypeName: "культурный центр",
		Coordinates: [2]float64{55.7450, 37.6050}, Address: "Малый Козихинский пер., 4, Москва",
		Hours: "Пн-Пт: 10:00-18:00", Phone: "+7 (495) 916-54-91",
		Description: "Курсы итальянского языка, культурные мероприятия.",
	},
	{
		ID: 11, Name: "Conversation Club Moscow", Type: TypeClub, TypeName: "языковой клуб",
		Coordinates: [2]float64{55.7590, 37.5850}, Address: "Арбат, 35, Москва",
		Hours: "Вт, Чт, Сб: 19:00-22:00", Phone: "+7 (495) 222-33-44",
		Description: "Мультиязычный разговорный клуб. Английский, испанский, французский.",
	},
	{
		ID: 12, Name: "Японский культурный центр", Type: TypeCenter, TypeName: "культурный центр",
		Coordinates: [2]float64{55.7400, 37.6150}, Address: "Грохольский пер., 13, Москва",
		Hours: "Пн-Пт: 10:00-19:00", Phone: "+7 (495) 626-55-83",
		Description: "Курсы японского языка, каллиграфия, чайные церемонии.",
	},
}

// All возвращает копию полного справочника.
func All() []Venue {
	out := make([]Venue, len(directory))
	copy(out, directory)
	return out
}

// Filter возвращает площадки, подходящие под тип и поисковый запрос.
// Пустой тип пропускает все площадки; запрос ищется без учёта регистра
// в названии, адресе и описании.
func Filter(venueType, query string) []Venue {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Venue
	for _, v := range directory {
		if venueType != "" && v.Type != venueType {
			continue
		}
		if query != "" && !matches(v, query) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matches(v Venue, query string) bool {
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.Address), query) ||
		strings.Contains(strings.ToLower(v.Description), query)
}
