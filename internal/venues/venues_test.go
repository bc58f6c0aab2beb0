package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "испорчено"

	second := All()
	assert.Equal(t, 12, len(second))
	assert.NotEqual(t, "испорчено", second[0].Name)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		venueType string
		query     string
		expected  []int
	}{
		{name: "без фильтров возвращаются все", expected: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{name: "по типу школа", venueType: TypeSchool, expected: []int{1, 9}},
		{name: "по типу библиотека", venueType: TypeLibrary, expected: []int{2, 8}},
		{name: "поиск по названию без учёта регистра", query: "СЕРВАНТЕС", expected: []int{6}},
		{name: "поиск по адресу", query: "арбат", expected: []int{11}},
		{name: "поиск по описанию", query: "испанского", expected: []int{6}},
		{name: "тип и запрос вместе", venueType: TypeCenter, query: "французск", expected: []int{7}},
		{name: "ничего не найдено", query: "владивосток", expected: nil},
		{name: "запрос с пробелами по краям", query: "  арбат  ", expected: []int{11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.venueType, tt.query)

			var ids []int
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
