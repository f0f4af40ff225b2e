package domain

import "time"

// NormalizeDate обнуляет время, оставляя только дату
// Все сравнения дат в сервисе идут с точностью до дня
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы пересекаются, только если:
// - начало первого СТРОГО раньше конца второго И
// - начало второго СТРОГО раньше конца первого
// Граничные случаи (один интервал заканчивается там, где начинается другой) не считаются пересечением
//
// Примеры:
// - [01.03, 05.03) и [02.03, 03.03) → ЕСТЬ пересечение
// - [01.03, 05.03) и [05.03, 08.03) → НЕТ пересечения (граничат)
//
// Корректность входных данных (end > start) обеспечивает вызывающий
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart = NormalizeDate(aStart)
	aEnd = NormalizeDate(aEnd)
	bStart = NormalizeDate(bStart)
	bEnd = NormalizeDate(bEnd)

	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DaysBetween возвращает длительность [start, end) в целых сутках с округлением вверх
// Минимум 1 сутки
func DaysBetween(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
