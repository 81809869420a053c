package calculations

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout формат даты выдачи кредита
const DateLayout = "02.01.2006"

// parseLayout принимает день и месяц как с ведущим нулем, так и без (1.1.2023)
const parseLayout = "2.1.2006"

// ParseDate разбирает дату в формате ДД.ММ.ГГГГ
func ParseDate(value string) (civil.Date, error) {
	t, err := time.Parse(parseLayout, value)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return civil.DateOf(t), nil
}

// FormatDate форматирует дату в ДД.ММ.ГГГГ
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(DateLayout)
}

// NextPaymentDate дата платежа через monthOffset месяцев после выдачи
func NextPaymentDate(originationDate string, monthOffset int) (civil.Date, error) {
	d, err := ParseDate(originationDate)
	if err != nil {
		return civil.Date{}, err
	}
	return addMonths(d, monthOffset), nil
}

// addMonths прибавляет календарные месяцы; день ограничивается концом месяца (31.01 + 1 = 28.02)
func addMonths(d civil.Date, months int) civil.Date {
	total := int(d.Month) - 1 + months
	year := d.Year + floorDiv(total, monthsPerYear)
	month := time.Month(total - floorDiv(total, monthsPerYear)*monthsPerYear + 1)

	day := d.Day
	if last := daysIn(year, month); day > last {
		day = last
	}
	return civil.Date{Year: year, Month: month, Day: day}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
