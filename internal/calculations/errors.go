package calculations

import "errors"

var (
	// ErrInvalidDateFormat дата выдачи не соответствует формату ДД.ММ.ГГГГ
	ErrInvalidDateFormat = errors.New("неверный формат даты, ожидается ДД.ММ.ГГГГ")

	// ErrUnrecognizedPaymentScheme тип платежа не annuity и не differentiated
	ErrUnrecognizedPaymentScheme = errors.New("указан некорректный тип платежа")

	// ErrInvalidTerms параметры ипотеки нарушают допустимые значения
	ErrInvalidTerms = errors.New("некорректные параметры ипотеки")
)
