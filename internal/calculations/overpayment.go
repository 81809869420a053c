package calculations

import (
	"fmt"
)

// TotalOverpayment переплата: ежемесячный платеж, умноженный на срок, минус сумма кредита.
// Для дифференцированной схемы берется платеж первого месяца.
func (t MortgageTerms) TotalOverpayment() (float64, error) {
	var monthlyPayment float64

	switch t.PaymentScheme {
	case SchemeAnnuity:
		monthlyPayment = t.FixedAnnuityPayment()
	case SchemeDifferentiated:
		monthlyPayment = t.DifferentiatedMonthlyPayment(OriginalPrincipal())
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedPaymentScheme, t.PaymentScheme)
	}

	return monthlyPayment*float64(t.TotalMonths()) - float64(t.Principal), nil
}

// TotalAmount общая сумма выплат: сумма кредита плюс переплата
func (t MortgageTerms) TotalAmount() (float64, error) {
	overpayment, err := t.TotalOverpayment()
	if err != nil {
		return 0, err
	}
	return float64(t.Principal) + overpayment, nil
}
