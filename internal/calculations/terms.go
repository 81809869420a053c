package calculations

import (
	"fmt"

	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

const monthsPerYear = 12

// MonthlyRate переводит годовую ставку в процентах в месячную долю
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / monthsPerYear / 100.0
}

// Validate проверяет инварианты, без которых расчет не определен
func (t MortgageTerms) Validate() error {
	if t.Principal <= 0 {
		return fmt.Errorf("%w: сумма кредита должна быть положительной", ErrInvalidTerms)
	}
	if t.TermYears <= 0 {
		return fmt.Errorf("%w: срок должен быть больше нуля", ErrInvalidTerms)
	}
	if !utils.IsFinite(t.AnnualRatePercent) || t.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: ставка должна быть неотрицательным числом", ErrInvalidTerms)
	}
	if t.DownPayment < 0 {
		return fmt.Errorf("%w: первоначальный взнос не может быть отрицательным", ErrInvalidTerms)
	}
	if t.DownPayment > t.Principal {
		return fmt.Errorf("%w: первоначальный взнос превышает сумму кредита", ErrInvalidTerms)
	}
	if _, err := ParseDate(t.OriginationDate); err != nil {
		return err
	}
	return nil
}

// TotalMonths срок кредита в месяцах
func (t MortgageTerms) TotalMonths() int {
	return t.TermYears * monthsPerYear
}

// MonthlyRate месячная ставка по кредиту
func (t MortgageTerms) MonthlyRate() float64 {
	return MonthlyRate(t.AnnualRatePercent)
}

// LoanBase сумма, на которую начисляются проценты: кредит минус первоначальный взнос
func (t MortgageTerms) LoanBase() float64 {
	return float64(t.Principal - t.DownPayment)
}

func (t MortgageTerms) resolve(b Balance) float64 {
	if b.original {
		return t.LoanBase()
	}
	return b.amount
}

// InterestPart проценты за один месяц на заданный баланс.
// Одинаково для аннуитетных и дифференцированных платежей.
func (t MortgageTerms) InterestPart(b Balance) float64 {
	return t.resolve(b) * t.MonthlyRate()
}

// withScheme возвращает копию условий с другим типом платежа
func (t MortgageTerms) withScheme(s PaymentScheme) MortgageTerms {
	t.PaymentScheme = s
	return t
}
