package calculations

import (
	"math"
)

// PayoffTolerance остаток (в денежных единицах), который считается погашенным
const PayoffTolerance = 0.01

// AnnuityPayment аннуитетный платеж на сумму loanBase.
// Используется и для фиксированного платежа по всему кредиту, и для платежа по остатку.
func AnnuityPayment(loanBase, monthlyRate float64, totalMonths int) float64 {
	if totalMonths <= 0 {
		return 0
	}
	if monthlyRate == 0.0 {
		return loanBase / float64(totalMonths)
	}
	factor := math.Pow(1.0+monthlyRate, float64(totalMonths))
	return loanBase * monthlyRate * factor / (factor - 1.0)
}

// FixedAnnuityPayment фиксированный ежемесячный платеж на весь срок
func (t MortgageTerms) FixedAnnuityPayment() float64 {
	return AnnuityPayment(t.LoanBase(), t.MonthlyRate(), t.TotalMonths())
}

// AnnuityPrincipalPart часть фиксированного платежа, идущая в погашение основного долга
func (t MortgageTerms) AnnuityPrincipalPart(b Balance) float64 {
	return t.FixedAnnuityPayment() - t.InterestPart(b)
}

// ProjectOutstandingBalance остаток задолженности на заданный (порядковый) месяц:
// долг после month платежей с начисленными за следующий месяц процентами.
// Считается в замкнутой форме L*(f^n - f^m)/(f^n - 1)*f, f = 1+r, без накопления
// погрешности пошагового пересчета (debt-P)*(1+r).
func (t MortgageTerms) ProjectOutstandingBalance(month int) float64 {
	r := t.MonthlyRate()
	n := t.TotalMonths()
	loanBase := t.LoanBase()

	if month <= 0 {
		return loanBase * (1.0 + r)
	}
	if month >= n {
		return 0
	}

	var debt float64
	if r == 0.0 {
		debt = loanBase * float64(n-month) / float64(n)
	} else {
		f := 1.0 + r
		fn := math.Pow(f, float64(n))
		debt = loanBase * (fn - math.Pow(f, float64(month))) / (fn - 1.0) * f
	}
	return settleOutstandingBalance(debt, t.FixedAnnuityPayment())
}

// settleOutstandingBalance остаток в пределах допуска считается погашенным
func settleOutstandingBalance(debt, payment float64) float64 {
	if debt <= payoffTolerance(payment) {
		return 0
	}
	return debt
}

func payoffTolerance(payment float64) float64 {
	return math.Max(PayoffTolerance, payment*1e-9)
}

func (t MortgageTerms) annuitySchedule() ([]ScheduleEntry, error) {
	start, err := ParseDate(t.OriginationDate)
	if err != nil {
		return nil, err
	}

	n := t.TotalMonths()
	payment := t.FixedAnnuityPayment()

	schedule := make([]ScheduleEntry, 0, n)

	for m := 1; m <= n; m++ {
		debt := t.ProjectOutstandingBalance(m)
		remaining := OutstandingBalance(debt)

		schedule = append(schedule, ScheduleEntry{
			PaymentDate:   addMonths(start, m),
			TotalPayment:  payment,
			InterestPart:  t.InterestPart(remaining),
			PrincipalPart: t.AnnuityPrincipalPart(remaining),
			RemainingDebt: debt,
		})
	}

	return schedule, nil
}
