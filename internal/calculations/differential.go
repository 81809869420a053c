package calculations

// DifferentiatedPrincipalRepayment постоянная часть основного долга в дифференцированном платеже:
// сумма кредита, деленная на срок, без вычета первоначального взноса
func (t MortgageTerms) DifferentiatedPrincipalRepayment() float64 {
	return float64(t.Principal) / float64(t.TotalMonths())
}

// DifferentiatedMonthlyPayment дифференцированный платеж при заданном остатке
func (t MortgageTerms) DifferentiatedMonthlyPayment(b Balance) float64 {
	return t.DifferentiatedPrincipalRepayment() + t.InterestPart(b)
}

func (t MortgageTerms) differentiatedSchedule() ([]ScheduleEntry, error) {
	start, err := ParseDate(t.OriginationDate)
	if err != nil {
		return nil, err
	}

	n := t.TotalMonths()
	// в графике гасится только сумма за вычетом взноса
	repayment := t.LoanBase() / float64(n)
	remaining := t.LoanBase()
	schedule := make([]ScheduleEntry, 0, n)

	for m := 1; m <= n; m++ {
		balance := OutstandingBalance(remaining)
		interest := t.InterestPart(balance)

		principalComponent := repayment
		if m == n || principalComponent > remaining {
			principalComponent = remaining
		}
		payment := principalComponent + interest

		remaining -= principalComponent
		if remaining < PayoffTolerance {
			remaining = 0
		}

		schedule = append(schedule, ScheduleEntry{
			PaymentDate:   addMonths(start, m),
			TotalPayment:  payment,
			InterestPart:  interest,
			PrincipalPart: principalComponent,
			RemainingDebt: remaining,
		})
	}

	return schedule, nil
}
