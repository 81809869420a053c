package calculations

import (
	"cloud.google.com/go/civil"
)

// PaymentScheme тип погашения кредита
type PaymentScheme string

const (
	// SchemeAnnuity аннуитетные (равные) платежи
	SchemeAnnuity PaymentScheme = "annuity"
	// SchemeDifferentiated дифференцированные платежи
	SchemeDifferentiated PaymentScheme = "differentiated"
)

// MortgageRequest входные данные в том виде, в котором они приходят по сети
type MortgageRequest struct {
	Amount         int64   `json:"amount"`
	MortgageRate   float64 `json:"mortgage_rate"`
	Period         int     `json:"period"`
	TakingDate     string  `json:"taking_date"`
	PaymentType    string  `json:"payment_type"`
	InitialPayment int64   `json:"initial_payment"`
}

// Terms преобразует запрос в параметры ипотеки
func (r MortgageRequest) Terms() MortgageTerms {
	return MortgageTerms{
		Principal:         r.Amount,
		AnnualRatePercent: r.MortgageRate,
		TermYears:         r.Period,
		OriginationDate:   r.TakingDate,
		PaymentScheme:     PaymentScheme(r.PaymentType),
		DownPayment:       r.InitialPayment,
	}
}

// MortgageTerms неизменяемое описание ипотеки
type MortgageTerms struct {
	Principal         int64
	AnnualRatePercent float64
	TermYears         int
	// OriginationDate дата выдачи в формате ДД.ММ.ГГГГ
	OriginationDate string
	PaymentScheme   PaymentScheme
	DownPayment     int64
}

// Balance сумма, на которую начисляются проценты.
// Исходная сумма кредита и текущий остаток различаются явно, а не сравнением чисел.
type Balance struct {
	original bool
	amount   float64
}

// OriginalPrincipal исходная сумма кредита; первоначальный взнос вычитается при расчете
func OriginalPrincipal() Balance {
	return Balance{original: true}
}

// OutstandingBalance текущий остаток задолженности
func OutstandingBalance(amount float64) Balance {
	return Balance{amount: amount}
}

// ScheduleEntry одна запись графика платежей
type ScheduleEntry struct {
	PaymentDate   civil.Date
	TotalPayment  float64
	InterestPart  float64
	PrincipalPart float64
	RemainingDebt float64
}

// PaymentSchedule график платежей, упорядоченный по дате
type PaymentSchedule struct {
	Scheme  PaymentScheme
	Entries []ScheduleEntry
}

// ScheduleSummary сводка по графику платежей
type ScheduleSummary struct {
	PaymentScheme     PaymentScheme `json:"payment_scheme"`
	LoanBase          float64       `json:"loan_base"`
	AnnualRatePercent float64       `json:"annual_rate_percent"`
	Months            int           `json:"months"`
	MonthlyPayment    float64       `json:"monthly_payment,omitempty"`
	FirstMonthPayment float64       `json:"first_month_payment"`
	LastMonthPayment  float64       `json:"last_month_payment"`
	TotalPaid         float64       `json:"total_paid"`
	TotalInterest     float64       `json:"total_interest"`
	FinalPaymentDate  string        `json:"final_payment_date,omitempty"`
}

// ComparisonResult результат сравнения аннуитетной и дифференцированной схем
type ComparisonResult struct {
	Annuity        ScheduleSummary `json:"annuity"`
	Differentiated ScheduleSummary `json:"differentiated"`
	TotalPaidDiff  float64         `json:"total_paid_diff"`
	CheaperScheme  string          `json:"cheaper_scheme"`
	Savings        float64         `json:"savings"`
	Recommendation string          `json:"recommendation"`
}
