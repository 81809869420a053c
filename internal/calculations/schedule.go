package calculations

import (
	"encoding/json"
	"fmt"

	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

// BuildSchedule рассчитывает график платежей по типу платежа
func (t MortgageTerms) BuildSchedule() (*PaymentSchedule, error) {
	var (
		entries []ScheduleEntry
		err     error
	)

	switch t.PaymentScheme {
	case SchemeAnnuity:
		entries, err = t.annuitySchedule()
	case SchemeDifferentiated:
		entries, err = t.differentiatedSchedule()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedPaymentScheme, t.PaymentScheme)
	}
	if err != nil {
		return nil, err
	}

	return &PaymentSchedule{
		Scheme:  t.PaymentScheme,
		Entries: entries,
	}, nil
}

type paymentDetails struct {
	MonthlyPayment float64 `json:"mounthly_payment"`
	PercentPart    float64 `json:"percent_part"`
	BodyPart       float64 `json:"body_part"`
	RemainingDebt  float64 `json:"remaining_debt"`
}

// MarshalJSON кодирует график как {"payment_details": {"ГГГГ-ММ-ДД": {...}}}.
// Ключи в формате ISO, поэтому лексикографический порядок совпадает с хронологическим.
func (s PaymentSchedule) MarshalJSON() ([]byte, error) {
	details := make(map[string]paymentDetails, len(s.Entries))
	for _, e := range s.Entries {
		details[e.PaymentDate.String()] = paymentDetails{
			MonthlyPayment: e.TotalPayment,
			PercentPart:    e.InterestPart,
			BodyPart:       e.PrincipalPart,
			RemainingDebt:  e.RemainingDebt,
		}
	}
	return json.Marshal(struct {
		PaymentDetails map[string]paymentDetails `json:"payment_details"`
	}{PaymentDetails: details})
}

// Summarize сводка по уже рассчитанному графику
func (t MortgageTerms) Summarize(s *PaymentSchedule) ScheduleSummary {
	summary := ScheduleSummary{
		PaymentScheme:     s.Scheme,
		LoanBase:          utils.Round2(t.LoanBase()),
		AnnualRatePercent: utils.Round2(t.AnnualRatePercent),
		Months:            len(s.Entries),
	}
	if len(s.Entries) == 0 {
		return summary
	}

	totalPaid := 0.0
	for _, e := range s.Entries {
		totalPaid += e.TotalPayment
	}

	first := s.Entries[0]
	last := s.Entries[len(s.Entries)-1]

	if s.Scheme == SchemeAnnuity {
		summary.MonthlyPayment = utils.Round2(first.TotalPayment)
	}
	summary.FirstMonthPayment = utils.Round2(first.TotalPayment)
	summary.LastMonthPayment = utils.Round2(last.TotalPayment)
	summary.TotalPaid = utils.Round2(totalPaid)
	summary.TotalInterest = utils.Round2(totalPaid - t.LoanBase())
	summary.FinalPaymentDate = FormatDate(last.PaymentDate)

	return summary
}
