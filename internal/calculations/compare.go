package calculations

import (
	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

// CompareSchemes сравнивает аннуитетную и дифференцированную схемы на одних условиях
func CompareSchemes(terms MortgageTerms) (*ComparisonResult, error) {
	annuityTerms := terms.withScheme(SchemeAnnuity)
	annuitySchedule, err := annuityTerms.BuildSchedule()
	if err != nil {
		return nil, err
	}

	differentiatedTerms := terms.withScheme(SchemeDifferentiated)
	differentiatedSchedule, err := differentiatedTerms.BuildSchedule()
	if err != nil {
		return nil, err
	}

	annuitySummary := annuityTerms.Summarize(annuitySchedule)
	differentiatedSummary := differentiatedTerms.Summarize(differentiatedSchedule)

	totalPaidDiff := utils.Round2(annuitySummary.TotalPaid - differentiatedSummary.TotalPaid)

	result := &ComparisonResult{
		Annuity:        annuitySummary,
		Differentiated: differentiatedSummary,
		TotalPaidDiff:  totalPaidDiff,
	}

	switch {
	case totalPaidDiff > 0:
		result.CheaperScheme = string(SchemeDifferentiated)
		result.Savings = totalPaidDiff
		result.Recommendation = "Дифференцированная схема выгоднее по общей сумме выплат, но первые платежи выше, чем при аннуитетной."
	case totalPaidDiff < 0:
		result.CheaperScheme = string(SchemeAnnuity)
		result.Savings = -totalPaidDiff
		result.Recommendation = "Аннуитетная схема выгоднее по общей сумме выплат, платежи одинаковы каждый месяц."
	default:
		result.CheaperScheme = "equal"
		result.Recommendation = "Обе схемы дают одинаковую общую сумму выплат."
	}

	return result, nil
}
