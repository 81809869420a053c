package validators

import (
	"fmt"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
	"github.com/cloud-ru/mcp-mortgage-go/internal/config"
	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число положительное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%w: %s: значение не является конечным числом", calculations.ErrInvalidTerms, name)
	}
	if value < minInclusive {
		return fmt.Errorf("%w: %s: значение должно быть ≥ %.0f", calculations.ErrInvalidTerms, name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%w: %s: значение слишком велико (>%.0f)", calculations.ErrInvalidTerms, name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%w: %s: значение должно быть в диапазоне [%d; %d]",
			calculations.ErrInvalidTerms, name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal int64) error {
	return ValidatePositiveNumber("amount", float64(principal), 1, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("mortgage_rate", rate, 0.0, cfg.MaxRate)
}

// CheckYears проверяет срок в годах
func CheckYears(cfg *config.Config, years int) error {
	return ValidateIntRange("period", years, 1, cfg.MaxYears)
}

// CheckDownPayment проверяет первоначальный взнос: не отрицательный и не больше суммы кредита
func CheckDownPayment(principal, downPayment int64) error {
	if downPayment < 0 {
		return fmt.Errorf("%w: initial_payment: значение должно быть ≥ 0", calculations.ErrInvalidTerms)
	}
	if downPayment > principal {
		return fmt.Errorf("%w: initial_payment: превышает сумму кредита", calculations.ErrInvalidTerms)
	}
	return nil
}

// CheckTerms проверяет все параметры ипотеки
func CheckTerms(cfg *config.Config, terms calculations.MortgageTerms) error {
	if err := CheckPrincipal(cfg, terms.Principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, terms.AnnualRatePercent); err != nil {
		return err
	}
	if err := CheckYears(cfg, terms.TermYears); err != nil {
		return err
	}
	if err := CheckDownPayment(terms.Principal, terms.DownPayment); err != nil {
		return err
	}
	return terms.Validate()
}
