package payroll

import (
	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/fiberops/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
)

// PolicyFromConfig builds the tax policy the calculator runs on from
// configuration. The bracket table pairs each top with a rate; the
// extra rate entry becomes the unbounded top bracket.
func PolicyFromConfig(cfg config.PayrollConfig) (payroll.TaxPolicy, error) {
	brackets := make([]payroll.TaxBracket, 0, len(cfg.FederalBracketRates))
	for i, rate := range cfg.FederalBracketRates {
		bracket := payroll.TaxBracket{Rate: decimal.NewFromFloat(rate)}
		if i < len(cfg.FederalBracketTops) {
			top := decimal.NewFromFloat(cfg.FederalBracketTops[i])
			bracket.UpperBound = &top
		}
		brackets = append(brackets, bracket)
	}

	policy := payroll.TaxPolicy{
		FederalBrackets:         brackets,
		StateRate:               decimal.NewFromFloat(cfg.StateRate),
		SocialSecurityRate:      decimal.NewFromFloat(cfg.SocialSecurityRate),
		SocialSecurityWageBase:  decimal.NewFromFloat(cfg.SocialSecurityWageBase),
		MedicareRate:            decimal.NewFromFloat(cfg.MedicareRate),
		MedicareSurtaxRate:      decimal.NewFromFloat(cfg.MedicareSurtaxRate),
		MedicareSurtaxThreshold: decimal.NewFromFloat(cfg.MedicareSurtaxThreshold),
		FUTARate:                decimal.NewFromFloat(cfg.FUTARate),
		FUTAWageBase:            decimal.NewFromFloat(cfg.FUTAWageBase),
	}

	if err := policy.Validate(); err != nil {
		return payroll.TaxPolicy{}, err
	}
	return policy, nil
}
