package payroll

import (
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxBracket is one step of a progressive tax table. A nil UpperBound
// marks the unbounded top bracket.
type TaxBracket struct {
	UpperBound *decimal.Decimal
	Rate       decimal.Decimal
}

// TaxPolicy holds every rate and wage base the calculator needs.
// Defaults ship with 2025 US figures; all values are overridable from
// configuration so tax-year updates need no code change.
type TaxPolicy struct {
	FederalBrackets         []TaxBracket
	StateRate               decimal.Decimal
	SocialSecurityRate      decimal.Decimal
	SocialSecurityWageBase  decimal.Decimal
	MedicareRate            decimal.Decimal
	MedicareSurtaxRate      decimal.Decimal
	MedicareSurtaxThreshold decimal.Decimal
	FUTARate                decimal.Decimal
	FUTAWageBase            decimal.Decimal
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultTaxPolicy returns the 2025 US federal tables with a 5% flat
// state rate.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{
		FederalBrackets: []TaxBracket{
			{UpperBound: bound(11600), Rate: decimal.NewFromFloat(0.10)},
			{UpperBound: bound(47150), Rate: decimal.NewFromFloat(0.12)},
			{UpperBound: bound(100525), Rate: decimal.NewFromFloat(0.22)},
			{UpperBound: bound(191950), Rate: decimal.NewFromFloat(0.24)},
			{UpperBound: bound(243725), Rate: decimal.NewFromFloat(0.32)},
			{UpperBound: bound(609350), Rate: decimal.NewFromFloat(0.35)},
			{UpperBound: nil, Rate: decimal.NewFromFloat(0.37)},
		},
		StateRate:               decimal.NewFromFloat(0.05),
		SocialSecurityRate:      decimal.NewFromFloat(0.062),
		SocialSecurityWageBase:  decimal.NewFromInt(168600),
		MedicareRate:            decimal.NewFromFloat(0.0145),
		MedicareSurtaxRate:      decimal.NewFromFloat(0.009),
		MedicareSurtaxThreshold: decimal.NewFromInt(200000),
		FUTARate:                decimal.NewFromFloat(0.006),
		FUTAWageBase:            decimal.NewFromInt(7000),
	}
}

// Validate checks the policy for internal consistency. Brackets must
// be sorted with strictly increasing bounds and only the last bracket
// may be unbounded.
func (p TaxPolicy) Validate() error {
	if len(p.FederalBrackets) == 0 {
		return shared.NewDomainError("INVALID_TAX_POLICY", "Federal bracket table cannot be empty")
	}
	var prev decimal.Decimal
	for i, b := range p.FederalBrackets {
		if b.Rate.IsNegative() {
			return shared.NewDomainError("INVALID_TAX_POLICY", "Bracket rates cannot be negative")
		}
		if b.UpperBound == nil {
			if i != len(p.FederalBrackets)-1 {
				return shared.NewDomainError("INVALID_TAX_POLICY", "Only the top bracket may be unbounded")
			}
			continue
		}
		if i > 0 && !b.UpperBound.GreaterThan(prev) {
			return shared.NewDomainError("INVALID_TAX_POLICY", "Bracket bounds must be strictly increasing")
		}
		prev = *b.UpperBound
	}
	for _, rate := range []decimal.Decimal{p.StateRate, p.SocialSecurityRate, p.MedicareRate, p.MedicareSurtaxRate, p.FUTARate} {
		if rate.IsNegative() {
			return shared.NewDomainError("INVALID_TAX_POLICY", "Tax rates cannot be negative")
		}
	}
	return nil
}
