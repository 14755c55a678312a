package payroll

import (
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxType identifies one withholding category on a pay stub
type TaxType string

const (
	TaxTypeFederal        TaxType = "federal"
	TaxTypeState          TaxType = "state"
	TaxTypeSocialSecurity TaxType = "social_security"
	TaxTypeMedicare       TaxType = "medicare"
	TaxTypeFUTA           TaxType = "futa"
)

// IsValid returns true for a recognized tax type
func (t TaxType) IsValid() bool {
	switch t {
	case TaxTypeFederal, TaxTypeState, TaxTypeSocialSecurity, TaxTypeMedicare, TaxTypeFUTA:
		return true
	}
	return false
}

// String returns the tax type as a string
func (t TaxType) String() string {
	return string(t)
}

// TaxWithholding is one itemized tax line on a pay stub. Rows are
// append-only; recalculation deletes and rewrites the full set.
type TaxWithholding struct {
	shared.OrgAggregateRoot
	PayStubID     uuid.UUID
	TaxType       TaxType
	Description   string
	TaxableAmount decimal.Decimal
	Rate          decimal.Decimal
	Amount        decimal.Decimal
}

// NewTaxWithholding creates a withholding row from a calculated tax line
func NewTaxWithholding(orgID, payStubID uuid.UUID, line TaxLine) *TaxWithholding {
	return &TaxWithholding{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		PayStubID:        payStubID,
		TaxType:          line.Type,
		Description:      line.Description,
		TaxableAmount:    line.TaxableAmount,
		Rate:             line.Rate,
		Amount:           line.Amount,
	}
}

// DeductionType identifies a non-tax deduction category
type DeductionType string

const (
	DeductionTypeBenefit     DeductionType = "benefit"
	DeductionTypeRetirement  DeductionType = "retirement"
	DeductionTypeGarnishment DeductionType = "garnishment"
	DeductionTypeOther       DeductionType = "other"
)

// IsValid returns true for a recognized deduction type
func (t DeductionType) IsValid() bool {
	switch t {
	case DeductionTypeBenefit, DeductionTypeRetirement, DeductionTypeGarnishment, DeductionTypeOther:
		return true
	}
	return false
}

// PayDeduction is one non-tax deduction line on a pay stub
type PayDeduction struct {
	shared.OrgAggregateRoot
	PayStubID     uuid.UUID
	DeductionType DeductionType
	Description   string
	Amount        decimal.Decimal
	IsPretax      bool
}

// NewPayDeduction creates a deduction row
func NewPayDeduction(orgID, payStubID uuid.UUID, deductionType DeductionType, description string, amount decimal.Decimal, pretax bool) (*PayDeduction, error) {
	if !deductionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DEDUCTION_TYPE", "Unknown deduction type")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DEDUCTION", "Deduction amount cannot be negative")
	}
	return &PayDeduction{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		PayStubID:        payStubID,
		DeductionType:    deductionType,
		Description:      description,
		Amount:           amount.Round(2),
		IsPretax:         pretax,
	}, nil
}
