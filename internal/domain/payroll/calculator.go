package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	weeklyRegularCap = decimal.NewFromInt(40)
	overtimePremium  = decimal.NewFromFloat(1.5)
)

// WorkedHours is one completed time entry as the calculator sees it
type WorkedHours struct {
	Start time.Time
	Hours decimal.Decimal
}

// CompensationInput is the pay-term snapshot the calculator consumes.
// A salaried employee with a zero salary is paid on the hourly terms.
type CompensationInput struct {
	Salaried     bool
	HourlyRate   decimal.Decimal
	OvertimeRate decimal.Decimal
	Salary       decimal.Decimal
	PerDiem      decimal.Decimal
}

// effectiveOvertimeRate falls back to 1.5x the hourly rate
func (c CompensationInput) effectiveOvertimeRate() decimal.Decimal {
	if c.OvertimeRate.IsPositive() {
		return c.OvertimeRate
	}
	return c.HourlyRate.Mul(overtimePremium)
}

// TaxLine is one calculated withholding before it becomes a row
type TaxLine struct {
	Type          TaxType
	Description   string
	TaxableAmount decimal.Decimal
	Rate          decimal.Decimal
	Amount        decimal.Decimal
}

// EmployeeCalculation is the full gross-to-net result for one employee
type EmployeeCalculation struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	RegularPay    decimal.Decimal
	OvertimePay   decimal.Decimal
	PerDiem       decimal.Decimal
	GrossPay      decimal.Decimal
	Taxes         []TaxLine
	TotalTaxes    decimal.Decimal
	NetPay        decimal.Decimal
}

// WeekKey identifies one ISO week
type WeekKey struct {
	Year int
	Week int
}

// Calculator performs gross-to-net payroll math under a tax policy.
// All intermediate amounts are rounded to cents, matching how pay
// stubs present them.
type Calculator struct {
	policy TaxPolicy
}

// NewCalculator creates a calculator for the given policy
func NewCalculator(policy TaxPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// SplitHours groups worked hours by ISO week and splits each week at
// the 40-hour regular cap. Hours beyond the cap are overtime.
func SplitHours(worked []WorkedHours) (regular, overtime decimal.Decimal) {
	byWeek := make(map[WeekKey]decimal.Decimal)
	for _, w := range worked {
		year, week := w.Start.ISOWeek()
		key := WeekKey{Year: year, Week: week}
		byWeek[key] = byWeek[key].Add(w.Hours)
	}
	for _, hours := range byWeek {
		if hours.GreaterThan(weeklyRegularCap) {
			regular = regular.Add(weeklyRegularCap)
			overtime = overtime.Add(hours.Sub(weeklyRegularCap))
		} else {
			regular = regular.Add(hours)
		}
	}
	return regular, overtime
}

// Earnings computes regular, overtime and gross pay for one period.
// Salaried pay divides the annual salary across the year's periods and
// ignores regular hours; overtime is still paid from clocked hours.
func (c *Calculator) Earnings(comp CompensationInput, regularHours, overtimeHours decimal.Decimal, periodsPerYear int64) (regularPay, overtimePay, gross decimal.Decimal) {
	overtimeRate := comp.effectiveOvertimeRate()
	if comp.Salaried && comp.Salary.IsPositive() {
		regularPay = comp.Salary.Div(decimal.NewFromInt(periodsPerYear)).Round(2)
	} else {
		regularPay = regularHours.Mul(comp.HourlyRate).Round(2)
	}
	overtimePay = overtimeHours.Mul(overtimeRate).Round(2)
	gross = regularPay.Add(overtimePay).Add(comp.PerDiem).Round(2)
	return regularPay, overtimePay, gross
}

// FederalAnnualTax applies the progressive bracket table to an annual
// gross amount.
func (c *Calculator) FederalAnnualTax(annualGross decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	prev := decimal.Zero
	for _, b := range c.policy.FederalBrackets {
		if annualGross.LessThanOrEqual(prev) {
			break
		}
		top := annualGross
		if b.UpperBound != nil && b.UpperBound.LessThan(annualGross) {
			top = *b.UpperBound
		}
		tax = tax.Add(top.Sub(prev).Mul(b.Rate))
		if b.UpperBound == nil {
			break
		}
		prev = *b.UpperBound
	}
	return tax.Round(2)
}

// Taxes computes the five withholding lines for one period's gross.
// ytdGross is the employee's gross for the calendar year before this
// period; the wage-base caps and the Medicare surtax depend on it.
func (c *Calculator) Taxes(gross, ytdGross decimal.Decimal, periodsPerYear int64) ([]TaxLine, decimal.Decimal) {
	periods := decimal.NewFromInt(periodsPerYear)

	// Federal: annualize, tax, divide back into the period.
	annualized := gross.Mul(periods)
	federal := c.FederalAnnualTax(annualized).Div(periods).Round(2)
	federalRate := decimal.Zero
	if gross.IsPositive() {
		federalRate = federal.Div(gross).Round(4)
	}

	state := gross.Mul(c.policy.StateRate).Round(2)

	ssRemaining := decimal.Max(c.policy.SocialSecurityWageBase.Sub(ytdGross), decimal.Zero)
	ssTaxable := decimal.Min(gross, ssRemaining)
	ss := ssTaxable.Mul(c.policy.SocialSecurityRate).Round(2)

	medicare := gross.Mul(c.policy.MedicareRate).Round(2)
	if ytdGross.Add(gross).GreaterThan(c.policy.MedicareSurtaxThreshold) {
		// Surtax applies only to the slice of this period's gross
		// above the cumulative threshold.
		surtaxBase := decimal.Max(ytdGross.Add(gross).Sub(c.policy.MedicareSurtaxThreshold), decimal.Zero)
		alreadyTaxed := decimal.Max(ytdGross.Sub(c.policy.MedicareSurtaxThreshold), decimal.Zero)
		medicare = medicare.Add(surtaxBase.Sub(alreadyTaxed).Mul(c.policy.MedicareSurtaxRate).Round(2))
	}

	futaRemaining := decimal.Max(c.policy.FUTAWageBase.Sub(ytdGross), decimal.Zero)
	futaTaxable := decimal.Min(gross, futaRemaining)
	futa := futaTaxable.Mul(c.policy.FUTARate).Round(2)

	lines := []TaxLine{
		{Type: TaxTypeFederal, Description: "Federal Income Tax", TaxableAmount: gross, Rate: federalRate, Amount: federal},
		{Type: TaxTypeState, Description: "State Income Tax", TaxableAmount: gross, Rate: c.policy.StateRate, Amount: state},
		{Type: TaxTypeSocialSecurity, Description: "Social Security (OASDI)", TaxableAmount: ssTaxable, Rate: c.policy.SocialSecurityRate, Amount: ss},
		{Type: TaxTypeMedicare, Description: "Medicare", TaxableAmount: gross, Rate: c.policy.MedicareRate, Amount: medicare},
		{Type: TaxTypeFUTA, Description: "Federal Unemployment (FUTA)", TaxableAmount: futaTaxable, Rate: c.policy.FUTARate, Amount: futa},
	}

	total := federal.Add(state).Add(ss).Add(medicare).Add(futa).Round(2)
	return lines, total
}

// Calculate runs the full gross-to-net pipeline for one employee
func (c *Calculator) Calculate(comp CompensationInput, worked []WorkedHours, periodsPerYear int64, ytdGross decimal.Decimal) EmployeeCalculation {
	regularHours, overtimeHours := SplitHours(worked)
	regularPay, overtimePay, gross := c.Earnings(comp, regularHours, overtimeHours, periodsPerYear)
	taxes, totalTaxes := c.Taxes(gross, ytdGross, periodsPerYear)

	return EmployeeCalculation{
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		RegularPay:    regularPay,
		OvertimePay:   overtimePay,
		PerDiem:       comp.PerDiem,
		GrossPay:      gross,
		Taxes:         taxes,
		TotalTaxes:    totalTaxes,
		NetPay:        gross.Sub(totalTaxes).Round(2),
	}
}
