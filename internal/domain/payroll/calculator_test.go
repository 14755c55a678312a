package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 8, 0, 0, 0, time.UTC)
}

func TestSplitHours(t *testing.T) {
	t.Run("under 40 in one week is all regular", func(t *testing.T) {
		worked := []WorkedHours{
			{Start: day(2025, time.March, 3), Hours: dec("8")},
			{Start: day(2025, time.March, 4), Hours: dec("8")},
			{Start: day(2025, time.March, 5), Hours: dec("8")},
		}
		regular, overtime := SplitHours(worked)
		assert.True(t, dec("24").Equal(regular))
		assert.True(t, overtime.IsZero())
	})

	t.Run("hours over 40 in a week become overtime", func(t *testing.T) {
		worked := []WorkedHours{
			{Start: day(2025, time.March, 3), Hours: dec("10")},
			{Start: day(2025, time.March, 4), Hours: dec("10")},
			{Start: day(2025, time.March, 5), Hours: dec("10")},
			{Start: day(2025, time.March, 6), Hours: dec("10")},
			{Start: day(2025, time.March, 7), Hours: dec("5")},
		}
		regular, overtime := SplitHours(worked)
		assert.True(t, dec("40").Equal(regular))
		assert.True(t, dec("5").Equal(overtime))
	})

	t.Run("weeks are capped independently", func(t *testing.T) {
		// 45h in week one, 30h in week two: only week one overflows.
		worked := []WorkedHours{
			{Start: day(2025, time.March, 3), Hours: dec("45")},
			{Start: day(2025, time.March, 10), Hours: dec("30")},
		}
		regular, overtime := SplitHours(worked)
		assert.True(t, dec("70").Equal(regular))
		assert.True(t, dec("5").Equal(overtime))
	})

	t.Run("same week number in different years is not merged", func(t *testing.T) {
		worked := []WorkedHours{
			{Start: day(2024, time.March, 4), Hours: dec("45")},
			{Start: day(2025, time.March, 3), Hours: dec("45")},
		}
		regular, overtime := SplitHours(worked)
		assert.True(t, dec("80").Equal(regular))
		assert.True(t, dec("10").Equal(overtime))
	})
}

func TestCalculatorEarnings(t *testing.T) {
	calc := NewCalculator(DefaultTaxPolicy())

	t.Run("hourly with overtime", func(t *testing.T) {
		comp := CompensationInput{HourlyRate: dec("20")}
		regularPay, overtimePay, gross := calc.Earnings(comp, dec("40"), dec("5"), 26)
		assert.Equal(t, "800.00", regularPay.StringFixed(2))
		assert.Equal(t, "150.00", overtimePay.StringFixed(2))
		assert.Equal(t, "950.00", gross.StringFixed(2))
	})

	t.Run("explicit overtime rate overrides the default premium", func(t *testing.T) {
		comp := CompensationInput{HourlyRate: dec("20"), OvertimeRate: dec("40")}
		_, overtimePay, _ := calc.Earnings(comp, dec("40"), dec("2"), 26)
		assert.Equal(t, "80.00", overtimePay.StringFixed(2))
	})

	t.Run("salary divides across periods and ignores regular hours", func(t *testing.T) {
		comp := CompensationInput{Salaried: true, Salary: dec("52000")}
		regularPay, _, gross := calc.Earnings(comp, dec("93.5"), decimal.Zero, 26)
		assert.Equal(t, "2000.00", regularPay.StringFixed(2))
		assert.Equal(t, "2000.00", gross.StringFixed(2))
	})

	t.Run("salary still pays overtime from clocked hours", func(t *testing.T) {
		comp := CompensationInput{Salaried: true, Salary: dec("52000"), HourlyRate: dec("25")}
		regularPay, overtimePay, _ := calc.Earnings(comp, dec("40"), dec("4"), 26)
		assert.Equal(t, "2000.00", regularPay.StringFixed(2))
		assert.Equal(t, "150.00", overtimePay.StringFixed(2))
	})

	t.Run("salaried with zero salary falls back to hourly terms", func(t *testing.T) {
		comp := CompensationInput{Salaried: true, HourlyRate: dec("18")}
		regularPay, _, _ := calc.Earnings(comp, dec("40"), decimal.Zero, 26)
		assert.Equal(t, "720.00", regularPay.StringFixed(2))
	})

	t.Run("per diem is added to gross", func(t *testing.T) {
		comp := CompensationInput{HourlyRate: dec("20"), PerDiem: dec("100")}
		_, _, gross := calc.Earnings(comp, dec("40"), decimal.Zero, 26)
		assert.Equal(t, "900.00", gross.StringFixed(2))
	})
}

func TestFederalAnnualTax(t *testing.T) {
	calc := NewCalculator(DefaultTaxPolicy())

	tests := []struct {
		name   string
		annual string
		want   string
	}{
		{"zero income", "0", "0.00"},
		{"inside first bracket", "10000", "1000.00"},
		{"exactly first bound", "11600", "1160.00"},
		{"spanning three brackets", "52000", "6493.00"},
		{"top bracket", "700000", "217187.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.FederalAnnualTax(dec(tt.annual))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCalculatorTaxes(t *testing.T) {
	calc := NewCalculator(DefaultTaxPolicy())

	t.Run("produces the five withholding lines", func(t *testing.T) {
		lines, total := calc.Taxes(dec("2000"), decimal.Zero, 26)
		require.Len(t, lines, 5)
		types := make(map[TaxType]TaxLine, 5)
		for _, l := range lines {
			types[l.Type] = l
		}
		assert.Contains(t, types, TaxTypeFederal)
		assert.Contains(t, types, TaxTypeState)
		assert.Contains(t, types, TaxTypeSocialSecurity)
		assert.Contains(t, types, TaxTypeMedicare)
		assert.Contains(t, types, TaxTypeFUTA)

		// 52000 annualized: 1160 + 4266 + 1067 = 6493, /26 periods
		assert.Equal(t, "249.73", types[TaxTypeFederal].Amount.StringFixed(2))
		assert.Equal(t, "100.00", types[TaxTypeState].Amount.StringFixed(2))
		assert.Equal(t, "124.00", types[TaxTypeSocialSecurity].Amount.StringFixed(2))
		assert.Equal(t, "29.00", types[TaxTypeMedicare].Amount.StringFixed(2))
		assert.Equal(t, "12.00", types[TaxTypeFUTA].Amount.StringFixed(2))
		assert.Equal(t, "514.73", total.StringFixed(2))
	})

	t.Run("social security stops at the wage base", func(t *testing.T) {
		lines, _ := calc.Taxes(dec("5000"), dec("168600"), 26)
		ss := lineOf(t, lines, TaxTypeSocialSecurity)
		assert.True(t, ss.Amount.IsZero())
		assert.True(t, ss.TaxableAmount.IsZero())
	})

	t.Run("social security taxes only the remaining base", func(t *testing.T) {
		lines, _ := calc.Taxes(dec("5000"), dec("166600"), 26)
		ss := lineOf(t, lines, TaxTypeSocialSecurity)
		assert.Equal(t, "2000.00", ss.TaxableAmount.StringFixed(2))
		assert.Equal(t, "124.00", ss.Amount.StringFixed(2))
	})

	t.Run("medicare surtax applies only to the crossing increment", func(t *testing.T) {
		// 199k YTD, 3k gross: 2k crosses the 200k threshold.
		lines, _ := calc.Taxes(dec("3000"), dec("199000"), 26)
		medicare := lineOf(t, lines, TaxTypeMedicare)
		// 3000*0.0145 = 43.50 plus 2000*0.009 = 18.00
		assert.Equal(t, "61.50", medicare.Amount.StringFixed(2))
	})

	t.Run("medicare surtax covers full gross once past the threshold", func(t *testing.T) {
		lines, _ := calc.Taxes(dec("3000"), dec("250000"), 26)
		medicare := lineOf(t, lines, TaxTypeMedicare)
		// 3000*0.0145 = 43.50 plus 3000*0.009 = 27.00
		assert.Equal(t, "70.50", medicare.Amount.StringFixed(2))
	})

	t.Run("futa stops at its wage base", func(t *testing.T) {
		lines, _ := calc.Taxes(dec("2000"), dec("7000"), 26)
		futa := lineOf(t, lines, TaxTypeFUTA)
		assert.True(t, futa.Amount.IsZero())
	})

	t.Run("futa taxes only the remaining base", func(t *testing.T) {
		lines, _ := calc.Taxes(dec("2000"), dec("6000"), 26)
		futa := lineOf(t, lines, TaxTypeFUTA)
		assert.Equal(t, "1000.00", futa.TaxableAmount.StringFixed(2))
		assert.Equal(t, "6.00", futa.Amount.StringFixed(2))
	})

	t.Run("zero gross yields zero everywhere", func(t *testing.T) {
		lines, total := calc.Taxes(decimal.Zero, decimal.Zero, 26)
		require.Len(t, lines, 5)
		for _, l := range lines {
			assert.True(t, l.Amount.IsZero(), "expected zero amount for %s", l.Type)
		}
		assert.True(t, total.IsZero())
	})
}

func TestCalculatorCalculate(t *testing.T) {
	calc := NewCalculator(DefaultTaxPolicy())

	t.Run("hourly end to end", func(t *testing.T) {
		comp := CompensationInput{HourlyRate: dec("20")}
		worked := []WorkedHours{
			{Start: day(2025, time.June, 2), Hours: dec("45")},
		}
		result := calc.Calculate(comp, worked, 26, decimal.Zero)

		assert.Equal(t, "40.00", result.RegularHours.StringFixed(2))
		assert.Equal(t, "5.00", result.OvertimeHours.StringFixed(2))
		assert.Equal(t, "950.00", result.GrossPay.StringFixed(2))
		require.Len(t, result.Taxes, 5)
		assert.Equal(t, result.NetPay.StringFixed(2), result.GrossPay.Sub(result.TotalTaxes).StringFixed(2))
	})

	t.Run("recalculation is deterministic", func(t *testing.T) {
		comp := CompensationInput{Salaried: true, Salary: dec("78000"), HourlyRate: dec("30")}
		worked := []WorkedHours{
			{Start: day(2025, time.June, 2), Hours: dec("44")},
			{Start: day(2025, time.June, 9), Hours: dec("38")},
		}
		first := calc.Calculate(comp, worked, 26, dec("24000"))
		second := calc.Calculate(comp, worked, 26, dec("24000"))

		assert.True(t, first.GrossPay.Equal(second.GrossPay))
		assert.True(t, first.TotalTaxes.Equal(second.TotalTaxes))
		assert.True(t, first.NetPay.Equal(second.NetPay))
		for i := range first.Taxes {
			assert.True(t, first.Taxes[i].Amount.Equal(second.Taxes[i].Amount))
		}
	})
}

func lineOf(t *testing.T, lines []TaxLine, taxType TaxType) TaxLine {
	t.Helper()
	for _, l := range lines {
		if l.Type == taxType {
			return l
		}
	}
	t.Fatalf("tax line %s not found", taxType)
	return TaxLine{}
}
