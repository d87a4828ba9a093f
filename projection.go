package finplan

import "github.com/shopspring/decimal"

// monthlyRate converts an annual percentage into a monthly fraction,
// e.g. Percent(12) -> 0.01.
func monthlyRate(annual Percent) decimal.Decimal {
	return decimal.NewFromFloat(float64(annual)).Div(decimal.NewFromInt(1200))
}

// FutureValue computes the compounded value of a principal plus a recurring
// monthly contribution stream after the given number of months:
//
//	FV = P*(1+r)^n + C*((1+r)^n - 1)/r     with r the monthly rate
//
// A zero rate degenerates to straight accumulation P + C*n, never a division
// by zero. Negative months count as zero.
func FutureValue(principal, monthly Money, annual Percent, months int) Money {
	if months < 0 {
		months = 0
	}
	r := monthlyRate(annual)
	if r.IsZero() {
		return principal.Add(monthly.MulInt(months))
	}

	growth, err := decimal.NewFromInt(1).Add(r).PowInt32(int32(months))
	if err != nil {
		// 1+r is never zero for sane rates; keep the principal untouched
		// rather than propagate garbage.
		return principal.Add(monthly.MulInt(months))
	}

	compounded := principal.Scale(growth)
	annuity := monthly.Scale(growth.Sub(decimal.NewFromInt(1)).Div(r))
	return compounded.Add(annuity)
}

// ProjectionPoint is one step of an eagerly produced projection series.
type ProjectionPoint struct {
	Year  int
	Value Money
}

// Series projects a principal and monthly contribution year by year from year
// 0 (the principal itself) to the horizon. The slice is ordered and finite so
// consumers can random-access it for charting.
func Series(principal, monthly Money, annual Percent, years int) []ProjectionPoint {
	if years < 0 {
		years = 0
	}
	points := make([]ProjectionPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		points = append(points, ProjectionPoint{
			Year:  year,
			Value: FutureValue(principal, monthly, annual, 12*year),
		})
	}
	return points
}

// SIPRow is one holding's future-value projection at the standard 3, 5 and 10
// year horizons.
type SIPRow struct {
	Name    string
	Current Money
	Monthly Money // the recurring SIP amount, zero when none is known
	In3y    Money
	In5y    Money
	In10y   Money
}

// SIPTable projects every holding at the given annual rate using its current
// value as principal and its recurring SIP amount (when known) as the monthly
// contribution.
func SIPTable(holdings []Holding, annual Percent) []SIPRow {
	rows := make([]SIPRow, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, SIPRow{
			Name:    h.Label(),
			Current: h.CurrentValue,
			Monthly: h.MonthlySIP,
			In3y:    FutureValue(h.CurrentValue, h.MonthlySIP, annual, 36),
			In5y:    FutureValue(h.CurrentValue, h.MonthlySIP, annual, 60),
			In10y:   FutureValue(h.CurrentValue, h.MonthlySIP, annual, 120),
		})
	}
	return rows
}
