package finplan

import "math"

// YearsCap is the sentinel horizon for goals that effectively never complete:
// a YearsToFIRE of YearsCap reads as "100+ years", never an infinite loop.
const YearsCap = 100

// fireSeriesCap bounds the projection series length for charting.
const fireSeriesCap = 50

// FirePoint is one year of the FIRE projection: the projected net worth
// against the constant target.
type FirePoint struct {
	Year       int
	NetWorth   Money
	FireTarget Money
}

// FireProjection derives the financial-independence picture from an
// externally computed annual-expenses baseline, the current net worth and the
// current monthly surplus.
type FireProjection struct {
	FireNumber      Money
	AnnualExpenses  Money
	CurrentNetWorth Money
	ProgressPercent Percent
	YearsToFIRE     float64 // fractional; YearsCap means "100+"
	MonthlyRequired Money   // echoes the monthly surplus the projection runs on
	ProjectionData  []FirePoint
}

// NewFireProjection computes the FIRE target and trajectory.
//
// The target is annual expenses times the multiple implied by the safe
// withdrawal rate (25x at 4%). Years to FIRE is solved in closed form by
// inverting the future-value formula; the zero-rate degenerate falls back to
// linear extrapolation. Negative inputs are clamped to zero.
func NewFireProjection(annualExpenses, netWorth, monthlySurplus Money, a Assumptions) *FireProjection {
	annualExpenses = clampNonNegative(annualExpenses)
	netWorth = clampNonNegative(netWorth)
	monthlySurplus = clampNonNegative(monthlySurplus)

	fireNumber := annualExpenses.Scale(newDecimal(a.FireMultiple()))

	p := &FireProjection{
		FireNumber:      fireNumber,
		AnnualExpenses:  annualExpenses,
		CurrentNetWorth: netWorth,
		ProgressPercent: netWorth.RatioPercent(fireNumber),
		MonthlyRequired: monthlySurplus,
	}
	p.YearsToFIRE = yearsToTarget(netWorth, monthlySurplus, fireNumber, a.PortfolioReturn)

	horizon := fireSeriesCap
	if y := int(math.Ceil(p.YearsToFIRE)); y < horizon {
		horizon = y
	}
	p.ProjectionData = make([]FirePoint, 0, horizon+1)
	for year := 0; year <= horizon; year++ {
		p.ProjectionData = append(p.ProjectionData, FirePoint{
			Year:       year,
			NetWorth:   FutureValue(netWorth, monthlySurplus, a.PortfolioReturn, 12*year),
			FireTarget: fireNumber,
		})
	}
	return p
}

// yearsToTarget solves for the smallest non-negative t (in years, fractional)
// such that the future value of principal plus monthly contributions reaches
// the target.
//
// With a monthly rate r the future value after n months is
//
//	FV(n) = (P + C/r)*(1+r)^n - C/r
//
// which inverts to n = log((F + C/r)/(P + C/r)) / log(1+r).
func yearsToTarget(principal, monthly, target Money, annual Percent) float64 {
	P := principal.AsFloat()
	C := monthly.AsFloat()
	F := target.AsFloat()

	if F <= 0 || P >= F {
		return 0
	}
	r := annual.Fraction() / 12

	if r == 0 {
		if C <= 0 {
			return YearsCap
		}
		return math.Min((F-P)/C/12, YearsCap)
	}
	if P <= 0 && C <= 0 {
		// Nothing to grow from: unreachable.
		return YearsCap
	}

	k := C / r
	months := math.Log((F+k)/(P+k)) / math.Log(1+r)
	years := months / 12
	if math.IsNaN(years) || math.IsInf(years, 0) || years > YearsCap {
		return YearsCap
	}
	if years < 0 {
		return 0
	}
	return years
}
