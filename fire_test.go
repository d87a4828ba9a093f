package finplan

import (
	"math"
	"testing"
)

func TestNewFireProjection(t *testing.T) {
	a := DefaultAssumptions()

	// Annual expenses 600000 at a 4% SWR: FIRE number is 25x = 15000000.
	p := NewFireProjection(INR(600000), INR(3000000), INR(50000), a)

	if got, want := p.FireNumber, INR(15000000); !got.Equal(want) {
		t.Errorf("FireNumber = %v, want %v", got, want)
	}
	if got, want := p.ProgressPercent, Percent(20); !got.Equal(want) {
		t.Errorf("ProgressPercent = %v, want %v", got, want)
	}
	if p.YearsToFIRE <= 0 || p.YearsToFIRE >= YearsCap {
		t.Errorf("YearsToFIRE = %v, want a finite positive horizon", p.YearsToFIRE)
	}
	if got, want := p.MonthlyRequired, INR(50000); !got.Equal(want) {
		t.Errorf("MonthlyRequired = %v, want the surplus %v", got, want)
	}

	// The closed form must agree with the forward projection: the net worth
	// reaches the target within the ceil'd year, not before the floor'd one.
	ceiling := int(math.Ceil(p.YearsToFIRE))
	at := func(years int) Money {
		return FutureValue(p.CurrentNetWorth, p.MonthlyRequired, a.PortfolioReturn, 12*years)
	}
	if at(ceiling).LessThan(p.FireNumber) {
		t.Errorf("net worth after %d years = %v, want at least %v", ceiling, at(ceiling), p.FireNumber)
	}
	if ceiling > 1 && at(ceiling-2).GreaterThanOrEqual(p.FireNumber) {
		t.Errorf("net worth after %d years = %v already reaches %v, years to FIRE is too high",
			ceiling-2, at(ceiling-2), p.FireNumber)
	}
}

func TestNewFireProjection_AlreadyFI(t *testing.T) {
	a := DefaultAssumptions()
	p := NewFireProjection(INR(600000), INR(15000000), INR(0), a)

	if got, want := p.ProgressPercent, Percent(100); !got.Equal(want) {
		t.Errorf("ProgressPercent = %v, want %v", got, want)
	}
	if p.YearsToFIRE != 0 {
		t.Errorf("YearsToFIRE = %v, want 0 when the target is already met", p.YearsToFIRE)
	}

	// Net worth beyond the target: progress stays clamped at 100.
	over := NewFireProjection(INR(600000), INR(20000000), INR(0), a)
	if got, want := over.ProgressPercent, Percent(100); !got.Equal(want) {
		t.Errorf("ProgressPercent = %v, want %v when net worth exceeds the target", got, want)
	}
	if over.YearsToFIRE != 0 {
		t.Errorf("YearsToFIRE = %v, want 0 when net worth exceeds the target", over.YearsToFIRE)
	}
}

func TestNewFireProjection_Unreachable(t *testing.T) {
	a := DefaultAssumptions()
	a.PortfolioReturn = 0

	// No return and no surplus: the gap never closes.
	p := NewFireProjection(INR(600000), INR(1000000), INR(0), a)
	if p.YearsToFIRE != YearsCap {
		t.Errorf("YearsToFIRE = %v, want the cap %d", p.YearsToFIRE, YearsCap)
	}
}

func TestNewFireProjection_SeriesCap(t *testing.T) {
	a := DefaultAssumptions()
	a.PortfolioReturn = 0

	p := NewFireProjection(INR(600000), INR(0), INR(100), a)
	if p.YearsToFIRE != YearsCap {
		t.Fatalf("YearsToFIRE = %v, want the cap %d", p.YearsToFIRE, YearsCap)
	}
	if got, want := len(p.ProjectionData), fireSeriesCap+1; got != want {
		t.Errorf("ProjectionData has %d points, want capped %d", got, want)
	}
	for _, fp := range p.ProjectionData {
		if !fp.FireTarget.Equal(p.FireNumber) {
			t.Errorf("year %d target = %v, want the constant %v", fp.Year, fp.FireTarget, p.FireNumber)
		}
	}
}

func TestNewFireProjection_ClampsInputs(t *testing.T) {
	a := DefaultAssumptions()
	p := NewFireProjection(INR(-600000), INR(-1), INR(-50), a)

	if !p.AnnualExpenses.IsZero() || !p.CurrentNetWorth.IsZero() || !p.MonthlyRequired.IsZero() {
		t.Errorf("negative inputs not clamped: expenses %v net worth %v surplus %v",
			p.AnnualExpenses, p.CurrentNetWorth, p.MonthlyRequired)
	}
	if !p.FireNumber.IsZero() {
		t.Errorf("FireNumber = %v, want zero from zero expenses", p.FireNumber)
	}
	if p.YearsToFIRE != 0 {
		t.Errorf("YearsToFIRE = %v, want 0 on a zero target", p.YearsToFIRE)
	}
}

func TestYearsToTarget_ZeroRateLinear(t *testing.T) {
	// 100000 short at 1000 a month with no return: 100 months, 8.33 years.
	got := yearsToTarget(INR(0), INR(1000), INR(100000), 0)
	if want := 100.0 / 12; math.Abs(got-want) > 1e-9 {
		t.Errorf("yearsToTarget(rate 0) = %v, want %v", got, want)
	}
}
