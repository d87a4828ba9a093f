package finplan

import "github.com/shopspring/decimal"

// contributionTolerance absorbs floating noise when comparing the planned
// monthly contribution against the required one.
var contributionTolerance = decimal.NewFromFloat(0.01)

// GoalProgress is the read-only derivation of a goal's state on a given day.
// It is recomputed on every read and never persisted, so it can not go stale
// when the ledger or the goal changes underneath it.
type GoalProgress struct {
	Goal  *SavingsGoal
	AsOf  Date
	Total Money // manual + auto-linked contributions

	PercentComplete Percent // clamped to [0, 100] even on overshoot
	MonthsRemaining int     // calendar months to target date, partial months round up
	RequiredMonthly Money   // never negative
	OnTrack         bool

	// ProjectedCompletion is the first month-step date at which the planned
	// contribution reaches the target, nil when the goal can never complete
	// under the current plan (no contribution and still underfunded).
	ProjectedCompletion *Date

	Remaining Timeline
}

// NewGoalProgress derives the progress of a goal as seen on 'today'.
func NewGoalProgress(g *SavingsGoal, today Date) *GoalProgress {
	g.Validate()
	total := g.TotalSaved()

	p := &GoalProgress{
		Goal:            g,
		AsOf:            today,
		Total:           total,
		PercentComplete: total.RatioPercent(g.TargetAmount),
		MonthsRemaining: MonthsUntil(today, g.TargetDate),
		Remaining:       TimelineUntil(today, g.TargetDate),
	}

	shortfall := g.TargetAmount.Sub(total)
	if shortfall.IsNegative() {
		shortfall = M(0, shortfall.Currency())
	}

	if p.MonthsRemaining > 0 {
		p.RequiredMonthly = shortfall.DivInt(p.MonthsRemaining)
	} else {
		p.RequiredMonthly = shortfall
	}

	funded := total.GreaterThanOrEqual(g.TargetAmount)
	withinTolerance := g.MonthlyContribution.Decimal().Add(contributionTolerance).
		GreaterThanOrEqual(p.RequiredMonthly.Decimal())
	p.OnTrack = funded || withinTolerance

	p.ProjectedCompletion = projectedCompletion(g, total, today)
	return p
}

// projectedCompletion finds the smallest n >= 0 such that
// total + monthly*n >= target, stepping forward from today in months.
func projectedCompletion(g *SavingsGoal, total Money, today Date) *Date {
	if total.GreaterThanOrEqual(g.TargetAmount) {
		d := today
		return &d
	}
	if !g.MonthlyContribution.IsPositive() {
		// The plan never reaches the target; an explicit nil, not a
		// far-future date.
		return nil
	}
	shortfall := g.TargetAmount.Sub(total)
	months := shortfall.Decimal().Div(g.MonthlyContribution.Decimal()).Ceil().IntPart()
	d := today.AddMonth(int(months))
	return &d
}
