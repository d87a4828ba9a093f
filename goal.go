package finplan

import (
	"strings"

	"github.com/google/uuid"
)

// SavingsGoal is a user-defined target amount to reach by a target date.
//
// CurrentAmount holds manually entered contributions; AutoLinkedAmount holds
// the sum of accepted auto-link contributions. Both are authoritative inputs:
// the engine derives progress from them on every read (see GoalProgress) and
// never stores derived fields back.
type SavingsGoal struct {
	ID                  string
	Name                string
	TargetAmount        Money
	CurrentAmount       Money
	TargetDate          Date
	MonthlyContribution Money
	Category            string

	// Auto-linking rules. A goal with no categories and no keywords is never
	// scanned by the matcher.
	LinkedCategories []string
	LinkedKeywords   []string

	// Direction selects which transaction type feeds the goal: Expense for
	// spending-shaped goals (an FD purchase shows up as an expense), Income
	// for income-oriented goals. Empty means Expense.
	Direction TxType

	AutoLinkedAmount Money
	Linked           []LinkedContribution
}

// LinkedContribution records one accepted auto-link contribution.
type LinkedContribution struct {
	TxID   string
	Amount Money
	Reason string
	Date   Date
}

// NewSavingsGoal creates a goal with a fresh id. Negative target, current or
// monthly amounts are clamped to zero: bad-but-plausible inputs degrade, they
// never fail.
func NewSavingsGoal(name string, target Money, targetDate Date, monthly Money) *SavingsGoal {
	return &SavingsGoal{
		ID:                  uuid.NewString(),
		Name:                name,
		TargetAmount:        clampNonNegative(target),
		TargetDate:          targetDate,
		MonthlyContribution: clampNonNegative(monthly),
	}
}

func clampNonNegative(m Money) Money {
	if m.IsNegative() {
		return M(0, m.Currency())
	}
	return m
}

// Validate clamps structurally bad fields to safe values.
func (g *SavingsGoal) Validate() {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.TargetAmount = clampNonNegative(g.TargetAmount)
	g.CurrentAmount = clampNonNegative(g.CurrentAmount)
	g.MonthlyContribution = clampNonNegative(g.MonthlyContribution)
	if g.Direction != Income {
		g.Direction = Expense
	}
}

// TotalSaved is the sum of manual and auto-linked contributions. Overshooting
// the target is allowed and reported as such.
func (g *SavingsGoal) TotalSaved() Money {
	return g.CurrentAmount.Add(g.AutoLinkedAmount)
}

// HasLinkRules reports whether the matcher should scan this goal at all.
func (g *SavingsGoal) HasLinkRules() bool {
	return len(g.LinkedCategories) > 0 || len(g.LinkedKeywords) > 0
}

// IsLinked reports whether a transaction has already been linked to this goal.
func (g *SavingsGoal) IsLinked(txID string) bool {
	for _, lc := range g.Linked {
		if lc.TxID == txID {
			return true
		}
	}
	return false
}

// ApplyLink records an accepted contribution and adds its amount to
// AutoLinkedAmount. It is idempotent per transaction id: applying the same
// contribution twice increments the amount exactly once.
func (g *SavingsGoal) ApplyLink(lc LinkedContribution) bool {
	if g.IsLinked(lc.TxID) {
		return false
	}
	g.Linked = append(g.Linked, lc)
	g.AutoLinkedAmount = g.AutoLinkedAmount.Add(lc.Amount)
	return true
}

// matchesCategory reports whether the category is in the goal's allow-list.
func (g *SavingsGoal) matchesCategory(category string) bool {
	for _, c := range g.LinkedCategories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// matchesKeyword returns the first configured keyword found as a
// case-insensitive substring of the transaction's description or merchant.
func (g *SavingsGoal) matchesKeyword(description, merchant string) (string, bool) {
	desc := strings.ToLower(description)
	merch := strings.ToLower(merchant)
	for _, kw := range g.LinkedKeywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		if strings.Contains(desc, k) || strings.Contains(merch, k) {
			return kw, true
		}
	}
	return "", false
}
