package renderer

import (
	"strings"
	"testing"

	"github.com/psahay/finplan"
)

func inr(v float64) finplan.Money { return finplan.M(v, "INR") }

func TestGoalsMarkdown(t *testing.T) {
	today := finplan.NewDate(2025, 1, 15)

	onTrack := finplan.NewSavingsGoal("Emergency fund", inr(100000), today.AddMonth(12), inr(5000))
	onTrack.CurrentAmount = inr(40000)
	behind := finplan.NewSavingsGoal("World trip", inr(500000), today.AddMonth(12), inr(1000))
	behind.CurrentAmount = inr(10000)
	stalled := finplan.NewSavingsGoal("No plan", inr(50000), today.AddMonth(6), inr(0))

	md := GoalsMarkdown(today, []*finplan.GoalProgress{
		finplan.NewGoalProgress(onTrack, today),
		finplan.NewGoalProgress(behind, today),
		finplan.NewGoalProgress(stalled, today),
	})

	if !strings.Contains(md, "# Savings Goals on 2025-01-15") {
		t.Errorf("missing title:\n%s", md)
	}
	for _, want := range []string{
		"## Emergency fund",
		"on track",
		"## World trip",
		"behind",
		"never completes under the current plan",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("template error leaked into the output:\n%s", md)
	}
}

func TestReviewMarkdown(t *testing.T) {
	ledger := finplan.NewLedger(
		finplan.NewTransaction(finplan.NewDate(2025, 2, 2), inr(5000), finplan.Income, "salary", "", ""),
		finplan.NewTransaction(finplan.NewDate(2025, 2, 5), inr(1500), finplan.Expense, "rent", "", ""),
		finplan.NewTransaction(finplan.NewDate(2025, 2, 12), inr(600), finplan.Expense, "", "cash withdrawal", ""),
	)
	review := finplan.NewReview(ledger, finplan.Monthly.Range(finplan.NewDate(2025, 2, 10)))

	md := ReviewMarkdown(review)
	for _, want := range []string{
		"# Review 2025-02",
		"Opening balance",
		"Net flow",
		"## By Category",
		"rent",
		"(uncategorized)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Anomalies") {
		t.Errorf("anomalies rendered for an unremarkable month:\n%s", md)
	}
}

func TestReviewMarkdown_Anomalies(t *testing.T) {
	ledger := finplan.NewLedger(
		finplan.NewTransaction(finplan.NewDate(2025, 2, 3), inr(500), finplan.Expense, "groceries", "", ""),
		finplan.NewTransaction(finplan.NewDate(2025, 2, 4), inr(600), finplan.Expense, "groceries", "", ""),
		finplan.NewTransaction(finplan.NewDate(2025, 2, 6), inr(700), finplan.Expense, "food", "", ""),
		finplan.NewTransaction(finplan.NewDate(2025, 2, 20), inr(20000), finplan.Expense, "electronics", "", "Croma"),
	)
	review := finplan.NewReview(ledger, finplan.Monthly.Range(finplan.NewDate(2025, 2, 10)))

	md := ReviewMarkdown(review)
	for _, want := range []string{"## Anomalies", "large expense", "2025-02-20", "Croma"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}

func TestReviewMarkdown_EmptyPeriodSkipsBreakdown(t *testing.T) {
	review := finplan.NewReview(finplan.NewLedger(), finplan.Monthly.Range(finplan.NewDate(2025, 2, 10)))
	if md := ReviewMarkdown(review); strings.Contains(md, "By Category") {
		t.Errorf("breakdown rendered for an empty period:\n%s", md)
	}
}

func TestSuggestionsMarkdown(t *testing.T) {
	md := SuggestionsMarkdown(nil)
	if !strings.Contains(md, "Nothing to link.") {
		t.Errorf("empty suggestions = %q, want the empty notice", md)
	}

	md = SuggestionsMarkdown([]finplan.Suggestion{{
		GoalName: "FD ladder",
		TxDate:   finplan.NewDate(2025, 3, 3),
		TxDesc:   "FD purchase",
		Amount:   inr(10000),
		Reason:   finplan.KeywordReason("FD"),
	}})
	for _, want := range []string{"FD ladder", "2025-03-03", "keyword: FD"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}

func TestFireMarkdown(t *testing.T) {
	a := finplan.DefaultAssumptions()
	p := finplan.NewFireProjection(inr(600000), inr(3000000), inr(50000), a)

	md := FireMarkdown(p)
	for _, want := range []string{"# FIRE", "FIRE number", "Years to FIRE", "## Projection"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}

func TestFireMarkdown_CapLabel(t *testing.T) {
	a := finplan.DefaultAssumptions()
	a.PortfolioReturn = 0
	p := finplan.NewFireProjection(inr(600000), inr(0), inr(0), a)

	if md := FireMarkdown(p); !strings.Contains(md, "100+") {
		t.Errorf("missing the capped years label in:\n%s", md)
	}
}

func TestPortfolioMarkdown_StableColumns(t *testing.T) {
	classes := []finplan.AssetClass{
		{Name: "stocks", Value: inr(200000), Rate: 12},
		{Name: "fd", Value: inr(100000), Rate: 8},
	}
	md := PortfolioMarkdown(finplan.PortfolioSeries(classes, 2))

	// Columns are sorted by class name regardless of input order.
	header := strings.SplitN(md, "\n", 4)[2]
	if !strings.Contains(header, "| fd | stocks |") {
		t.Errorf("header = %q, want sorted class columns", header)
	}
}
