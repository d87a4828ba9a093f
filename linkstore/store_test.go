package linkstore

import (
	"path/filepath"
	"testing"

	"github.com/psahay/finplan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "suggestions.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func suggestion(goalID, txID string) finplan.Suggestion {
	return finplan.Suggestion{
		GoalID:   goalID,
		GoalName: "FD ladder",
		TxID:     txID,
		TxDate:   finplan.NewDate(2025, 3, 3),
		Amount:   finplan.M(10000, "INR"),
		Reason:   finplan.ReasonCategory,
	}
}

func TestAccept_Idempotent(t *testing.T) {
	s := openTestStore(t)
	if err := s.Record(suggestion("g1", "tx1")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	lc, applied, err := s.Accept("g1", "tx1")
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if !applied {
		t.Errorf("Accept() applied = false on first call, want true")
	}
	if lc.TxID != "tx1" || !lc.Amount.Equal(finplan.M(10000, "INR")) || lc.Reason != finplan.ReasonCategory {
		t.Errorf("Accept() contribution = %+v, want the recorded suggestion back", lc)
	}
	if lc.Date != finplan.NewDate(2025, 3, 3) {
		t.Errorf("Accept() date = %v, want 2025-03-03", lc.Date)
	}

	// A retried accept reports the contribution but must not apply it again.
	lc2, applied, err := s.Accept("g1", "tx1")
	if err != nil {
		t.Fatalf("Accept() retry error = %v", err)
	}
	if applied {
		t.Errorf("Accept() applied = true on retry, want false")
	}
	if !lc2.Amount.Equal(lc.Amount) {
		t.Errorf("Accept() retry contribution = %v, want %v", lc2.Amount, lc.Amount)
	}
}

func TestAccept_Unknown(t *testing.T) {
	s := openTestStore(t)
	if _, _, err := s.Accept("g1", "never-recorded"); err == nil {
		t.Errorf("Accept() error = nil for an unknown pair, want an error")
	}
}

func TestDismiss(t *testing.T) {
	s := openTestStore(t)
	if err := s.Record(suggestion("g1", "tx1")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Dismiss("g1", "tx1"); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	if state, ok := s.Get("g1", "tx1"); !ok || state != StateDismissed {
		t.Errorf("Get() = %v %v, want dismissed", state, ok)
	}

	// Dismissing an unknown pair records it directly.
	if err := s.Dismiss("g1", "tx2"); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	if state, ok := s.Get("g1", "tx2"); !ok || state != StateDismissed {
		t.Errorf("Get() = %v %v, want dismissed", state, ok)
	}
}

func TestDismiss_NeverOverwritesAccepted(t *testing.T) {
	s := openTestStore(t)
	if err := s.Record(suggestion("g1", "tx1")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if _, _, err := s.Accept("g1", "tx1"); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if err := s.Dismiss("g1", "tx1"); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	if state, _ := s.Get("g1", "tx1"); state != StateAccepted {
		t.Errorf("Get() = %v after dismissing an accepted pair, want it untouched", state)
	}
}

func TestRecord_LeavesDecidedUntouched(t *testing.T) {
	s := openTestStore(t)
	if err := s.Record(suggestion("g1", "tx1")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Dismiss("g1", "tx1"); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}

	// Re-recording the same pair, say on the next matcher run, keeps the decision.
	if err := s.Record(suggestion("g1", "tx1")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if state, _ := s.Get("g1", "tx1"); state != StateDismissed {
		t.Errorf("Get() = %v after re-recording, want the dismissal kept", state)
	}
}

func TestDecided(t *testing.T) {
	s := openTestStore(t)
	if err := s.Record(suggestion("g1", "tx1")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if s.Decided("g1", "tx1") {
		t.Errorf("Decided() = true for a pending pair, want false")
	}
	if s.Decided("g1", "unknown") {
		t.Errorf("Decided() = true for an unknown pair, want false")
	}

	if _, _, err := s.Accept("g1", "tx1"); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if !s.Decided("g1", "tx1") {
		t.Errorf("Decided() = false for an accepted pair, want true")
	}
}

// TestDecided_FeedsMatcher exercises the store as the matcher's seen filter:
// once a pair is decided the matcher stops proposing it, while fresh pairs
// still come through.
func TestDecided_FeedsMatcher(t *testing.T) {
	s := openTestStore(t)
	day := finplan.NewDate(2025, 3, 3)

	g := finplan.NewSavingsGoal("FD ladder", finplan.M(100000, "INR"), day.AddMonth(12), finplan.M(5000, "INR"))
	g.LinkedCategories = []string{"investments"}
	tx1 := finplan.NewTransaction(day, finplan.M(10000, "INR"), finplan.Expense, "investments", "FD purchase", "")
	tx2 := finplan.NewTransaction(day.Add(1), finplan.M(5000, "INR"), finplan.Expense, "investments", "another FD", "")
	ledger := finplan.NewLedger(tx1, tx2)

	suggestions := finplan.MatchSuggestions([]*finplan.SavingsGoal{g}, ledger, s.Decided)
	if len(suggestions) != 2 {
		t.Fatalf("MatchSuggestions() = %d, want 2 before any decision", len(suggestions))
	}
	for _, sg := range suggestions {
		if err := s.Record(sg); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	if err := s.Dismiss(g.ID, tx1.ID); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}

	suggestions = finplan.MatchSuggestions([]*finplan.SavingsGoal{g}, ledger, s.Decided)
	if len(suggestions) != 1 || suggestions[0].TxID != tx2.ID {
		t.Errorf("MatchSuggestions() = %v, want only the undecided transaction", suggestions)
	}
}
