package finplan

import (
	"testing"
	"time"
)

func TestGoalProgress_RequiredMonthly(t *testing.T) {
	today := NewDate(2025, time.January, 15)
	g := NewSavingsGoal("Emergency fund", INR(100000), NewDate(2026, time.January, 15), INR(5000))
	g.CurrentAmount = INR(40000)

	p := NewGoalProgress(g, today)

	if got, want := p.MonthsRemaining, 12; got != want {
		t.Errorf("MonthsRemaining = %d, want %d", got, want)
	}
	// Shortfall 60000 over 12 months.
	if got, want := p.RequiredMonthly, INR(5000); !got.Equal(want) {
		t.Errorf("RequiredMonthly = %v, want %v", got, want)
	}
	if got, want := p.PercentComplete, Percent(40); !got.Equal(want) {
		t.Errorf("PercentComplete = %v, want %v", got, want)
	}
	if !p.OnTrack {
		t.Errorf("OnTrack = false, want true with monthly contribution meeting the requirement")
	}
}

func TestGoalProgress_OnTrack(t *testing.T) {
	today := NewDate(2025, time.January, 15)
	target := NewDate(2026, time.January, 15)

	tests := []struct {
		name    string
		monthly Money
		current Money
		want    bool
	}{
		{"exactly the requirement", INR(5000), INR(40000), true},
		{"slightly below within tolerance", INR(4999.995), INR(40000), true},
		{"well below", INR(2000), INR(40000), false},
		{"no contribution but funded", INR(0), INR(100000), true},
		{"overshoot is funded", INR(0), INR(120000), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSavingsGoal("Emergency fund", INR(100000), target, tt.monthly)
			g.CurrentAmount = tt.current
			if got := NewGoalProgress(g, today).OnTrack; got != tt.want {
				t.Errorf("OnTrack = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoalProgress_PercentClamped(t *testing.T) {
	today := NewDate(2025, time.January, 15)

	t.Run("overshoot", func(t *testing.T) {
		g := NewSavingsGoal("Trip", INR(50000), today.AddMonth(6), NO(0))
		g.CurrentAmount = INR(75000)
		if got, want := NewGoalProgress(g, today).PercentComplete, Percent(100); !got.Equal(want) {
			t.Errorf("PercentComplete = %v, want clamped %v", got, want)
		}
	})

	t.Run("zero target", func(t *testing.T) {
		g := NewSavingsGoal("Trip", INR(0), today.AddMonth(6), NO(0))
		g.CurrentAmount = INR(75000)
		if got, want := NewGoalProgress(g, today).PercentComplete, Percent(0); !got.Equal(want) {
			t.Errorf("PercentComplete = %v, want %v on a zero target", got, want)
		}
	})
}

func TestGoalProgress_PastTargetDate(t *testing.T) {
	today := NewDate(2025, time.June, 15)
	g := NewSavingsGoal("Old goal", INR(100000), NewDate(2025, time.January, 1), INR(1000))
	g.CurrentAmount = INR(30000)

	p := NewGoalProgress(g, today)

	if got := p.MonthsRemaining; got != 0 {
		t.Errorf("MonthsRemaining = %d, want 0 past the target date", got)
	}
	// With no months left the full shortfall is due at once.
	if got, want := p.RequiredMonthly, INR(70000); !got.Equal(want) {
		t.Errorf("RequiredMonthly = %v, want %v", got, want)
	}
	if !p.Remaining.Past {
		t.Errorf("Remaining.Past = false, want true")
	}
}

func TestGoalProgress_ProjectedCompletion(t *testing.T) {
	today := NewDate(2025, time.January, 15)

	t.Run("funded completes today", func(t *testing.T) {
		g := NewSavingsGoal("Trip", INR(50000), today.AddMonth(6), NO(0))
		g.CurrentAmount = INR(50000)
		p := NewGoalProgress(g, today)
		if p.ProjectedCompletion == nil || *p.ProjectedCompletion != today {
			t.Errorf("ProjectedCompletion = %v, want %v", p.ProjectedCompletion, today)
		}
	})

	t.Run("no contribution never completes", func(t *testing.T) {
		g := NewSavingsGoal("Trip", INR(50000), today.AddMonth(6), NO(0))
		g.CurrentAmount = INR(10000)
		if p := NewGoalProgress(g, today); p.ProjectedCompletion != nil {
			t.Errorf("ProjectedCompletion = %v, want nil", *p.ProjectedCompletion)
		}
	})

	t.Run("partial months round up", func(t *testing.T) {
		// Shortfall 40000 at 15000 a month: 2.67 months, done on the 3rd step.
		g := NewSavingsGoal("Trip", INR(50000), today.AddMonth(6), INR(15000))
		g.CurrentAmount = INR(10000)
		p := NewGoalProgress(g, today)
		want := today.AddMonth(3)
		if p.ProjectedCompletion == nil || *p.ProjectedCompletion != want {
			t.Errorf("ProjectedCompletion = %v, want %v", p.ProjectedCompletion, want)
		}
	})
}

func TestGoalProgress_TotalIncludesAutoLinked(t *testing.T) {
	today := NewDate(2025, time.January, 15)
	g := NewSavingsGoal("FD ladder", INR(100000), today.AddMonth(12), INR(5000))
	g.CurrentAmount = INR(30000)
	g.ApplyLink(LinkedContribution{TxID: "tx-1", Amount: INR(10000), Reason: ReasonCategory, Date: today})

	p := NewGoalProgress(g, today)
	if got, want := p.Total, INR(40000); !got.Equal(want) {
		t.Errorf("Total = %v, want %v (manual + auto-linked)", got, want)
	}
	if got, want := p.PercentComplete, Percent(40); !got.Equal(want) {
		t.Errorf("PercentComplete = %v, want %v", got, want)
	}
}
