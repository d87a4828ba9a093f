package finplan

import "fmt"

// Match reasons reported on suggestions. Keyword matches carry the matched
// keyword after the prefix, e.g. "keyword: FD".
const (
	ReasonCategory      = "category match"
	reasonKeywordPrefix = "keyword: "
)

// KeywordReason formats the match reason for a keyword hit.
func KeywordReason(keyword string) string {
	return reasonKeywordPrefix + keyword
}

// Suggestion proposes linking one transaction to one goal. Suggestions are
// ephemeral: the matcher only proposes, acceptance is a separate operation
// owned by the caller (see the linkstore package).
type Suggestion struct {
	GoalID   string
	GoalName string
	TxID     string
	TxDesc   string
	TxDate   Date
	Amount   Money // the transaction's full amount, no partial splitting
	Reason   string
}

func (s Suggestion) String() string {
	return fmt.Sprintf("%s <- %s %s (%s)", s.GoalName, s.TxDate, s.Amount, s.Reason)
}

// Seen filters out (goal, transaction) pairs already decided elsewhere, such
// as previously dismissed suggestions. A nil Seen suppresses nothing.
type Seen func(goalID, txID string) bool

// MatchSuggestions scans the ledger against each goal's linking rules and
// proposes contributions.
//
// Per goal, a completed transaction of the goal's direction is suggested when
// its category is in the goal's allow-list, or when its description or
// merchant contains one of the goal's keywords (category wins when both hit).
// A transaction already linked to a goal, or suppressed by seen, is skipped
// for that goal only: the same transaction may still be suggested to other
// goals independently. Goals with no rules at all are not scanned.
func MatchSuggestions(goals []*SavingsGoal, ledger *Ledger, seen Seen) []Suggestion {
	var suggestions []Suggestion
	for _, g := range goals {
		g.Validate()
		if !g.HasLinkRules() {
			continue
		}
		for _, tx := range ledger.Transactions(ByType(g.Direction)) {
			if !tx.Settled() {
				continue
			}
			if g.IsLinked(tx.ID) {
				continue
			}
			if seen != nil && seen(g.ID, tx.ID) {
				continue
			}
			reason, ok := matchGoal(g, tx)
			if !ok {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				GoalID:   g.ID,
				GoalName: g.Name,
				TxID:     tx.ID,
				TxDesc:   tx.Description,
				TxDate:   tx.Date,
				Amount:   tx.Amount,
				Reason:   reason,
			})
		}
	}
	return suggestions
}

// matchGoal tests one transaction against one goal's rules.
func matchGoal(g *SavingsGoal, tx Transaction) (reason string, ok bool) {
	if g.matchesCategory(tx.Category) {
		return ReasonCategory, true
	}
	if kw, hit := g.matchesKeyword(tx.Description, tx.Merchant); hit {
		return KeywordReason(kw), true
	}
	return "", false
}

// Contribution converts a suggestion into the linked-contribution record an
// acceptance writes onto the goal.
func (s Suggestion) Contribution() LinkedContribution {
	return LinkedContribution{
		TxID:   s.TxID,
		Amount: s.Amount,
		Reason: s.Reason,
		Date:   s.TxDate,
	}
}
