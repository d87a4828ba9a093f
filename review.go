package finplan

import (
	"fmt"
	"maps"
	"slices"
)

// Review represents an analysis of the ledger over a specific period (Range).
// It derives period metrics from two balance readings: one the day before the
// period starts and one on its last day. Nothing is persisted, every field is
// recomputed from the ledger on each call.
type Review struct {
	ledger *Ledger
	period Range
}

// NewReview creates a review of the ledger over the given period.
func NewReview(ledger *Ledger, period Range) *Review {
	return &Review{ledger: ledger, period: period}
}

// Range returns the period range of the review.
func (r *Review) Range() Range { return r.period }

// Opening returns the account balance the day before the period starts.
func (r *Review) Opening() Money { return r.ledger.BalanceAt(r.period.From.Add(-1)) }

// Closing returns the account balance on the last day of the period.
func (r *Review) Closing() Money { return r.ledger.BalanceAt(r.period.To) }

// NetFlow is the signed sum of completed transactions inside the period.
// It always equals Closing minus Opening.
func (r *Review) NetFlow() Money { return r.Closing().Sub(r.Opening()) }

// Income sums completed income transactions inside the period.
func (r *Review) Income() Money {
	return r.sum(func(tx Transaction) bool { return tx.Type == Income })
}

// Expenses sums completed expense transactions inside the period, as a
// positive magnitude.
func (r *Review) Expenses() Money {
	return r.sum(func(tx Transaction) bool { return tx.Type == Expense })
}

func (r *Review) sum(accept func(Transaction) bool) Money {
	var total Money
	for _, tx := range r.ledger.Transactions(In(r.period)) {
		if tx.Settled() && accept(tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CategoryBreakdown lists per-category signed totals for the period, ordered
// by category name for stable rendering.
func (r *Review) CategoryBreakdown() []CategoryTotal {
	totals := r.ledger.CategoryTotals(r.period)
	categories := slices.Collect(maps.Keys(totals))
	slices.Sort(categories)
	breakdown := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		breakdown = append(breakdown, CategoryTotal{Category: c, Total: totals[c]})
	}
	return breakdown
}

// CategoryTotal is one line of a review's category breakdown.
type CategoryTotal struct {
	Category string
	Total    Money
}

// largeExpenseFactor flags expenses above this multiple of the period's
// average expense.
const largeExpenseFactor = 3

// Anomaly kinds.
const (
	LargeExpense    = "large expense"
	DuplicateAmount = "duplicate amount"
)

// Anomaly flags a transaction pattern worth a second look during a review.
type Anomaly struct {
	Kind   string
	Date   Date
	Amount Money
	Detail string
}

// Anomalies scans the period for patterns worth a second look: expenses more
// than three times the period's average expense, and identical amounts
// repeated on the same day. The scan is advisory, nothing is rejected.
func (r *Review) Anomalies() []Anomaly {
	var anomalies []Anomaly

	var expenses []Transaction
	var total Money
	for _, tx := range r.ledger.Transactions(In(r.period)) {
		if tx.Settled() && tx.Type == Expense {
			expenses = append(expenses, tx)
			total = total.Add(tx.Amount)
		}
	}
	if len(expenses) > 1 {
		threshold := total.DivInt(len(expenses)).MulInt(largeExpenseFactor)
		for _, tx := range expenses {
			if tx.Amount.GreaterThan(threshold) {
				detail := tx.Merchant
				if detail == "" {
					detail = tx.Description
				}
				anomalies = append(anomalies, Anomaly{
					Kind:   LargeExpense,
					Date:   tx.Date,
					Amount: tx.Amount,
					Detail: detail,
				})
			}
		}
	}

	type dayAmount struct {
		date   Date
		amount string
	}
	counts := make(map[dayAmount]int)
	amounts := make(map[dayAmount]Money)
	var order []dayAmount
	for _, tx := range r.ledger.Transactions(In(r.period)) {
		if !tx.Settled() || tx.Amount.IsZero() {
			continue
		}
		key := dayAmount{tx.Date, tx.Amount.Decimal().String()}
		if counts[key] == 0 {
			order = append(order, key)
			amounts[key] = tx.Amount
		}
		counts[key]++
	}
	for _, key := range order {
		if n := counts[key]; n > 1 {
			anomalies = append(anomalies, Anomaly{
				Kind:   DuplicateAmount,
				Date:   key.date,
				Amount: amounts[key],
				Detail: fmt.Sprintf("%d transactions", n),
			})
		}
	}
	return anomalies
}
