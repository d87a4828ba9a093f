package finplan

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger from the given transactions.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Tx returns the transaction with the given id, or nil if unknown.
func (l *Ledger) Tx(id string) *Transaction {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			return &l.transactions[i]
		}
	}
	return nil
}

// Transactions returns an iterator that yields each transaction in
// chronological order. When filters are given, a transaction is yielded if any
// filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date when the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date when the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// BalanceAt computes the account balance as of a given date: the signed sum of
// all completed transactions dated on or before 'on'.
//
// Addition is commutative, so the result does not depend on the order of
// same-day transactions. An empty or all-future ledger yields zero.
func (l *Ledger) BalanceAt(on Date) Money {
	var balance Money
	for _, tx := range l.transactions {
		if tx.Date.After(on) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
		if !tx.Settled() {
			continue
		}
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// NetFlow computes the signed sum of completed transactions strictly within
// the range boundaries (both included).
func (l *Ledger) NetFlow(r Range) Money {
	return l.BalanceAt(r.To).Sub(l.BalanceAt(r.From.Add(-1)))
}

// AvailableWeeks returns the distinct ISO weeks spanned by the ledger,
// chronologically ascending and deduplicated.
func (l *Ledger) AvailableWeeks() []Week {
	visited := make(map[Week]struct{})
	for _, tx := range l.transactions {
		visited[WeekOf(tx.Date)] = struct{}{}
	}
	weeks := slices.Collect(maps.Keys(visited))
	slices.SortFunc(weeks, func(a, b Week) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Week - b.Week
	})
	return weeks
}

// CategoryTotals sums completed transaction amounts per category over a range,
// keeping income and expenses apart by the sign convention of Signed.
func (l *Ledger) CategoryTotals(r Range) map[string]Money {
	totals := make(map[string]Money)
	for _, tx := range l.transactions {
		if tx.Date.After(r.To) {
			break
		}
		if tx.Date.Before(r.From) || !tx.Settled() || tx.Type == Transfer {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Signed())
	}
	return totals
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// ByType returns a predicate that filters transactions by type.
func ByType(typ TxType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == typ }
}

// Settled is a predicate keeping only completed transactions.
func Settled(tx Transaction) bool { return tx.Settled() }

// In returns a predicate keeping transactions dated inside the range.
func In(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}
