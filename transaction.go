package finplan

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TxType classifies the direction of a transaction.
type TxType string

const (
	Income   TxType = "income"
	Expense  TxType = "expense"
	Transfer TxType = "transfer"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	case "transfer":
		return Transfer, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// TxStatus is the settlement state of a transaction. Only completed
// transactions participate in balances, goal progress and projections.
type TxStatus string

const (
	Pending   TxStatus = "pending"
	Completed TxStatus = "completed"
	Failed    TxStatus = "failed"
)

// ParseTxStatus parses a string into a TxStatus.
func ParseTxStatus(s string) (TxStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return Pending, nil
	case "completed":
		return Completed, nil
	case "failed":
		return Failed, nil
	default:
		return "", fmt.Errorf("unknown transaction status: %q", s)
	}
}

// Transaction is a single settled or pending entry of the ledger.
// It is immutable once completed; the engine only ever reads it.
type Transaction struct {
	ID          string
	Date        Date
	Amount      Money // positive magnitude; encoded as amount/currency fields, see encode_ledger.go
	Type        TxType
	Category    string
	Status      TxStatus
	Description string
	Merchant    string
}

// NewTransaction creates a transaction with a fresh id. Amount is a positive
// magnitude; the sign is carried by the type.
func NewTransaction(on Date, amount Money, typ TxType, category, description, merchant string) Transaction {
	if amount.IsNegative() {
		amount = amount.Neg()
	}
	return Transaction{
		ID:          uuid.NewString(),
		Date:        on,
		Amount:      amount,
		Type:        typ,
		Category:    category,
		Status:      Completed,
		Description: description,
		Merchant:    merchant,
	}
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.Date }

// Settled reports whether the transaction participates in any computation.
func (t Transaction) Settled() bool { return t.Status == Completed }

// Signed returns the transaction's contribution to an account balance:
// positive for income, negative for expense, zero for transfers.
//
// Transfers move value between own accounts and are excluded from balance
// accumulation.
func (t Transaction) Signed() Money {
	switch t.Type {
	case Income:
		return t.Amount
	case Expense:
		return t.Amount.Neg()
	default:
		return M(0, t.Amount.Currency())
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %q", t.Date, t.Type, t.Amount, t.Description)
}

// Validate clamps structurally bad fields to safe values rather than failing:
// a negative amount becomes its magnitude, a zero date becomes today, and an
// unknown status is treated as pending so it never silently enters the math.
func (t *Transaction) Validate() {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Amount.IsNegative() {
		t.Amount = t.Amount.Neg()
	}
	switch t.Status {
	case Pending, Completed, Failed:
	default:
		t.Status = Pending
	}
}
