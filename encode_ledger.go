package finplan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountJSON is a specialized struct to read an amount in two fields.
type amountJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

func (a amountJSON) Money() Money { return M(a.Amount, a.Currency) }

// MarshalJSON writes the transaction with a stable field order so that
// formatted ledger files diff cleanly.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("amount", t.Amount.Decimal().Round(2))
	w.Optional("currency", t.Amount.Currency())
	w.Append("type", t.Type)
	w.Optional("category", t.Category)
	w.Append("status", t.Status)
	w.Optional("description", t.Description)
	w.Optional("merchant", t.Merchant)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a transaction, accepting the permissive date formats and
// defaulting the currency.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID   string `json:"id"`
		Date Date   `json:"date"`
		amountJSON
		Type        TxType   `json:"type"`
		Category    string   `json:"category"`
		Status      TxStatus `json:"status"`
		Description string   `json:"description"`
		Merchant    string   `json:"merchant"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{
		ID:          temp.ID,
		Date:        temp.Date,
		Amount:      temp.Money(),
		Type:        temp.Type,
		Category:    temp.Category,
		Status:      temp.Status,
		Description: temp.Description,
		Merchant:    temp.Merchant,
	}
	t.Validate()
	return nil
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(lineBytes), err)
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeLedger writes the ledger in canonical JSONL form: one transaction per
// line, chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTransaction appends a single transaction line to w.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot encode transaction %s: %w", tx.ID, err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}
