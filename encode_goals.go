package finplan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON writes the goal with a stable field order.
func (g SavingsGoal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("targetAmount", g.TargetAmount.Decimal().Round(2))
	w.Append("currentAmount", g.CurrentAmount.Decimal().Round(2))
	w.Optional("currency", g.TargetAmount.Currency())
	w.Append("targetDate", g.TargetDate)
	w.Append("monthlyContribution", g.MonthlyContribution.Decimal().Round(2))
	w.Optional("category", g.Category)
	w.Optional("direction", g.Direction)
	w.Optional("linkedCategories", g.LinkedCategories)
	w.Optional("linkedKeywords", g.LinkedKeywords)
	w.Optional("autoLinkedAmount", g.AutoLinkedAmount.Decimal().Round(2))
	w.Optional("linkedTransactions", g.Linked)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a goal, defaulting the currency and clamping bad values.
func (g *SavingsGoal) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID                  string               `json:"id"`
		Name                string               `json:"name"`
		TargetAmount        float64              `json:"targetAmount"`
		CurrentAmount       float64              `json:"currentAmount"`
		Currency            string               `json:"currency"`
		TargetDate          Date                 `json:"targetDate"`
		MonthlyContribution float64              `json:"monthlyContribution"`
		Category            string               `json:"category"`
		Direction           TxType               `json:"direction"`
		LinkedCategories    []string             `json:"linkedCategories"`
		LinkedKeywords      []string             `json:"linkedKeywords"`
		AutoLinkedAmount    float64              `json:"autoLinkedAmount"`
		Linked              []LinkedContribution `json:"linkedTransactions"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*g = SavingsGoal{
		ID:                  temp.ID,
		Name:                temp.Name,
		TargetAmount:        M(temp.TargetAmount, temp.Currency),
		CurrentAmount:       M(temp.CurrentAmount, temp.Currency),
		TargetDate:          temp.TargetDate,
		MonthlyContribution: M(temp.MonthlyContribution, temp.Currency),
		Category:            temp.Category,
		Direction:           temp.Direction,
		LinkedCategories:    temp.LinkedCategories,
		LinkedKeywords:      temp.LinkedKeywords,
		AutoLinkedAmount:    M(temp.AutoLinkedAmount, temp.Currency),
		Linked:              temp.Linked,
	}
	g.Validate()
	return nil
}

// MarshalJSON writes the linked contribution with a stable field order.
func (lc LinkedContribution) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("transactionId", lc.TxID)
	w.Append("amount", lc.Amount.Decimal().Round(2))
	w.Optional("currency", lc.Amount.Currency())
	w.Append("matchReason", lc.Reason)
	w.Append("date", lc.Date)
	return w.MarshalJSON()
}

func (lc *LinkedContribution) UnmarshalJSON(data []byte) error {
	var temp struct {
		TxID     string  `json:"transactionId"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Reason   string  `json:"matchReason"`
		Date     Date    `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*lc = LinkedContribution{
		TxID:   temp.TxID,
		Amount: M(temp.Amount, temp.Currency),
		Reason: temp.Reason,
		Date:   temp.Date,
	}
	return nil
}

// DecodeGoals decodes savings goals from a stream of JSONL data, one goal per line.
func DecodeGoals(r io.Reader) ([]*SavingsGoal, error) {
	var goals []*SavingsGoal
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		g := new(SavingsGoal)
		if err := json.Unmarshal(lineBytes, g); err != nil {
			return nil, fmt.Errorf("cannot parse goal line %q: %w", string(lineBytes), err)
		}
		goals = append(goals, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read goals: %w", err)
	}
	return goals, nil
}

// EncodeGoals writes goals in canonical JSONL form, one goal per line.
func EncodeGoals(w io.Writer, goals []*SavingsGoal) error {
	for _, g := range goals {
		b, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("cannot encode goal %q: %w", g.Name, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}
