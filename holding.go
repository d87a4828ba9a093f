package finplan

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Holding is a snapshot of one stock, mutual-fund or SIP position, supplied by
// an external holdings source. Missing numeric fields default to zero and
// never propagate as NaN into the projections.
type Holding struct {
	Name          string
	Symbol        string
	Class         string // "stocks", "mutual_funds", "sip", ...
	CurrentValue  Money
	InvestedValue Money
	MonthlySIP    Money
}

// Label returns the display name of the holding, preferring the symbol.
func (h Holding) Label() string {
	if h.Symbol != "" {
		return h.Symbol
	}
	return h.Name
}

// TotalValue sums the current value of all holdings.
func TotalValue(holdings []Holding) Money {
	var total Money
	for _, h := range holdings {
		total = total.Add(h.CurrentValue)
	}
	return total
}

// Classes groups holdings into asset classes ready for PortfolioSeries,
// assigning each class the rate the assumptions prescribe: debt rate for
// "fd" and "debt" classes, equity rate for everything else.
func Classes(holdings []Holding, a Assumptions) []AssetClass {
	index := make(map[string]int)
	var classes []AssetClass
	for _, h := range holdings {
		name := h.Class
		if name == "" {
			name = "stocks"
		}
		i, ok := index[name]
		if !ok {
			rate := a.EquityReturn
			if name == "fd" || name == "debt" {
				rate = a.DebtReturn
			}
			index[name] = len(classes)
			classes = append(classes, AssetClass{Name: name, Rate: rate})
			i = index[name]
		}
		classes[i].Value = classes[i].Value.Add(h.CurrentValue)
		classes[i].Monthly = classes[i].Monthly.Add(h.MonthlySIP)
	}
	return classes
}

// HoldingPathSpec describes where to find holdings inside an arbitrary broker
// JSON export, as jsonpath expressions. Rows selects the array of positions;
// the remaining expressions are evaluated relative to each row. Empty
// expressions leave the field zero.
type HoldingPathSpec struct {
	Rows     string `json:"rows"`
	Name     string `json:"name,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Value    string `json:"value"`
	Invested string `json:"invested,omitempty"`
	Class    string `json:"class,omitempty"`
}

// ImportHoldings extracts position snapshots from a broker JSON export.
// Brokers disagree wildly on their export shapes, so the caller points at the
// fields with jsonpath expressions instead of this package hardcoding one
// schema per broker.
func ImportHoldings(r io.Reader, spec HoldingPathSpec, currency string) ([]Holding, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse holdings export: %w", err)
	}

	jrows, err := jsonpath.Get(spec.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select holdings rows %q: %w", spec.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single
		// answer: promote a lone row to a one-element list.
		rows = []any{jrows}
	}

	holdings := make([]Holding, 0, len(rows))
	for _, row := range rows {
		h := Holding{
			Name:   pathString(row, spec.Name),
			Symbol: pathString(row, spec.Symbol),
			Class:  pathString(row, spec.Class),
		}
		h.CurrentValue = M(pathNumber(row, spec.Value), currency)
		h.InvestedValue = M(pathNumber(row, spec.Invested), currency)
		holdings = append(holdings, h)
	}
	return holdings, nil
}

func pathString(row any, path string) string {
	if path == "" {
		return ""
	}
	v, err := jsonpath.Get(path, row)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func pathNumber(row any, path string) float64 {
	if path == "" {
		return 0
	}
	v, err := jsonpath.Get(path, row)
	if err != nil {
		return 0
	}
	f, _ := v.(float64)
	return f
}
