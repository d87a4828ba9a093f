package finplan

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Assumptions are the fixed rates every projection runs on. The library
// defaults are process-wide constants; the CLI may override them from an
// assumptions.toml file.
type Assumptions struct {
	EquityReturn       Percent `toml:"equity_return"`        // annual, for stocks, mutual funds and SIPs
	DebtReturn         Percent `toml:"debt_return"`          // annual, for FDs and debt funds
	PortfolioReturn    Percent `toml:"portfolio_return"`     // annual blended rate for net-worth and FIRE math
	Inflation          Percent `toml:"inflation"`            // annual
	SafeWithdrawalRate Percent `toml:"safe_withdrawal_rate"` // 4% -> FIRE multiple of 25x
}

// DefaultAssumptions returns the engine's fixed assumption set.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		EquityReturn:       12,
		DebtReturn:         8,
		PortfolioReturn:    10,
		Inflation:          6,
		SafeWithdrawalRate: 4,
	}
}

// LoadAssumptions reads overrides from a TOML file, falling back to the
// defaults when the file does not exist. A zero value in the file keeps the
// default for that rate; the SWR is additionally clamped into (0, 100].
func LoadAssumptions(path string) (Assumptions, error) {
	a := DefaultAssumptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return a, nil
		}
		return a, fmt.Errorf("reading assumptions file: %w", err)
	}

	var file Assumptions
	if err := toml.Unmarshal(data, &file); err != nil {
		return a, fmt.Errorf("parsing assumptions file %q: %w", path, err)
	}
	if file.EquityReturn != 0 {
		a.EquityReturn = file.EquityReturn
	}
	if file.DebtReturn != 0 {
		a.DebtReturn = file.DebtReturn
	}
	if file.PortfolioReturn != 0 {
		a.PortfolioReturn = file.PortfolioReturn
	}
	if file.Inflation != 0 {
		a.Inflation = file.Inflation
	}
	if file.SafeWithdrawalRate > 0 && file.SafeWithdrawalRate <= 100 {
		a.SafeWithdrawalRate = file.SafeWithdrawalRate
	}
	return a, nil
}

// FireMultiple is the expense multiple implied by the safe withdrawal rate,
// 25 at the default 4%.
func (a Assumptions) FireMultiple() float64 {
	if a.SafeWithdrawalRate <= 0 {
		return 0
	}
	return 1 / a.SafeWithdrawalRate.Fraction()
}
