package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psahay/finplan"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date        string
	amount      float64
	currency    string
	typ         string
	category    string
	description string
	merchant    string
	pending     bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a transaction to the ledger" }
func (*addCmd) Usage() string {
	return `fpl add -a <amount> -t <type> [-d <date>] [-c <category>] [-m <merchant>] [-desc <text>]

  Appends a transaction to the ledger file. The amount is a positive
  magnitude; the sign is carried by the type (income, expense, transfer).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finplan.Today().String(), "Date of the transaction. See the user manual for supported date formats.")
	f.Float64Var(&c.amount, "a", 0, "Amount of the transaction (positive magnitude).")
	f.StringVar(&c.currency, "cur", finplan.DefaultCurrency, "Currency of the amount.")
	f.StringVar(&c.typ, "t", "expense", "Type of the transaction: income, expense or transfer.")
	f.StringVar(&c.category, "c", "", "Category of the transaction.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
	f.StringVar(&c.merchant, "m", "", "Merchant name.")
	f.BoolVar(&c.pending, "pending", false, "Record the transaction as pending instead of completed.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	typ, err := finplan.ParseTxType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := finplan.NewTransaction(on, finplan.M(c.amount, c.currency), typ, c.category, c.description, c.merchant)
	if c.pending {
		tx.Status = finplan.Pending
	}

	// Open the file in append mode, creating it if it doesn't exist.
	file, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := finplan.EncodeTransaction(file, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction %s to %s\n", tx.ID, *ledgerFile)
	return subcommands.ExitSuccess
}
