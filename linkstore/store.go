// Package linkstore persists the lifecycle of auto-link suggestions in a
// SQLite database.
//
// The matcher in the root package only proposes; this package owns the
// decision ledger. Each (goal, transaction) pair carries an explicit state,
// pending, accepted or dismissed, so that acceptance can be made idempotent
// instead of relying on array-membership checks.
package linkstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/psahay/finplan"

	_ "modernc.org/sqlite" // register sqlite driver
)

// State is the lifecycle state of a suggestion.
type State string

const (
	StatePending   State = "pending"
	StateAccepted  State = "accepted"
	StateDismissed State = "dismissed"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS suggestion_state (
	goal_id      TEXT NOT NULL,
	tx_id        TEXT NOT NULL,
	state        TEXT NOT NULL CHECK (state IN ('pending', 'accepted', 'dismissed')),
	amount       TEXT NOT NULL DEFAULT '0',
	currency     TEXT NOT NULL DEFAULT '',
	match_reason TEXT NOT NULL DEFAULT '',
	tx_date      TEXT NOT NULL DEFAULT '',
	decided_at   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (goal_id, tx_id)
);
`

// Store provides SQLite-backed suggestion-state persistence.
//
// Accept and Dismiss are serialized by a store-wide mutex: accepting the same
// pair from two racing callers applies the contribution exactly once.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the suggestion database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening suggestion db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a freshly proposed suggestion as pending. An existing row for
// the same (goal, transaction) pair, whatever its state, is left untouched.
func (s *Store) Record(sg finplan.Suggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT OR IGNORE INTO suggestion_state
		(goal_id, tx_id, state, amount, currency, match_reason, tx_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sg.GoalID, sg.TxID, StatePending,
		sg.Amount.Decimal().String(), sg.Amount.Currency(), sg.Reason, sg.TxDate.String(),
	)
	return err
}

// Accept marks the pair accepted and returns the contribution to apply to the
// goal. It is idempotent: applied is true only on the first successful call
// for a pair, so a retried accept never double-counts.
func (s *Store) Accept(goalID, txID string) (lc finplan.LinkedContribution, applied bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return lc, false, err
	}
	defer func() { _ = tx.Rollback() }()

	var state, amount, currency, reason, txDate string
	row := tx.QueryRow(`SELECT state, amount, currency, match_reason, tx_date
		FROM suggestion_state WHERE goal_id = ? AND tx_id = ?`, goalID, txID)
	if err := row.Scan(&state, &amount, &currency, &reason, &txDate); err != nil {
		if err == sql.ErrNoRows {
			return lc, false, fmt.Errorf("no suggestion recorded for goal %s transaction %s", goalID, txID)
		}
		return lc, false, err
	}

	lc, err = contribution(txID, amount, currency, reason, txDate)
	if err != nil {
		return lc, false, err
	}

	if State(state) == StateAccepted {
		// Retried accept: report the contribution but do not apply it again.
		return lc, false, tx.Commit()
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(`UPDATE suggestion_state SET state = ?, decided_at = ?
		WHERE goal_id = ? AND tx_id = ?`, StateAccepted, now, goalID, txID); err != nil {
		return lc, false, err
	}
	return lc, true, tx.Commit()
}

// Dismiss marks the pair dismissed so the matcher never proposes it again.
// Dismissing an unknown pair records it directly as dismissed.
func (s *Store) Dismiss(goalID, txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO suggestion_state (goal_id, tx_id, state, decided_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (goal_id, tx_id) DO UPDATE SET state = ?, decided_at = ?
		WHERE suggestion_state.state != ?`,
		goalID, txID, StateDismissed, now, StateDismissed, now, StateAccepted)
	return err
}

// Decided reports whether the pair has already been accepted or dismissed.
// It satisfies finplan.Seen, so the matcher can skip settled pairs.
func (s *Store) Decided(goalID, txID string) bool {
	var state string
	row := s.db.QueryRow(`SELECT state FROM suggestion_state WHERE goal_id = ? AND tx_id = ?`,
		goalID, txID)
	if err := row.Scan(&state); err != nil {
		return false
	}
	return State(state) != StatePending
}

// Get returns the state of a pair, or StatePending and false when unknown.
func (s *Store) Get(goalID, txID string) (State, bool) {
	var state string
	row := s.db.QueryRow(`SELECT state FROM suggestion_state WHERE goal_id = ? AND tx_id = ?`,
		goalID, txID)
	if err := row.Scan(&state); err != nil {
		return StatePending, false
	}
	return State(state), true
}

func contribution(txID, amount, currency, reason, txDate string) (finplan.LinkedContribution, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return finplan.LinkedContribution{}, fmt.Errorf("corrupt amount %q for transaction %s: %w", amount, txID, err)
	}
	var day finplan.Date
	if txDate != "" {
		day, err = finplan.ParseDate(txDate)
		if err != nil {
			return finplan.LinkedContribution{}, fmt.Errorf("corrupt date %q for transaction %s: %w", txDate, txID, err)
		}
	}
	return finplan.LinkedContribution{
		TxID:   txID,
		Amount: finplan.M(value, currency),
		Reason: reason,
		Date:   day,
	}, nil
}

// compile-time check that Decided matches the matcher's filter signature.
var _ finplan.Seen = (*Store)(nil).Decided
