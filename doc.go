// Package finplan is the goal and projection engine behind a personal-finance
// dashboard. It consumes an already-fetched transaction ledger, savings goals
// and portfolio snapshots, and derives numeric fields from them; it fetches
// nothing, persists nothing and renders nothing itself.
//
// The core functionalities include:
//   - Balance Accumulation: the account balance as of any date, derived from
//     the signed sum of completed transactions.
//   - Goal Progress: percentage complete, required monthly contribution,
//     projected completion date and on-track flag, recomputed on every read
//     so derived state can never go stale.
//   - Auto-Linking: matching uncategorized transactions against each goal's
//     category allow-list and keyword rules, proposing contributions with an
//     explicit match reason.
//   - Growth Projections: compound future value of recurring contribution
//     streams, reused for SIP tables, portfolio series and net-worth
//     trajectories.
//   - FIRE: the financial-independence target, progress and years-to-target
//     solved in closed form over the growth model.
//
// Everything here is synchronous and side-effect-free: functions are safe to
// call repeatedly and concurrently. The only stateful operation, accepting an
// auto-link suggestion, lives in the linkstore package.
//
// This package serves as the foundational logic for the `fpl` command-line
// tool.
package finplan
