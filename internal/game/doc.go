// Package game implements the hand and betting state machine for a home
// poker table running Texas Hold'em or five-card stud.
//
// The table is a value, TableState. Every Engine operation takes a table and
// returns a new one; nothing reachable from the input is modified, so older
// snapshots stay valid for undo and redo (see History).
//
// # Basic Usage
//
//	engine := game.NewEngine(game.WithLogger(logger), game.WithRNG(randutil.New(42)))
//	table, err := engine.StartHand(table, nil)
//	table, err = engine.ConfirmDeal(table)
//	table = engine.ProcessAction(table, game.Call, 0)
//
// A hand stops at checkpoints where a person at the table has to do
// something before betting goes on: confirm the deal, reveal community
// cards, or reveal stud cards. HandState.Phase says which one applies.
//
// # Settlement
//
// Chips are tracked per street (Committed) and for the whole hand
// (TotalCommitted). Pots are partitioned from the whole-hand totals by
// CalculatePots both when everyone but one player folds and at showdown.
package game
