// Package matchupservice owns head-to-head matchups inside the league-play
// context.
//
// The module negotiates per-side lineup capacity, gates matchup activation on
// both sides confirming, merges the two users' ranking boards into a
// conflict-free lineup, and finalizes the matchup from live scores once every
// scheduled game has gone final. Lineups are recomputed from their inputs on
// every read and never persisted. Matchup lifecycle events flow through an
// outbox relayed by the worker process.
package matchupservice
