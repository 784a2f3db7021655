// Package rankingservice owns per-user player ranking boards inside the
// league-play context.
//
// The module maintains a total order over a position's player pool from a
// minimal sequence of binary choices: it picks the next comparison pair,
// resolves each choice, and runs promotion cycles when a lower-ranked player
// beats a higher-ranked one. Board state is upserted on every transition and
// the pure ordering rules live in the domain layer.
package rankingservice
