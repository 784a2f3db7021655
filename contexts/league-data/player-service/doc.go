// Package playerservice owns the player record store inside the league-data
// context.
//
// The module holds player identity, weekly projections and live stat lines,
// exposes read models that seed ranking boards and lineup snapshots, and runs
// the chunked weekly stat sync against external feed ports. Business rules
// stay in application/domain layers; feed and storage concerns sit behind
// ports and adapters.
package playerservice
