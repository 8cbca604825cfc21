// Package bridge reconciles the incremental turn event stream of a crisis
// support session into a consistent live view: transcript, risk level,
// coaching feedback, reply suggestions, and escalation alerts.
//
// The Bridge owns exactly one session at a time and enforces the single-turn
// discipline: a volunteer message is accepted only while no turn is in
// flight, streamed reply tokens are folded into one reply container in
// arrival order, and delayed analytics are merged wholesale whenever they
// arrive, even after a later turn has already started.
package bridge
