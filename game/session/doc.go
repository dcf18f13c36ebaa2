// Package session implements the registry of active game sessions.
//
// The registry is the sole owner of authoritative game state: one
// Session per room key, created at pairing time and destroyed when a
// participant disconnects or the idle sweep reclaims it. State lives in
// memory only and does not survive a restart.
package session
