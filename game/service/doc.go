// Package service provides the event-dispatch layer for matchplay.
//
// The service package implements:
//   - Matchmaking: pairing a requester with a waiting opponent
//   - Authoritative move application and result broadcasting
//   - In-session and legacy direct chat relay
//   - Disconnect cleanup across both registries
//
// Core Interfaces:
//
// GameService is the main service interface consumed by the transport
// layer; every inbound connection event maps to exactly one method.
// MatchRegistry and SessionRegistry define the storage contracts
// implemented by the match and session packages. Broadcaster abstracts
// the transport's room-scoped fan-out so the service never touches
// sockets directly.
//
// Architecture:
//
// The service sits between the WebSocket transport and the game engine.
// All operations are fire-and-forget: a malformed or stale event (for
// example a move against a room that was already torn down by a
// concurrent disconnect) degrades to a silent no-op, because the
// protocol has no acknowledgement channel — the broadcast itself is the
// only feedback clients receive.
//
// A single mutex serializes every event through the service, so a move
// never observes a half-updated session. Registries additionally guard
// their own maps, allowing background sweeps to run without going
// through the service.
package service
