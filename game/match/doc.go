// Package match implements the waiting-player table used for pairing.
//
// A participant who names an opponent that is not yet waiting becomes a
// waiting entry themselves. Entries carry no timeout of their own; the
// owner runs CleanupStale periodically to drop entries whose connection
// died or that have waited past the configured limit.
package match
