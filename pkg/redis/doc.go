// Package redis provides the shared Redis connection helper used by the
// Redis-backed entitlement store and event log.
package redis
