// Package domain contains the core types of the lexa dictionary engine:
// dictionary entries, query normalization, dataset freshness states and the
// sentinel errors shared across services and adapters.
//
// Domain types have no dependencies on adapters or external libraries.
package domain
