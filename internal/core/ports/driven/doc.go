// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - DictionaryStore: local dataset queries and whole-file replacement
//   - KVStore: durable key-value persistence (freshness record)
//   - DatasetFetcher: whole-file download of the canonical dataset
//   - ConnectivityChecker: one-shot "is connected" probe
//
// Import rules: can import the domain package only, never an adapter.
package driven
