// Package services implements the driving ports: ranked dictionary search
// with fuzzy re-ranking, the stale-while-revalidate result cache, input
// debouncing, and the dataset freshness controller.
package services
