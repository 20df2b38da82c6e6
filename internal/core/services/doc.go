// Package services implements the driving ports of the launcher core:
// the scheduler that drives index sessions against a changing query, the
// staleness fence that keeps stale completions off the screen, and the
// combiner that merges every source into one two-lane result set.
package services
