// Package domain defines the core business entities and errors:
// question records, the topic hierarchy that drives generation, and
// the per-objective failure bookkeeping.
package domain
