// Package bulk runs the bulk-generation pipeline: it fans objectives out
// across a bounded worker pool, drives the per-objective retry loop, and
// funnels every accepted question through a single writer to the output
// sinks. The run always completes with whatever was generated; individual
// objective failures end up in the failure report, never abort the job.
package bulk
