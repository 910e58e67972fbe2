// Package pipeline walks the reference table one assembly at a time:
// resolve the dataset, load its report, pick the assembly directory, build
// the record, and hand it to a visit callback.
//
// A failing assembly is logged and skipped; only an empty result or
// cancellation fails the batch. The only external contract is
// dataset.Fetcher, which keeps retrieval swappable and testable.
package pipeline
