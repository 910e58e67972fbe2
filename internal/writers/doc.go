// Package writers turns metric records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (JSON/JSONL/CSV/table).
//   - Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
