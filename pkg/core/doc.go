// Package core implements the link reconciliation engine.
//
// The engine walks the declared links in config order, classifies each one
// against the filesystem (matched, missing, conflict) and, in sync mode,
// performs the repair for that link. Every link is an independent unit of
// work: a failure is recorded on that link's report and the batch continues.
// The filesystem is the single source of truth and is re-read at every step,
// never cached across runs.
package core
