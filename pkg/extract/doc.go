// Package extract turns free-form notes (meeting minutes, to-do lists)
// into structured task records using an ordered cascade of lexical
// pattern rules.
//
// # Overview
//
// Raw text flows through three stages:
//
//  1. Segmenter: splits the note into task-candidate units (lines and
//     bullet items that look actionable).
//  2. Field extractors: independent classifiers for assignee, priority,
//     status, recurrence, due date, and duration, each operating on a
//     single unit.
//  3. Assembler: combines segmenter and extractor output into Task
//     records with generated IDs and documented defaults.
//
// A document-level project name is inferred once from the first line of
// the note, unless the caller supplies one explicitly.
//
// # Usage
//
//	engine := extract.NewEngine(extract.DefaultConfig(), logger)
//	tasks := engine.Extract(rawText, extract.Options{})
//
// Package-level helpers (ExtractPriority, ExtractAssignee, ...) run the
// individual extractors with the default rule tables.
//
// # Determinism and purity
//
// Every extractor is a pure function over its inputs: no I/O, no clock
// reads (date resolution uses a caller-supplied reference time), no
// shared mutable state. An Engine is safe for concurrent use. Malformed
// or empty input never produces an error; each field degrades to its
// documented default, and a note with no actionable lines yields an
// empty task list.
//
// The engine is explainable and rule-driven, not a learned model. Rules
// are ordered lists evaluated first-match-wins so they can be tested and
// reordered independently; keyword tables are configuration data.
package extract
